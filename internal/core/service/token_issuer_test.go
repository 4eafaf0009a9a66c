package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)

	token, err := issuer.Issue("u1", "marketer", "alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "marketer" || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTIssuer_DefaultTTLIsSevenDays(t *testing.T) {
	issuer := NewJWTIssuer("secret", 0)

	token, err := issuer.Issue("u1", "admin", "root")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	mapClaims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, mapClaims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim")
	}
	want := time.Now().Add(DefaultTokenTTL).Unix()
	if got := int64(exp); got < want-60 || got > want+60 {
		t.Fatalf("exp %d not within a minute of %d", got, want)
	}
}

func TestJWTIssuer_VerifyFailuresAreUniform(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)
	other := NewJWTIssuer("different-secret", time.Hour)
	expired := NewJWTIssuer("secret", time.Nanosecond)

	badSig, _ := other.Issue("u1", "hr", "bob")
	expiredToken, _ := expired.Issue("u1", "hr", "bob")
	time.Sleep(10 * time.Millisecond)

	for name, token := range map[string]string{
		"garbage":       "not-a-token",
		"empty":         "",
		"bad signature": badSig,
		"expired":       expiredToken,
	} {
		if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestJWTIssuer_VerifyRejectsMissingIdentity(t *testing.T) {
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))

	issuer := NewJWTIssuer("secret", time.Hour)
	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for claimless token, got %v", err)
	}
}
