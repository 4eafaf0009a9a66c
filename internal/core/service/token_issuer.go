package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

// DefaultTokenTTL is the fixed token lifetime.
const DefaultTokenTTL = 7 * 24 * time.Hour

// JWTIssuer signs and verifies HS256 bearer tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *JWTIssuer) Issue(userID, role, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"role":     role,
		"username": username,
		"exp":      time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses the token and extracts the identity claims. Every failure
// mode returns the same ErrInvalidToken so the reason never leaks.
func (i *JWTIssuer) Verify(token string) (ports.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return ports.Claims{}, domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	username, _ := claims["username"].(string)
	if userID == "" || role == "" {
		return ports.Claims{}, domain.ErrInvalidToken
	}

	return ports.Claims{UserID: userID, Role: role, Username: username}, nil
}
