package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

type stubLogoService struct {
	result *ports.LogoResult
	err    error
	gotURL string
}

func (s *stubLogoService) Fetch(_ context.Context, rawURL string) (*ports.LogoResult, error) {
	s.gotURL = rawURL
	return s.result, s.err
}

func TestLogoHandler_Fetch(t *testing.T) {
	logo := "data:image/png;base64,AAAA"
	svc := &stubLogoService{result: &ports.LogoResult{Logo: &logo, Source: "google"}}
	h := NewLogoHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/logo/fetch", `{"url":"https://example.com"}`)
	if err := h.Fetch(c); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotURL != "https://example.com" {
		t.Fatalf("url not passed through: %q", svc.gotURL)
	}

	var result ports.LogoResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if result.Logo == nil || result.Source != "google" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestLogoHandler_Fetch_MissAlsoReturns200(t *testing.T) {
	svc := &stubLogoService{result: &ports.LogoResult{
		Message: "No logo found. Please upload a custom logo.",
		Domain:  "example.com",
	}}
	h := NewLogoHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/logo/fetch", `{"url":"example.com"}`)
	if err := h.Fetch(c); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("a provider miss is still 200, got %d", rec.Code)
	}
}

func TestLogoHandler_Fetch_EmptyURL(t *testing.T) {
	h := NewLogoHandler(&stubLogoService{})

	c, _ := newTestContext(t, http.MethodPost, "/logo/fetch", `{"url":""}`)
	err := h.Fetch(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "URL is required" {
		t.Fatalf("unexpected message %v", he.Message)
	}
}

func TestLogoHandler_Fetch_InvalidURLPropagates(t *testing.T) {
	h := NewLogoHandler(&stubLogoService{err: domain.ErrInvalidURL})

	c, _ := newTestContext(t, http.MethodPost, "/logo/fetch", `{"url":"::::"}`)
	if err := h.Fetch(c); !errors.Is(err, domain.ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
}
