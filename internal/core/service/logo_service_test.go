package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

// stubLogoCache is an in-memory LogoCache.
type stubLogoCache struct {
	mu      sync.Mutex
	results map[string]*ports.LogoResult
	getErr  error
}

func (c *stubLogoCache) Get(_ context.Context, domain string) (*ports.LogoResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.results[domain], nil
}

func (c *stubLogoCache) Set(_ context.Context, domain string, result *ports.LogoResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.results == nil {
		c.results = make(map[string]*ports.LogoResult)
	}
	c.results[domain] = result
	return nil
}

func providerFor(srv *httptest.Server, name, mime string) logoProvider {
	return logoProvider{
		name: name,
		url:  func(string) string { return srv.URL },
		mime: mime,
	}
}

func TestExtractDomain(t *testing.T) {
	cases := map[string]string{
		"https://www.example.com/path": "example.com",
		"http://example.com":           "example.com",
		"example.com":                  "example.com",
		"www.example.com/deep/page":    "example.com",
		"  https://sub.example.com  ":  "sub.example.com",
	}
	for in, want := range cases {
		got, err := extractDomain(in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: want %q, got %q", in, want, got)
		}
	}

	for _, in := range []string{"", "   ", "https://"} {
		if _, err := extractDomain(in); !errors.Is(err, domain.ErrInvalidURL) {
			t.Fatalf("%q: expected ErrInvalidURL, got %v", in, err)
		}
	}
}

func TestLogoFetch_FallsThroughToNextProvider(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer failing.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))
	defer working.Close()

	svc := NewLogoService(nil, nil, zerolog.Nop())
	svc.providers = []logoProvider{
		providerFor(failing, "primary", ""),
		providerFor(working, "secondary", "image/png"),
	}

	result, err := svc.Fetch(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if result.Logo == nil {
		t.Fatalf("expected a logo")
	}
	if result.Source != "secondary" {
		t.Fatalf("expected the second provider to win, got %q", result.Source)
	}
	if !strings.HasPrefix(*result.Logo, "data:image/png;base64,") {
		t.Fatalf("expected data URI, got %q", *result.Logo)
	}
}

func TestLogoFetch_AllProvidersFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	svc := NewLogoService(nil, nil, zerolog.Nop())
	svc.providers = []logoProvider{
		providerFor(failing, "primary", ""),
		providerFor(failing, "secondary", ""),
	}

	result, err := svc.Fetch(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if result.Logo != nil {
		t.Fatalf("expected nil logo, got %q", *result.Logo)
	}
	if result.Domain != "example.com" {
		t.Fatalf("unexpected domain %q", result.Domain)
	}
	if result.Message == "" {
		t.Fatalf("expected an explanatory message")
	}
}

func TestLogoFetch_EmptyBodyFallsThrough(t *testing.T) {
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer empty.Close()

	svc := NewLogoService(nil, nil, zerolog.Nop())
	svc.providers = []logoProvider{providerFor(empty, "primary", "")}

	result, err := svc.Fetch(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if result.Logo != nil {
		t.Fatalf("empty provider body must not count as a logo")
	}
}

func TestLogoFetch_CacheHitShortCircuits(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte("icon"))
	}))
	defer srv.Close()

	cache := &stubLogoCache{}
	svc := NewLogoService(nil, cache, zerolog.Nop())
	svc.providers = []logoProvider{providerFor(srv, "primary", "image/x-icon")}

	first, err := svc.Fetch(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("first Fetch: %v", err)
	}
	second, err := svc.Fetch(context.Background(), "https://www.example.com/page")
	if err != nil {
		t.Fatalf("second Fetch: %v", err)
	}

	if calls != 1 {
		t.Fatalf("cache hit should skip providers, provider called %d times", calls)
	}
	if second.Source != first.Source || *second.Logo != *first.Logo {
		t.Fatalf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestLogoFetch_CacheErrorIsNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("icon"))
	}))
	defer srv.Close()

	cache := &stubLogoCache{getErr: errors.New("redis down")}
	svc := NewLogoService(nil, cache, zerolog.Nop())
	svc.providers = []logoProvider{providerFor(srv, "primary", "image/x-icon")}

	result, err := svc.Fetch(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("Fetch must survive a cache failure: %v", err)
	}
	if result.Logo == nil {
		t.Fatalf("expected a logo despite the cache failure")
	}
}

func TestLogoFetch_InvalidURL(t *testing.T) {
	svc := NewLogoService(nil, nil, zerolog.Nop())
	if _, err := svc.Fetch(context.Background(), ""); !errors.Is(err, domain.ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
}
