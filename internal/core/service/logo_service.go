package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

const (
	providerTimeout = 5 * time.Second
	maxLogoBytes    = 1 << 20 // 1 MiB is plenty for a favicon
)

// LogoCache abstracts the per-domain favicon cache (Redis).
type LogoCache interface {
	Get(ctx context.Context, domain string) (*ports.LogoResult, error)
	Set(ctx context.Context, domain string, result *ports.LogoResult) error
}

// logoProvider describes one external favicon source.
type logoProvider struct {
	name string
	url  func(domain string) string
	// mime overrides the response Content-Type; empty means trust the header.
	mime string
}

func defaultProviders() []logoProvider {
	return []logoProvider{
		{
			name: "google",
			url: func(d string) string {
				return "https://www.google.com/s2/favicons?domain=" + url.QueryEscape(d) + "&sz=128"
			},
		},
		{
			name: "clearbit",
			url:  func(d string) string { return "https://logo.clearbit.com/" + d },
			mime: "image/png",
		},
		{
			name: "duckduckgo",
			url:  func(d string) string { return "https://icons.duckduckgo.com/ip3/" + d + ".ico" },
			mime: "image/x-icon",
		},
	}
}

// LogoService resolves site URLs to inline favicon data URIs. Providers are
// tried in fixed order with a hard per-call timeout and no retries; a cache
// hit short-circuits the whole chain.
type LogoService struct {
	client    *http.Client
	cache     LogoCache
	providers []logoProvider
	log       zerolog.Logger
}

func NewLogoService(client *http.Client, cache LogoCache, log zerolog.Logger) *LogoService {
	if client == nil {
		client = &http.Client{}
	}
	return &LogoService{
		client:    client,
		cache:     cache,
		providers: defaultProviders(),
		log:       log,
	}
}

func (s *LogoService) Fetch(ctx context.Context, rawURL string) (*ports.LogoResult, error) {
	host, err := extractDomain(rawURL)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, host)
		if err != nil {
			s.log.Warn().Err(err).Str("domain", host).Msg("logo cache lookup failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	for _, p := range s.providers {
		result, ok := s.fetchFrom(ctx, p, host)
		if !ok {
			continue
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, host, result); err != nil {
				s.log.Warn().Err(err).Str("domain", host).Msg("logo cache store failed")
			}
		}
		return result, nil
	}

	return &ports.LogoResult{
		Logo:    nil,
		Message: "No logo found. Please upload a custom logo.",
		Domain:  host,
	}, nil
}

func (s *LogoService) fetchFrom(ctx context.Context, p logoProvider, host string) (*ports.LogoResult, bool) {
	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url(host), nil)
	if err != nil {
		return nil, false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Debug().Err(err).Str("provider", p.name).Str("domain", host).Msg("logo provider failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil || len(body) == 0 {
		return nil, false
	}

	mime := p.mime
	if mime == "" {
		mime = resp.Header.Get("Content-Type")
		if mime == "" {
			mime = "image/png"
		}
	}

	data := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(body))
	return &ports.LogoResult{Logo: &data, Source: p.name}, true
}

// extractDomain pulls the bare hostname out of a user-supplied URL,
// tolerating a missing scheme and stripping a leading "www.".
func extractDomain(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", domain.ErrInvalidURL
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Hostname() == "" {
		return "", domain.ErrInvalidURL
	}
	return strings.TrimPrefix(u.Hostname(), "www."), nil
}
