package ports

import "context"

// LogoResult is the outcome of a favicon lookup. Logo is nil when every
// provider failed; Message and Domain are only set in that case.
type LogoResult struct {
	Logo    *string `json:"logo"`
	Source  string  `json:"source,omitempty"`
	Message string  `json:"message,omitempty"`
	Domain  string  `json:"domain,omitempty"`
}

// LogoService resolves a site URL to an inline favicon data URI by trying a
// fixed sequence of external providers.
type LogoService interface {
	Fetch(ctx context.Context, rawURL string) (*LogoResult, error)
}
