package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickaccess/linkdir/internal/core/ports"
)

const logoTTL = 24 * time.Hour

// LogoCache caches resolved favicon data URIs per domain so repeated
// lookups skip the external providers. Key format: logo:<domain>
type LogoCache struct {
	client *redis.Client
}

// NewLogoCache creates a LogoCache wrapping the given Redis client.
func NewLogoCache(client *redis.Client) *LogoCache {
	return &LogoCache{client: client}
}

// Get returns the cached result for a domain, or nil on a miss.
func (c *LogoCache) Get(ctx context.Context, domain string) (*ports.LogoResult, error) {
	raw, err := c.client.Get(ctx, c.key(domain)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("logo cache get: %w", err)
	}

	var result ports.LogoResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("logo cache decode: %w", err)
	}
	return &result, nil
}

// Set stores a successful lookup (expires after logoTTL).
func (c *LogoCache) Set(ctx context.Context, domain string, result *ports.LogoResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("logo cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(domain), raw, logoTTL).Err()
}

func (c *LogoCache) key(domain string) string {
	return "logo:" + domain
}
