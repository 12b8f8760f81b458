package images

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/deckforge/deckforge/pkg/httputil"
	"github.com/deckforge/deckforge/pkg/observability"
)

// Config selects which providers participate in the chain. The zero
// value disables everything; use DefaultConfig for the standard chain.
type Config struct {
	Pollinations bool `toml:"pollinations"`
	Unsplash     bool `toml:"unsplash"`
	LoremFlickr  bool `toml:"lorem_flickr"`
	Picsum       bool `toml:"picsum"`

	// CacheTTL bounds how long resolved URLs are reused. Zero uses
	// DefaultCacheTTL.
	CacheTTL time.Duration `toml:"-"`
}

// DefaultCacheTTL is how long resolved image URLs stay cached.
const DefaultCacheTTL = 24 * time.Hour

// DefaultConfig enables every provider.
func DefaultConfig() Config {
	return Config{
		Pollinations: true,
		Unsplash:     true,
		LoremFlickr:  true,
		Picsum:       true,
	}
}

// Chain tries providers in priority order until one resolves.
// The placeholder provider is always appended last so Resolve only
// fails when the context is cancelled.
type Chain struct {
	providers []Provider
	cache     *httputil.Cache
	logger    *log.Logger
}

// NewChain builds a provider chain from cfg with a file-backed URL cache.
func NewChain(cfg Config, logger *log.Logger) (*Chain, error) {
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	cache, err := httputil.NewCache("", ttl)
	if err != nil {
		return nil, err
	}

	p := newProber()
	var providers []Provider
	if cfg.Pollinations {
		providers = append(providers, &Pollinations{prober: p})
	}
	if cfg.Unsplash {
		providers = append(providers, &Unsplash{prober: p})
	}
	if cfg.LoremFlickr {
		providers = append(providers, &LoremFlickr{prober: p})
	}
	if cfg.Picsum {
		providers = append(providers, &Picsum{prober: p})
	}
	providers = append(providers, &Placeholder{})

	if logger == nil {
		logger = log.Default()
	}
	return &Chain{
		providers: providers,
		cache:     cache.Namespace("images"),
		logger:    logger,
	}, nil
}

// Resolve returns a working image URL for the request, consulting the
// cache first and walking the provider chain on a miss.
func (c *Chain) Resolve(ctx context.Context, req Request) (string, error) {
	key := fmt.Sprintf("%s:%d", req.Prompt, req.SlideNumber)

	var cached string
	if ok, _ := c.cache.Get(key, &cached); ok {
		observability.Cache().OnCacheHit(ctx, "image")
		return cached, nil
	}
	observability.Cache().OnCacheMiss(ctx, "image")

	var lastErr error
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		url, err := c.resolveOne(ctx, p, req)
		if err != nil {
			c.logger.Debug("image provider failed",
				"provider", p.Name(), "slide", req.SlideNumber, "err", err)
			lastErr = err
			continue
		}

		c.logger.Debug("image resolved",
			"provider", p.Name(), "slide", req.SlideNumber)
		_ = c.cache.Set(key, url)
		return url, nil
	}

	return "", fmt.Errorf("all image providers failed: %w", lastErr)
}

// resolveOne runs a single provider with retry on transient failures.
func (c *Chain) resolveOne(ctx context.Context, p Provider, req Request) (string, error) {
	var url string
	err := httputil.RetryWithBackoff(ctx, func() error {
		var err error
		url, err = p.Resolve(ctx, req)
		return err
	})
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", errors.New("provider returned empty url")
	}
	return url, nil
}
