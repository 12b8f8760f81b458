// Package httputil provides HTTP utilities for image provider clients.
//
// # Overview
//
// This package provides infrastructure used by all image source clients:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/deckforge/)
// with configurable TTL. Image providers answer the same suggestion query
// with the same asset, so repeated deck generations skip the network.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, _ := cache.Get("unsplash:mountain sunrise", &url)  // Check cache
//	if !ok {
//	    url = fetchFromProvider()
//	    cache.Set("unsplash:mountain sunrise", url)        // Store for later
//	}
//
// Cache keys should be namespaced by provider to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Wrap transient failures in [RetryableError] so Retry knows to try again:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetchImage(url)
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/deckforge/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `deckforge cache clear` or by deleting
// the cache directory.
package httputil
