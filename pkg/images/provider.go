// Package images resolves slide image URLs from free image services.
//
// Slides generated by the AI carry an image suggestion (a short prompt
// describing the desired picture). This package turns suggestions into
// working image URLs by trying a chain of providers in priority order:
//
//  1. Pollinations - AI-generated images (best quality, slowest)
//  2. Unsplash - high-quality stock photos
//  3. LoremFlickr - keyword-matched random images
//  4. Picsum - reliable placeholder photos
//  5. Placeholder - guaranteed colored placeholder
//
// Each provider builds a candidate URL and probes it within its own
// timeout before handing it back; a failed probe moves the chain to the
// next provider. Resolved URLs are cached by prompt so repeated bakes
// of the same deck do not hit the services again.
//
// # Usage
//
//	chain, err := images.NewChain(images.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	url, err := chain.Resolve(ctx, images.Request{
//	    Prompt:      "mountain sunrise landscape",
//	    SlideNumber: 3,
//	})
package images

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/deckforge/deckforge/pkg/httputil"
	"github.com/deckforge/deckforge/pkg/observability"
)

// Request describes the image a slide needs.
type Request struct {
	// Prompt is the image suggestion text from the slide.
	Prompt string

	// SlideNumber disambiguates otherwise identical prompts so decks
	// do not repeat the same stock photo on every slide.
	SlideNumber int
}

// Provider resolves a prompt to a working image URL.
type Provider interface {
	// Name identifies the provider in logs and cache keys.
	Name() string

	// Resolve returns a URL serving an image for the request.
	Resolve(ctx context.Context, req Request) (string, error)
}

// prober issues probe requests against candidate URLs. Providers share
// one prober so the chain uses a single HTTP client.
type prober struct {
	http *http.Client
}

const probeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

func newProber() *prober {
	return &prober{http: &http.Client{}}
}

// probe issues a GET for url and reports whether the service answered
// with a success status. The per-provider timeout bounds the request.
func (p *prober) probe(ctx context.Context, url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", probeUserAgent)

	observability.HTTP().OnRequest(ctx, http.MethodGet, req.URL.Host, req.URL.Path)
	start := time.Now()
	resp, err := p.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, req.URL.Host, req.URL.Path, err)
		return &httputil.RetryableError{Err: err}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodGet, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return &httputil.RetryableError{Err: fmt.Errorf("status %d", resp.StatusCode)}
	default:
		return fmt.Errorf("status %d", resp.StatusCode)
	}
}

// keywords extracts up to max meaningful words from a prompt. Words
// shorter than three characters are dropped. Falls back to generic
// terms when nothing usable remains.
func keywords(prompt string, max int) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(prompt)) {
		w = strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, w)
		if len(w) > 2 {
			words = append(words, w)
		}
		if len(words) == max {
			break
		}
	}
	if len(words) == 0 {
		return []string{"abstract", "design", "color"}
	}
	return words
}

// promptSeed derives a stable numeric seed from prompt text and slide
// number so the same deck resolves to the same images across bakes.
func promptSeed(prompt string, slideNumber int) int {
	sum := 0
	for _, r := range prompt {
		sum += int(r)
	}
	return sum + slideNumber*1000
}
