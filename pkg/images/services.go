package images

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Per-provider probe timeouts. Pollinations generates images on demand
// and routinely takes tens of seconds.
const (
	pollinationsTimeout = 30 * time.Second
	unsplashTimeout     = 15 * time.Second
	loremFlickrTimeout  = 15 * time.Second
	picsumTimeout       = 10 * time.Second
)

// Pollinations resolves prompts through the Pollinations text-to-image API.
type Pollinations struct {
	prober *prober
}

// Ensure providers implement Provider.
var (
	_ Provider = (*Pollinations)(nil)
	_ Provider = (*Unsplash)(nil)
	_ Provider = (*LoremFlickr)(nil)
	_ Provider = (*Picsum)(nil)
	_ Provider = (*Placeholder)(nil)
)

func (p *Pollinations) Name() string { return "pollinations" }

func (p *Pollinations) Resolve(ctx context.Context, req Request) (string, error) {
	u := "https://image.pollinations.ai/prompt/" + url.PathEscape(strings.TrimSpace(req.Prompt))
	if err := p.prober.probe(ctx, u, pollinationsTimeout); err != nil {
		return "", fmt.Errorf("pollinations: %w", err)
	}
	return u, nil
}

// Unsplash resolves prompts through the Unsplash source endpoint, which
// redirects to a stock photo matching the search terms.
type Unsplash struct {
	prober *prober
}

func (p *Unsplash) Name() string { return "unsplash" }

func (p *Unsplash) Resolve(ctx context.Context, req Request) (string, error) {
	search := strings.Join(keywords(req.Prompt, 2), " ")
	u := "https://source.unsplash.com/800x600/?" + url.QueryEscape(search)
	if err := p.prober.probe(ctx, u, unsplashTimeout); err != nil {
		return "", fmt.Errorf("unsplash: %w", err)
	}
	return u, nil
}

// LoremFlickr resolves prompts to keyword-matched images from Flickr.
type LoremFlickr struct {
	prober *prober
}

func (p *LoremFlickr) Name() string { return "loremflickr" }

func (p *LoremFlickr) Resolve(ctx context.Context, req Request) (string, error) {
	search := strings.Join(keywords(req.Prompt, 3), ",")
	u := fmt.Sprintf("https://loremflickr.com/800/600/%s?random=%d",
		url.PathEscape(search), promptSeed(req.Prompt, req.SlideNumber))
	if err := p.prober.probe(ctx, u, loremFlickrTimeout); err != nil {
		return "", fmt.Errorf("loremflickr: %w", err)
	}
	return u, nil
}

// Picsum resolves prompts to seeded placeholder photos. The prompt only
// influences the seed so the images are pleasant but unrelated.
type Picsum struct {
	prober *prober
}

func (p *Picsum) Name() string { return "picsum" }

func (p *Picsum) Resolve(ctx context.Context, req Request) (string, error) {
	u := fmt.Sprintf("https://picsum.photos/800/600?random=%d", promptSeed(req.Prompt, req.SlideNumber))
	if err := p.prober.probe(ctx, u, picsumTimeout); err != nil {
		return "", fmt.Errorf("picsum: %w", err)
	}
	return u, nil
}

// Placeholder builds a colored placeholder URL without probing. It is
// the last link in the chain and never fails.
type Placeholder struct{}

// placeholderPalette provides distinct background colors so adjacent
// slides do not end up with identical placeholders.
var placeholderPalette = []string{
	"FF6B6B", "4ECDC4", "45B7D1", "96CEB4", "FFEAA7",
	"DDA0DD", "98D8C8", "F7DC6F", "BB8FCE", "85C1E9",
	"F8C471", "82E0AA", "F1948A", "D7BDE2", "FAD7A0",
	"ABEBC6", "F9E79F", "D5A6BD", "A9CCE3",
}

func (p *Placeholder) Name() string { return "placeholder" }

func (p *Placeholder) Resolve(_ context.Context, req Request) (string, error) {
	color := placeholderPalette[promptSeed(req.Prompt, req.SlideNumber)%len(placeholderPalette)]
	text := strings.Join(keywords(req.Prompt, 2), " ")
	return fmt.Sprintf("https://via.placeholder.com/800x600/%s/ffffff?text=%s",
		color, url.QueryEscape(text)), nil
}
