package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Hosted deployments give each workspace its own namespace so one tenant's
// decks never collide with another's.
//
// Example usage:
//
//	// Workspace-specific keys for private decks
//	wsKeyer := NewScopedKeyer(NewDefaultKeyer(), "ws:abc123:")
//
//	// Global keys for shared theme assets
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// DeckKey generates a prefixed key for deck-level caching.
func (k *ScopedKeyer) DeckKey(projectID string, opts DeckKeyOpts) string {
	return k.prefix + k.inner.DeckKey(projectID, opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(slideHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(slideHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

// Ensure ScopedKeyer implements Keyer.
var _ Keyer = (*ScopedKeyer)(nil)
