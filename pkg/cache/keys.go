package cache

// Keyer generates cache keys for the pipeline's key classes.
type Keyer interface {
	// HTTPKey generates a key for upstream HTTP response caching.
	HTTPKey(namespace, key string) string

	// DeckKey generates a key for a whole deck's pipeline result.
	DeckKey(projectID string, opts DeckKeyOpts) string

	// LayoutKey generates a key for one slide's generated layout.
	LayoutKey(slideHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DeckKeyOpts are the inputs that change a deck-level result.
type DeckKeyOpts struct {
	ThemeSlug  string `json:"theme"`
	SlideCount int    `json:"slides"`
}

// LayoutKeyOpts are the inputs that change a slide's layout beyond its
// content hash. SlideIndex matters because left/right alternation keys off
// deck position.
type LayoutKeyOpts struct {
	SlideIndex int `json:"index"`
}

// ArtifactKeyOpts are the inputs that change a rendered artifact for a
// fixed layout.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Scale     float64 `json:"scale,omitempty"`
	ThemeSlug string  `json:"theme,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256 under a per-class
// prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return hashKey("http:"+namespace, key)
}

// DeckKey generates a key for deck-level caching.
func (k *DefaultKeyer) DeckKey(projectID string, opts DeckKeyOpts) string {
	return hashKey("deck", projectID, opts)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(slideHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", slideHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
