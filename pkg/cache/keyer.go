package cache

import "time"

// Cache TTLs for the pipeline stages. Markup and artifacts are pure
// functions of the circuit and options, so long TTLs are safe.
const (
	// TTLMarkup is the lifetime of cached typst markup.
	TTLMarkup = 30 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered images.
	TTLArtifact = 30 * 24 * time.Hour
)

// MarkupKeyOpts are the options that affect generated typst markup.
type MarkupKeyOpts struct {
	Pragmas  string
	InitMode string
	Simplify bool
}

// ArtifactKeyOpts are the options that affect a rendered image.
type ArtifactKeyOpts struct {
	Pragmas        string
	InitMode       string
	Simplify       bool
	PixelsPerPoint float64
}

// Keyer generates cache keys for pipeline stages.
// Implementations must produce stable keys for equal inputs.
type Keyer interface {
	// MarkupKey generates a key for typst markup caching.
	MarkupKey(circuitHash string, opts MarkupKeyOpts) string

	// ArtifactKey generates a key for rendered image caching.
	ArtifactKey(circuitHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates content-addressed keys from SHA-256 hashes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// MarkupKey generates a key for typst markup caching.
func (k *DefaultKeyer) MarkupKey(circuitHash string, opts MarkupKeyOpts) string {
	return Key("markup", circuitHash, opts)
}

// ArtifactKey generates a key for rendered image caching.
func (k *DefaultKeyer) ArtifactKey(circuitHash string, opts ArtifactKeyOpts) string {
	return Key("artifact", circuitHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The render server uses this to keep deployments from sharing entries
// when they point at the same Redis instance.
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

// MarkupKey generates a prefixed key for typst markup caching.
func (k *ScopedKeyer) MarkupKey(circuitHash string, opts MarkupKeyOpts) string {
	return k.prefix + k.inner.MarkupKey(circuitHash, opts)
}

// ArtifactKey generates a prefixed key for rendered image caching.
func (k *ScopedKeyer) ArtifactKey(circuitHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(circuitHash, opts)
}
