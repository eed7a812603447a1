package cache

// ScopedKeyer wraps a Keyer with a prefix so that several users of one
// shared backend get separate namespaces.
//
// Example usage:
//
//	// Keys of the HTTP API, isolated from CLI entries in the same Redis
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
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

// LayoutKey generates a prefixed key for scene caching.
func (k *ScopedKeyer) LayoutKey(figureHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(figureHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}

// SceneKey generates a prefixed key for stored scenes.
func (k *ScopedKeyer) SceneKey(id string) string {
	return k.prefix + k.inner.SceneKey(id)
}
