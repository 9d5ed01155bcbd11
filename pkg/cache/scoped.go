package cache

// ScopedKeyer wraps a Keyer with a prefix, isolating cache namespaces.
//
// The server scopes all query keys by a fingerprint of the loaded dataset,
// so answers computed against one synsets/hypernyms pair can never be served
// for another:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "ds:"+datasetHash+":")
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
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// QueryKey generates a prefixed key for a query result.
func (k *ScopedKeyer) QueryKey(kind string, terms ...string) string {
	return k.prefix + k.inner.QueryKey(kind, terms...)
}

// GraphKey generates a prefixed key for a graph snapshot.
func (k *ScopedKeyer) GraphKey(datasetHash string) string {
	return k.prefix + k.inner.GraphKey(datasetHash)
}
