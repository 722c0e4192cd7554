package kvstore

import "context"

// Namespaced prefixes every key, letting several deployments share one
// physical backend.
type Namespaced struct {
	inner  Store
	prefix string
}

// WithNamespace wraps the store when prefix is non-empty.
func WithNamespace(inner Store, prefix string) Store {
	if prefix == "" {
		return inner
	}
	return &Namespaced{inner: inner, prefix: prefix + ":"}
}

func (n *Namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *Namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *Namespaced) Available() bool { return n.inner.Available() }
