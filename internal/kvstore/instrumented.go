package kvstore

import (
	"context"
	"time"
)

// OpObserver receives the latency of each store operation.
type OpObserver func(op string, duration time.Duration)

// Instrumented reports get/set latency to the observer.
type Instrumented struct {
	inner   Store
	observe OpObserver
}

// WithInstrumentation wraps the store when an observer is provided.
func WithInstrumentation(inner Store, observe OpObserver) Store {
	if observe == nil {
		return inner
	}
	return &Instrumented{inner: inner, observe: observe}
}

func (i *Instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	value, ok, err := i.inner.Get(ctx, key)
	i.observe("get", time.Since(start))
	return value, ok, err
}

func (i *Instrumented) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := i.inner.Set(ctx, key, value)
	i.observe("set", time.Since(start))
	return err
}

func (i *Instrumented) Available() bool { return i.inner.Available() }
