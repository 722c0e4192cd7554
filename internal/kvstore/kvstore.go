// Package kvstore abstracts the string-keyed blob store the roster and
// schedule repositories persist into. Backends are interchangeable; none of
// them coordinates concurrent writers.
package kvstore

import "context"

// Store is a synchronous key to string-value blob store. Get reports absence
// through the boolean rather than an error; Set overwrites unconditionally.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Available() bool
}

// Unavailable is the degraded backend used when no store is reachable: reads
// see nothing, writes vanish. Callers fall back to empty collections.
type Unavailable struct{}

func (Unavailable) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (Unavailable) Set(context.Context, string, string) error { return nil }

func (Unavailable) Available() bool { return false }
