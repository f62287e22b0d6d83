// Package lru defines options and sentinel errors for the bounded LRU cache.
package lru

import (
	"errors"
)

// Sentinel errors for cache construction.
var (
	// ErrInvalidCapacity indicates New received a capacity below 1.
	ErrInvalidCapacity = errors.New("lru: capacity must be at least 1")
)

// Option configures a Cache via functional arguments.
type Option[K comparable, V any] func(*Options[K, V])

// Options holds the construction parameters of a Cache.
type Options[K comparable, V any] struct {
	// OnEvict is called with every entry dropped because the cache overflowed.
	// It is not called for Remove or Clear.
	OnEvict func(key K, value V)
}

// DefaultOptions returns Options with a no-op eviction hook.
func DefaultOptions[K comparable, V any]() Options[K, V] {
	return Options[K, V]{
		OnEvict: func(K, V) {},
	}
}

// WithOnEvict registers a callback run after an entry is evicted.
// The callback must not call back into the cache.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *Options[K, V]) {
		if fn != nil {
			o.OnEvict = fn
		}
	}
}
