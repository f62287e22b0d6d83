// Package lru provides a capacity-bounded key/value cache that evicts the
// least-recently-used entry on overflow.
//
// The cache composes two structures that must always agree:
//
//   - index: map from key to the chain node holding that key.
//   - chain: a doubly linked list of linkedlist.DNode between two sentinels;
//     the node after head is the most recently used, the node before tail the least.
//
// Every key in index points at exactly one live node of chain and every live
// node's key is in index. Only Get and Put change recency; Peek does not.
//
//	Get / Put / Peek / Remove : O(1)
//	Keys                      : O(n)
//
// A Cache is not safe for concurrent use; callers serialise access.
package lru

import (
	"fmt"

	"github.com/katalvlaran/lvlds/linkedlist"
)

// entry is the payload of a chain node.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a bounded LRU cache.
type Cache[K comparable, V any] struct {
	capacity int
	index    map[K]*linkedlist.DNode[entry[K, V]]
	head     *linkedlist.DNode[entry[K, V]] // sentinel before the MRU entry
	tail     *linkedlist.DNode[entry[K, V]] // sentinel after the LRU entry
	onEvict  func(K, V)
}

// New returns an empty cache holding at most capacity entries.
// Returns ErrInvalidCapacity if capacity < 1.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	o := DefaultOptions[K, V]()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]*linkedlist.DNode[entry[K, V]], capacity),
		onEvict:  o.OnEvict,
	}
	c.resetChain()

	return c, nil
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int { return len(c.index) }

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Get returns the value for key and marks it most recently used.
// ok is false when the key is absent.
// Complexity: O(1).
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	node, ok := c.index[key]
	if !ok {
		return value, false
	}
	c.promote(node)

	return node.Value.value, true
}

// Peek returns the value for key without touching its recency.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	node, ok := c.index[key]
	if !ok {
		return value, false
	}

	return node.Value.value, true
}

// Contains reports whether key is cached, without touching its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Put stores value under key and marks it most recently used.
//
// Steps:
//  1. Existing key: overwrite the value and move the node to the MRU end.
//  2. New key: link a fresh node at the MRU end and index it.
//  3. Over capacity: unlink the LRU node, drop its key from the index and fire OnEvict.
//
// Returns true if an entry was evicted.
// Complexity: O(1).
func (c *Cache[K, V]) Put(key K, value V) (evicted bool) {
	// 1. Update in place.
	if node, ok := c.index[key]; ok {
		node.Value.value = value
		c.promote(node)
		return false
	}

	// 2. Insert at the MRU end.
	node := &linkedlist.DNode[entry[K, V]]{Value: entry[K, V]{key: key, value: value}}
	c.head.InsertAfter(node)
	c.index[key] = node

	// 3. Evict the LRU entry on overflow.
	if len(c.index) <= c.capacity {
		return false
	}
	victim := c.tail.Prev
	victim.Unlink()
	delete(c.index, victim.Value.key)
	c.onEvict(victim.Value.key, victim.Value.value)

	return true
}

// Remove deletes key and reports whether it was present. OnEvict is not called.
// Complexity: O(1).
func (c *Cache[K, V]) Remove(key K) bool {
	node, ok := c.index[key]
	if !ok {
		return false
	}
	node.Unlink()
	delete(c.index, key)

	return true
}

// Keys returns the cached keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for n := c.head.Next; n != c.tail; n = n.Next {
		keys = append(keys, n.Value.key)
	}

	return keys
}

// Clear drops every entry. OnEvict is not called.
func (c *Cache[K, V]) Clear() {
	clear(c.index)
	c.resetChain()
}

// promote moves node to the MRU end.
func (c *Cache[K, V]) promote(node *linkedlist.DNode[entry[K, V]]) {
	if c.head.Next == node {
		return
	}
	node.Unlink()
	c.head.InsertAfter(node)
}

// resetChain links two fresh sentinels to each other.
func (c *Cache[K, V]) resetChain() {
	c.head = &linkedlist.DNode[entry[K, V]]{}
	c.tail = &linkedlist.DNode[entry[K, V]]{}
	c.head.InsertAfter(c.tail)
}
