// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import "sync"

// Cache is a generic thread-safe LRU cache with a fixed capacity.
// When an insert pushes the cache over capacity, the least recently used
// entry is evicted. A capacity of 0 means unlimited.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruNode[K, V]
	order    lruList[K, V]
	capacity int

	hits   uint64
	misses uint64
}

// Stats reports cache effectiveness.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		entries:  make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
}

// GetOrCreate returns the cached value for key or stores and returns the
// result of create. create runs under the lock, so it is called at most once
// per missing key.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.hits++
		c.order.moveToFront(n)
		return n.value
	}
	c.misses++
	v := create()
	c.insertLocked(key, v)
	return v
}

func (c *Cache[K, V]) insertLocked(key K, value V) {
	n := &lruNode[K, V]{key: key, value: value}
	c.entries[key] = n
	c.order.pushFront(n)

	if c.capacity > 0 && c.order.len > c.capacity {
		if old := c.order.removeOldest(); old != nil {
			delete(c.entries, old.key)
		}
	}
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Hits: c.hits, Misses: c.misses}
}
