// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

// lruNode is a node in a doubly-linked LRU list. It carries its key and value
// so eviction can remove the map entry in O(1).
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// lruList is a doubly-linked list ordered by recency.
// The head is the most recently used node, the tail the least.
// Not thread-safe; Cache holds the lock.
type lruList[K comparable, V any] struct {
	head *lruNode[K, V]
	tail *lruNode[K, V]
	len  int
}

func (l *lruList[K, V]) pushFront(n *lruNode[K, V]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *lruList[K, V]) moveToFront(n *lruNode[K, V]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.pushFront(n)
}

// removeOldest unlinks and returns the tail, or nil if the list is empty.
func (l *lruList[K, V]) removeOldest() *lruNode[K, V] {
	n := l.tail
	if n != nil {
		l.unlink(n)
	}
	return n
}

func (l *lruList[K, V]) unlink(n *lruNode[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.len--
}
