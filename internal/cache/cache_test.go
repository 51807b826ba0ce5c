// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"strconv"
	"sync"
	"testing"
)

// fill returns a create func recording that it ran.
func fill[V any](v V, created *bool) func() V {
	return func() V {
		*created = true
		return v
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, string](2)
	var created bool
	c.GetOrCreate(1, fill("one", &created))
	c.GetOrCreate(2, fill("two", &created))
	c.GetOrCreate(1, fill("one", &created)) // 2 is now the oldest
	c.GetOrCreate(3, fill("three", &created))

	for _, k := range []int{1, 3} {
		created = false
		c.GetOrCreate(k, fill("again", &created))
		if created {
			t.Errorf("entry %d was evicted", k)
		}
	}
	created = false
	if v := c.GetOrCreate(2, fill("again", &created)); !created || v != "again" {
		t.Error("entry 2 should have been evicted")
	}
	if st := c.Stats(); st.Len != 2 {
		t.Errorf("Stats().Len = %d, want 2", st.Len)
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 1000; i++ {
		c.GetOrCreate(i, func() int { return i })
	}
	if st := c.Stats(); st.Len != 1000 || st.Misses != 1000 {
		t.Errorf("Stats() = %+v, want 1000 entries and misses", st)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](8)
	calls := 0
	create := func() int { calls++; return 42 }

	for i := 0; i < 3; i++ {
		if v := c.GetOrCreate("k", create); v != 42 {
			t.Fatalf("GetOrCreate() = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 || st.Len != 1 {
		t.Errorf("Stats() = %+v, want 2 hits, 1 miss, len 1", st)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := strconv.Itoa((g + i) % 32)
				c.GetOrCreate(k, func() int { return i })
			}
		}(g)
	}
	wg.Wait()
	if st := c.Stats(); st.Len > 16 {
		t.Errorf("Stats().Len = %d exceeds capacity 16", st.Len)
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() int { return i })
	}
}
