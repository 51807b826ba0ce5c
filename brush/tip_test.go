// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import "testing"

func TestHardTip(t *testing.T) {
	m := tipMask(20, 1)
	if m.Rect.Dx() != 20 || m.Rect.Dy() != 20 {
		t.Fatalf("tip size = %v, want 20x20", m.Rect)
	}
	if a := m.AlphaAt(10, 10).A; a != 255 {
		t.Errorf("centre coverage = %d, want 255", a)
	}
	if a := m.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner coverage = %d, want 0", a)
	}
	// The rim is anti-aliased, not binary.
	partial := false
	for x := 0; x < 20; x++ {
		if a := m.AlphaAt(x, 0).A; a > 0 && a < 255 {
			partial = true
		}
	}
	if !partial {
		t.Error("expected partially covered pixels on the top row")
	}
}

func TestSoftTipFalloff(t *testing.T) {
	m := tipMask(21, 0.3)
	prev := uint8(255)
	for x := 10; x < 21; x++ {
		a := m.AlphaAt(x, 10).A
		if a > prev {
			t.Fatalf("coverage rises from %d to %d at x=%d", prev, a, x)
		}
		prev = a
	}
	if a := m.AlphaAt(10, 10).A; a != 255 {
		t.Errorf("centre coverage = %d, want 255", a)
	}
	if prev > 10 {
		t.Errorf("rim coverage = %d, want close to 0", prev)
	}
}

func TestTipMaskCached(t *testing.T) {
	a := tipMask(7.2, 0.5)
	b := tipMask(7.9, 0.501)
	if a != b {
		t.Error("tips of the same diameter and hardness should be shared")
	}
	if tipMask(0.2, 1).Rect.Dx() != 1 {
		t.Error("sub-pixel tips should be one pixel wide")
	}
}

func TestTipCacheStats(t *testing.T) {
	before := TipCacheStats()
	tipMask(311, 0.37)
	tipMask(311, 0.37)
	after := TipCacheStats()

	if got := after.Misses - before.Misses; got != 1 {
		t.Errorf("misses grew by %d, want 1", got)
	}
	if got := after.Hits - before.Hits; got < 1 {
		t.Errorf("hits grew by %d, want at least 1", got)
	}
	if after.Cached < 1 || after.Cached > 64 {
		t.Errorf("Cached = %d, want within [1, 64]", after.Cached)
	}
}
