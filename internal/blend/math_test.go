// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

import "testing"

// TestDiv255 checks the shift formula against rounded integer division for
// every product of two bytes.
func TestDiv255(t *testing.T) {
	for x := uint32(0); x <= 255*255; x++ {
		want := (x + 127) / 255
		if got := div255(x); got != want {
			t.Fatalf("div255(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * zero", 255, 0, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"1 * 1", 1, 1, 0},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		in   float64
		want byte
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		if got := Alpha(tt.in); got != tt.want {
			t.Errorf("Alpha(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
