// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend implements the premultiplied-alpha pixel operations used to
// paint brush dabs and composite the stroke surface over the drawing layer.
//
// All operations work on premultiplied RGBA8 bytes, the layout of
// image.RGBA.Pix. Rounding is exact so that compositing the same inputs
// twice always produces identical bytes.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255, rounding to nearest, without a division.
//
// Formula: (t + (t >> 8)) >> 8 with t = x + 128
//
// Exact for every x in [0, 255*255].
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns round(a*b/255).
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// addSat adds two bytes, clamping to 255.
func addSat(a, b byte) byte {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return byte(s)
}

// Alpha converts an opacity in [0, 1] to a byte, clamping out-of-range input.
func Alpha(v float64) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return byte(v*255 + 0.5)
}

// Scale returns round(a*b/255). Exported for callers combining coverage masks.
func Scale(a, b byte) byte {
	return mulDiv255(a, b)
}
