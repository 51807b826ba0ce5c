// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// SourceOverSpan composites src, scaled by opacity, over under and writes the
// result to dst. All three slices hold premultiplied RGBA8 pixels and must
// have the same length (a multiple of 4). dst may alias under or src.
//
// Formula: D = S*op + U*(1 - Sa*op)
func SourceOverSpan(dst, src, under []byte, opacity byte) {
	n := len(dst)
	if n == 0 {
		return
	}
	_ = src[n-1]
	_ = under[n-1]
	for i := 0; i < n; i += 4 {
		sa := mulDiv255(src[i+3], opacity)
		if sa == 0 {
			dst[i+0] = under[i+0]
			dst[i+1] = under[i+1]
			dst[i+2] = under[i+2]
			dst[i+3] = under[i+3]
			continue
		}
		inv := 255 - sa
		dst[i+0] = addSat(mulDiv255(src[i+0], opacity), mulDiv255(under[i+0], inv))
		dst[i+1] = addSat(mulDiv255(src[i+1], opacity), mulDiv255(under[i+1], inv))
		dst[i+2] = addSat(mulDiv255(src[i+2], opacity), mulDiv255(under[i+2], inv))
		dst[i+3] = addSat(sa, mulDiv255(under[i+3], inv))
	}
}

// LerpSpan writes a + (b - a)*t to dst for every channel. It is used by the
// eraser, where b is the drawing with the brush alpha already removed.
// With t == 255 dst becomes an exact copy of b; with t == 0 a copy of a.
func LerpSpan(dst, a, b []byte, t byte) {
	n := len(dst)
	if n == 0 {
		return
	}
	_ = a[n-1]
	_ = b[n-1]
	switch t {
	case 0:
		copy(dst, a[:n])
		return
	case 255:
		copy(dst, b[:n])
		return
	}
	inv := 255 - t
	for i := 0; i < n; i++ {
		dst[i] = addSat(mulDiv255(a[i], inv), mulDiv255(b[i], t))
	}
}

// StampMax merges one brush dab pixel into px. The dab has the straight
// (non-premultiplied) colour r, g, b, a and the given coverage. The pixel keeps
// whichever alpha is larger, so overlapping dabs of one stroke never build up
// beyond the brush colour's own alpha.
func StampMax(px []byte, r, g, b, a, coverage byte) {
	na := mulDiv255(a, coverage)
	if na <= px[3] {
		return
	}
	px[0] = mulDiv255(r, na)
	px[1] = mulDiv255(g, na)
	px[2] = mulDiv255(b, na)
	px[3] = na
}

// DestinationOut removes coverage from px.
//
// Formula: D = D * (1 - coverage)
func DestinationOut(px []byte, coverage byte) {
	if coverage == 0 {
		return
	}
	inv := 255 - coverage
	px[0] = mulDiv255(px[0], inv)
	px[1] = mulDiv255(px[1], inv)
	px[2] = mulDiv255(px[2], inv)
	px[3] = mulDiv255(px[3], inv)
}
