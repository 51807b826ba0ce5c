// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/rasm/internal/cache"
)

// kappa places cubic Bézier control points so four curves approximate a circle.
const kappa = 0.5522847498

// tipKey identifies a tip mask. Hardness is quantised to hundredths.
type tipKey struct {
	diameter int
	hardness uint8
}

// tips is shared by all tools; a session rarely uses more than a few sizes.
var tips = cache.New[tipKey, *image.Alpha](64)

// TipStats describes the shared tip mask cache.
type TipStats struct {
	Cached int    // masks currently held
	Hits   uint64 // lookups served from the cache
	Misses uint64 // masks rasterised
}

// TipCacheStats returns a snapshot of the tip mask cache shared by all
// tools.
func TipCacheStats() TipStats {
	st := tips.Stats()
	return TipStats{Cached: st.Len, Hits: st.Hits, Misses: st.Misses}
}

// tipMask returns the coverage mask of a round tip of the given width. The
// mask is square, anchored at the origin and must not be modified.
func tipMask(width, hardness float64) *image.Alpha {
	d := int(math.Ceil(width))
	if d < 1 {
		d = 1
	}
	key := tipKey{diameter: d, hardness: uint8(math.Round(hardness * 100))}
	return tips.GetOrCreate(key, func() *image.Alpha {
		h := float64(key.hardness) / 100
		if h >= 1 {
			return hardTip(d)
		}
		return softTip(d, h)
	})
}

// hardTip rasterises an anti-aliased disc filling a d×d square.
func hardTip(d int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, d, d))
	r := float32(d) / 2
	c := r
	k := float32(kappa) * r

	z := vector.NewRasterizer(d, d)
	z.MoveTo(c+r, c)
	z.CubeTo(c+r, c+k, c+k, c+r, c, c+r)
	z.CubeTo(c-k, c+r, c-r, c+k, c-r, c)
	z.CubeTo(c-r, c-k, c-k, c-r, c, c-r)
	z.CubeTo(c+k, c-r, c+r, c-k, c+r, c)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// softTip computes a disc that is opaque up to hardness*radius and fades to
// zero at the rim with a smoothstep curve.
func softTip(d int, hardness float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, d, d))
	r := float64(d) / 2
	inner := r * hardness
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dist := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r)
			var a float64
			switch {
			case dist <= inner:
				a = 1
			case dist >= r:
				a = 0
			default:
				t := (dist - inner) / (r - inner)
				a = 1 - t*t*(3-2*t)
			}
			mask.Pix[y*mask.Stride+x] = uint8(a*255 + 0.5)
		}
	}
	return mask
}
