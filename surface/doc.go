// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface owns the three raster buffers of a drawing session and the
// rules for compositing them.
//
// # Surfaces
//
// A Set holds three premultiplied RGBA surfaces of identical size:
//
//   - Layer: the authoritative drawing. Only committed actions change it.
//   - Stroke: the stroke preview. It accumulates the stroke in progress and is
//     cleared when the next stroke starts.
//   - Result: Layer blended with Stroke. Used for live preview and as the
//     source of the pixels committed at the end of a stroke.
//
// Outside the dirty rectangle of an active stroke, Result always equals Layer.
//
// # Compositing
//
// Composite recomputes Result only inside the given rectangle. The Blend value
// picks the rule: painting composites the stroke over the layer, erasing
// interpolates from the layer towards the stroke surface, which was seeded
// from the layer with the brush alpha removed.
//
//	set, err := surface.NewSet(800, 600)
//	if err != nil {
//	    return err
//	}
//	set.ClearStroke()
//	// ... paint into set.Stroke() ...
//	set.Composite(dirty, surface.Blend{Opacity: 1})
//
// # Thread Safety
//
// A Set is not safe for concurrent use. Owners that render on another
// goroutine must guard it with a single read/write lock.
package surface
