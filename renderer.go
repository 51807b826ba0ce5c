// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasm

import (
	"image"

	"golang.org/x/image/draw"
)

// Render draws the canvas onto dst through the canvas-to-screen
// transformation m: the background colour first, then the result surface,
// which shows the layer with any gesture in progress composited over it.
//
// Render holds the read lock for the whole frame. Pixels of dst outside the
// transformed canvas are left untouched.
func (c *Context) Render(dst draw.Image, m Matrix) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.set == nil {
		return ErrNotInitialized
	}
	b := c.set.Bounds()
	aff := m.aff3()
	draw.NearestNeighbor.Transform(dst, aff, image.NewUniform(c.state.Background()), b, draw.Over, nil)
	interp := draw.Interpolator(draw.BiLinear)
	if m.IsIdentity() {
		interp = draw.NearestNeighbor
	}
	interp.Transform(dst, aff, c.set.Result(), b, draw.Over, nil)
	return nil
}

// RenderView is Render with the Context's own transformation.
func (c *Context) RenderView(dst draw.Image) error {
	return c.Render(dst, c.Transformation())
}
