// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/rasm/internal/blend"
	"github.com/gogpu/rasm/internal/logging"
)

// MaxPixels is the largest drawing, in pixels, a Set will allocate.
const MaxPixels = 1 << 26

// Errors returned when a Set cannot be created.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrTooLarge is returned when the drawing exceeds MaxPixels.
	ErrTooLarge = errors.New("surface: drawing too large")
)

// Blend selects how the stroke surface is combined with the layer.
type Blend struct {
	// Eraser makes Result interpolate from Layer towards Stroke instead of
	// compositing Stroke over Layer.
	Eraser bool

	// Opacity of the stroke in [0, 1].
	Opacity float64
}

// Set is the three-surface raster model of one drawing session.
type Set struct {
	layer  *image.RGBA
	stroke *image.RGBA
	result *image.RGBA
}

// NewSet creates a blank, fully transparent set of the given size.
func NewSet(width, height int) (*Set, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	r := image.Rect(0, 0, width, height)
	s := &Set{
		layer:  image.NewRGBA(r),
		stroke: image.NewRGBA(r),
		result: image.NewRGBA(r),
	}
	logging.Logger().Debug("surface: set created", "width", width, "height", height)
	return s, nil
}

// NewSetFromImage creates a set whose layer is a copy of img. The copy is
// re-anchored at the origin and converted to premultiplied RGBA. Result is
// composited over the whole surface.
func NewSetFromImage(img image.Image) (*Set, error) {
	b := img.Bounds()
	s, err := NewSet(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(s.layer, s.layer.Bounds(), img, b.Min, draw.Src)
	s.CompositeAll()
	return s, nil
}

// Width returns the width shared by all three surfaces.
func (s *Set) Width() int { return s.layer.Rect.Dx() }

// Height returns the height shared by all three surfaces.
func (s *Set) Height() int { return s.layer.Rect.Dy() }

// Bounds returns the surface bounds, anchored at the origin.
func (s *Set) Bounds() image.Rectangle { return s.layer.Rect }

// Layer returns the authoritative drawing surface.
func (s *Set) Layer() *image.RGBA { return s.layer }

// Stroke returns the stroke preview surface.
func (s *Set) Stroke() *image.RGBA { return s.stroke }

// Result returns the composited surface.
func (s *Set) Result() *image.RGBA { return s.result }

// ClearStroke erases the stroke preview to transparent.
func (s *Set) ClearStroke() {
	clear(s.stroke.Pix)
}

// SeedStrokeFromLayer copies the layer into the stroke preview. Eraser
// strokes start from it so erasing removes alpha from real pixels.
func (s *Set) SeedStrokeFromLayer() {
	copy(s.stroke.Pix, s.layer.Pix)
}

// Composite recomputes Result from Layer and Stroke inside r. Pixels outside
// r are untouched; r is clipped to the surface bounds.
func (s *Set) Composite(r image.Rectangle, b Blend) {
	r = r.Intersect(s.layer.Rect)
	if r.Empty() {
		return
	}
	op := blend.Alpha(b.Opacity)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := s.layer.PixOffset(r.Min.X, y)
		j := i + r.Dx()*4
		dst := s.result.Pix[i:j]
		if b.Eraser {
			blend.LerpSpan(dst, s.layer.Pix[i:j], s.stroke.Pix[i:j], op)
		} else {
			blend.SourceOverSpan(dst, s.stroke.Pix[i:j], s.layer.Pix[i:j], op)
		}
	}
}

// RestoreResult copies Layer into Result inside r, dropping any stroke
// preview there. Used after a cancelled stroke and after undo or redo.
func (s *Set) RestoreResult(r image.Rectangle) {
	CopyRect(s.result, s.layer, r)
}

// CompositeAll resets the stroke preview and makes Result equal Layer over
// the whole surface.
func (s *Set) CompositeAll() {
	s.ClearStroke()
	copy(s.result.Pix, s.layer.Pix)
}
