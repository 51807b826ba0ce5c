// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/rasm/surface"
)

// Kind identifies an Action variant.
type Kind uint8

const (
	KindClear Kind = iota
	KindChangeBackground
	KindCommitRegion
)

var kindNames = [...]string{
	KindClear:            "Clear",
	KindChangeBackground: "ChangeBackground",
	KindCommitRegion:     "CommitRegion",
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Action is a discrete, undoable mutation of the canvas.
//
// The set of actions is closed: Clear, ChangeBackground and *CommitRegion are
// the only implementations. Actions are immutable once created.
type Action interface {
	Kind() Kind
	isAction()
}

// Clear erases the whole layer to transparent.
type Clear struct{}

// Kind implements Action.
func (Clear) Kind() Kind { return KindClear }
func (Clear) isAction()  {}

// ChangeBackground sets the colour drawn beneath the layer when rendering and
// exporting. It never changes layer pixels.
type ChangeBackground struct {
	Color color.NRGBA
}

// Kind implements Action.
func (ChangeBackground) Kind() Kind { return KindChangeBackground }
func (ChangeBackground) isAction()  {}

// CommitRegion copies a block of finished stroke pixels into the layer. It is
// the only way a stroke becomes part of the drawing.
type CommitRegion struct {
	pixels *image.RGBA // copy of the source rect, anchored at src.Min
	src    image.Rectangle
	dst    image.Rectangle
}

// NewCommitRegion captures src inside srcRect for a later copy into the layer
// at dstRect. The rectangles must be non-empty, of equal size, and srcRect must
// lie within src. The pixels are copied, so later changes to src do not
// affect the action.
func NewCommitRegion(src *image.RGBA, srcRect, dstRect image.Rectangle) (*CommitRegion, error) {
	switch {
	case src == nil:
		return nil, fmt.Errorf("%w: nil source", ErrInvalidRect)
	case srcRect.Empty() || dstRect.Empty():
		return nil, fmt.Errorf("%w: empty rect (src %v, dst %v)", ErrInvalidRect, srcRect, dstRect)
	case srcRect.Size() != dstRect.Size():
		return nil, fmt.Errorf("%w: size mismatch (src %v, dst %v)", ErrInvalidRect, srcRect, dstRect)
	case !srcRect.In(src.Rect):
		return nil, fmt.Errorf("%w: src %v outside %v", ErrRectOutOfBounds, srcRect, src.Rect)
	}
	return &CommitRegion{
		pixels: surface.Snapshot(src, srcRect),
		src:    srcRect,
		dst:    dstRect,
	}, nil
}

// Kind implements Action.
func (*CommitRegion) Kind() Kind { return KindCommitRegion }
func (*CommitRegion) isAction()  {}

// SourceRect returns the rectangle the pixels were read from.
func (c *CommitRegion) SourceRect() image.Rectangle { return c.src }

// DestRect returns the layer rectangle the pixels are written to.
func (c *CommitRegion) DestRect() image.Rectangle { return c.dst }

// Pixels returns the captured pixels, anchored at SourceRect().Min.
// The image must not be modified.
func (c *CommitRegion) Pixels() *image.RGBA { return c.pixels }

// apply copies the captured pixels into layer at dst.
func (c *CommitRegion) apply(layer *image.RGBA) {
	n := c.dst.Dx() * 4
	for y := 0; y < c.dst.Dy(); y++ {
		i := layer.PixOffset(c.dst.Min.X, c.dst.Min.Y+y)
		j := c.pixels.PixOffset(c.src.Min.X, c.src.Min.Y+y)
		copy(layer.Pix[i:i+n], c.pixels.Pix[j:j+n])
	}
}
