// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package brush paints one stroke at a time into a surface.Set.
//
// A Tool is created for a single gesture. It stamps dabs of a round tip along
// the sample path at a fixed spacing, so the stroke stays continuous however
// far apart the samples are. Each dab is merged into the stroke surface and
// the result surface is recomposited under the dab only. The union of all dab
// rectangles is the stroke boundary used to commit the stroke.
//
// Lifecycle:
//
//	Idle --StartDrawing--> Drawing --EndDrawing--> Ended
//	                          |
//	                          +------Cancel-----> Cancelled
//
// Any other transition returns an error and leaves the tool unchanged.
package brush

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/rasm/internal/blend"
	"github.com/gogpu/rasm/internal/logging"
	"github.com/gogpu/rasm/surface"
)

// Errors returned by Tool.
var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("brush: invalid config")

	// ErrAlreadyStarted is returned by StartDrawing on a tool that left Idle.
	ErrAlreadyStarted = errors.New("brush: stroke already started")

	// ErrNotDrawing is returned when a stroke operation is called outside Drawing.
	ErrNotDrawing = errors.New("brush: not drawing")
)

// State is the lifecycle state of a Tool.
type State uint8

const (
	Idle State = iota
	Drawing
	Ended
	Cancelled
)

var stateNames = [...]string{
	Idle:      "Idle",
	Drawing:   "Drawing",
	Ended:     "Ended",
	Cancelled: "Cancelled",
}

// String returns the state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Point is a sample position in surface pixel coordinates.
type Point struct {
	X, Y float64
}

// Tool paints a single stroke.
//
// A Tool is not safe for concurrent use.
type Tool struct {
	set   *surface.Set
	cfg   Config
	color color.NRGBA
	tip   *image.Alpha
	flow  byte
	step  float64

	state    State
	last     Point
	carry    float64 // distance travelled since the last dab
	boundary image.Rectangle
	dabs     int
}

// NewTool creates an idle tool painting into set with the colour c.
// cfg is copied and validated; c is ignored in eraser mode.
func NewTool(set *surface.Set, c color.Color, cfg Config) (*Tool, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil surface set", ErrInvalidConfig)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: nil colour", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Tool{
		set:   set,
		cfg:   cfg,
		color: color.NRGBAModel.Convert(c).(color.NRGBA),
		flow:  blend.Alpha(cfg.Flow),
		step:  cfg.step(),
	}
	if cfg.Width > 0 {
		t.tip = tipMask(cfg.Width, cfg.Hardness)
	}
	return t, nil
}

// Config returns the configuration captured at construction.
func (t *Tool) Config() Config { return t.cfg }

// State returns the lifecycle state.
func (t *Tool) State() State { return t.state }

// Blend returns the compositing rule for this tool's stroke.
func (t *Tool) Blend() surface.Blend {
	return surface.Blend{Eraser: t.cfg.Eraser, Opacity: t.cfg.Opacity}
}

// StrokeBoundary returns the union of every dab rectangle painted so far, in
// surface coordinates and not clamped to the surface. It is only meaningful
// once the tool has Ended.
func (t *Tool) StrokeBoundary() image.Rectangle { return t.boundary }

// Dabs returns the number of dabs stamped so far.
func (t *Tool) Dabs() int { return t.dabs }

// StartDrawing begins the stroke at p and stamps the first dab. In eraser
// mode the caller must seed the stroke surface from the layer beforehand.
func (t *Tool) StartDrawing(p Point) error {
	if t.state != Idle {
		return fmt.Errorf("%w (state %v)", ErrAlreadyStarted, t.state)
	}
	t.state = Drawing
	t.last = p
	t.carry = 0
	pt := image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
	t.boundary = image.Rectangle{Min: pt, Max: pt}
	if t.tip != nil {
		t.stamp(p)
	}
	return nil
}

// ContinueDrawing paints the segment from the previous sample to p.
func (t *Tool) ContinueDrawing(p Point) error {
	if t.state != Drawing {
		return fmt.Errorf("%w (state %v)", ErrNotDrawing, t.state)
	}
	t.segment(p)
	return nil
}

// EndDrawing paints the final segment to p, caps the stroke with a dab at p
// and ends the stroke. StrokeBoundary is final afterwards.
func (t *Tool) EndDrawing(p Point) error {
	if t.state != Drawing {
		return fmt.Errorf("%w (state %v)", ErrNotDrawing, t.state)
	}
	t.segment(p)
	if t.tip != nil && t.carry > 0 {
		t.stamp(p)
	}
	t.state = Ended
	logging.Logger().Debug("brush: stroke ended",
		"dabs", t.dabs, "boundary", t.boundary, "eraser", t.cfg.Eraser)
	return nil
}

// Cancel abandons the stroke. The stroke surface keeps whatever was painted;
// the boundary must not be used to commit anything.
func (t *Tool) Cancel() error {
	if t.state != Drawing {
		return fmt.Errorf("%w (state %v)", ErrNotDrawing, t.state)
	}
	t.state = Cancelled
	logging.Logger().Debug("brush: stroke cancelled", "dabs", t.dabs)
	return nil
}

// segment stamps dabs every step pixels along the line from the previous
// sample to p. The distance since the last dab carries over between
// segments, so spacing does not depend on how densely samples arrive. Dabs
// that cannot reach the surface are skipped without changing the spacing.
func (t *Tool) segment(p Point) {
	dx, dy := p.X-t.last.X, p.Y-t.last.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	if t.tip != nil {
		first := t.step - t.carry
		if lo, hi, ok := t.reach(dx/dist, dy/dist, dist); ok {
			d := first
			if lo > d {
				d += math.Ceil((lo-d)/t.step) * t.step
			}
			for ; d <= hi; d += t.step {
				f := d / dist
				t.stamp(Point{X: t.last.X + dx*f, Y: t.last.Y + dy*f})
			}
		}
		if first > dist {
			t.carry += dist
		} else {
			t.carry = dist - (first + math.Floor((dist-first)/t.step)*t.step)
		}
	}
	t.last = p
}

// reach returns the distances [lo, hi] along the segment starting at the
// previous sample with direction (ux, uy) and length dist at which a dab
// centre lies within one tip diameter of the surface. ok is false when no
// dab on the segment can touch the surface.
func (t *Tool) reach(ux, uy, dist float64) (lo, hi float64, ok bool) {
	r := t.set.Bounds()
	pad := float64(t.tip.Rect.Dx())
	lo, hi = 0, dist
	clip := func(origin, u, lim0, lim1 float64) bool {
		if u == 0 {
			return origin >= lim0 && origin <= lim1
		}
		a, b := (lim0-origin)/u, (lim1-origin)/u
		if a > b {
			a, b = b, a
		}
		lo, hi = math.Max(lo, a), math.Min(hi, b)
		return lo <= hi
	}
	ok = clip(t.last.X, ux, float64(r.Min.X)-pad, float64(r.Max.X)+pad) &&
		clip(t.last.Y, uy, float64(r.Min.Y)-pad, float64(r.Max.Y)+pad)
	return lo, hi, ok
}

// stamp merges one dab centred on p into the stroke surface, grows the
// boundary and recomposites the dab's area.
func (t *Tool) stamp(p Point) {
	d := t.tip.Rect.Dx()
	ox := int(math.Floor(p.X - float64(d)/2 + 0.5))
	oy := int(math.Floor(p.Y - float64(d)/2 + 0.5))
	dab := image.Rect(ox, oy, ox+d, oy+d)
	t.boundary = t.boundary.Union(dab)
	t.dabs++

	clip := dab.Intersect(t.set.Bounds())
	if clip.Empty() {
		return
	}
	stroke := t.set.Stroke()
	c := t.color
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		mi := t.tip.PixOffset(clip.Min.X-ox, y-oy)
		si := stroke.PixOffset(clip.Min.X, y)
		for x := clip.Min.X; x < clip.Max.X; x++ {
			cov := t.tip.Pix[mi]
			if cov != 0 {
				cov = blend.Scale(cov, t.flow)
				px := stroke.Pix[si : si+4 : si+4]
				if t.cfg.Eraser {
					blend.DestinationOut(px, cov)
				} else {
					blend.StampMax(px, c.R, c.G, c.B, c.A, cov)
				}
			}
			mi++
			si += 4
		}
	}
	t.set.Composite(clip, t.Blend())
}
