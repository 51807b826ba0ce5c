// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"fmt"
	"math"
)

// MaxWidth is the largest supported brush diameter in pixels.
const MaxWidth = 1024

// Config describes a brush. A Tool copies it at construction, so changing a
// Config never affects a stroke in progress.
type Config struct {
	// Width is the tip diameter in pixels. A zero width paints nothing.
	Width float64

	// Hardness in [0, 1]: 1 is a crisp anti-aliased disc, lower values fade
	// out from Hardness*radius to the rim.
	Hardness float64

	// Opacity in [0, 1] of the whole stroke, applied when compositing.
	Opacity float64

	// Flow in [0, 1] is the alpha of a single dab.
	Flow float64

	// Spacing between dabs as a fraction of Width. The effective step is
	// never below one pixel.
	Spacing float64

	// Eraser removes alpha from the drawing instead of adding colour.
	Eraser bool
}

// DefaultConfig returns a 10px hard round brush.
func DefaultConfig() Config {
	return Config{
		Width:    10,
		Hardness: 1,
		Opacity:  1,
		Flow:     1,
		Spacing:  0.1,
	}
}

// Validate reports whether every field is in range.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Width) || c.Width < 0 || c.Width > MaxWidth:
		return fmt.Errorf("%w: width %v out of [0, %d]", ErrInvalidConfig, c.Width, MaxWidth)
	case !unit(c.Hardness):
		return fmt.Errorf("%w: hardness %v out of [0, 1]", ErrInvalidConfig, c.Hardness)
	case !unit(c.Opacity):
		return fmt.Errorf("%w: opacity %v out of [0, 1]", ErrInvalidConfig, c.Opacity)
	case !unit(c.Flow):
		return fmt.Errorf("%w: flow %v out of [0, 1]", ErrInvalidConfig, c.Flow)
	case math.IsNaN(c.Spacing) || c.Spacing <= 0 || c.Spacing > 10:
		return fmt.Errorf("%w: spacing %v out of (0, 10]", ErrInvalidConfig, c.Spacing)
	}
	return nil
}

// step returns the distance between two dabs in pixels.
func (c Config) step() float64 {
	return math.Max(1, c.Spacing*c.Width)
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}
