// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasm

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidHex is returned by ParseHex for malformed colour strings.
var ErrInvalidHex = errors.New("rasm: invalid hex colour")

// RGBA represents a straight (non-premultiplied) colour with red, green,
// blue and alpha components, each in the range [0, 1].
//
// RGBA implements color.Color, so it can be passed wherever the canvas takes
// a brush or background colour.
type RGBA struct {
	R, G, B, A float64
}

// Common colours.
var (
	Transparent = RGBA{}
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}

	// DefaultBrushColor is the brush colour of a new Context (#2187BB).
	DefaultBrushColor = RGBA{R: 0x21 / 255.0, G: 0x87 / 255.0, B: 0xbb / 255.0, A: 1}
)

// RGB creates an opaque colour from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// NRGBA converts c to 8-bit straight alpha.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Hex creates a colour from a hex string, returning opaque black for
// malformed input. See ParseHex for the accepted formats.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without a
// leading '#'.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint32
	v[3] = 255
	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return RGBA{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
		A: float64(v[3]) / 255,
	}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

func clamp255(v float64) float64 {
	return math.Round(math.Max(0, math.Min(255, v)))
}
