// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Clone returns a deep copy of img, including its bounds.
func Clone(img *image.RGBA) *image.RGBA {
	c := &image.RGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(c.Pix, img.Pix)
	return c
}

// Snapshot copies the pixels of src inside r into a new image anchored at
// r.Min. r is clipped to the bounds of src.
func Snapshot(src *image.RGBA, r image.Rectangle) *image.RGBA {
	r = r.Intersect(src.Rect)
	dst := image.NewRGBA(r)
	CopyRect(dst, src, r)
	return dst
}

// CopyRect copies the pixels of src inside r into dst at the same
// coordinates. r is clipped to both bounds.
func CopyRect(dst, src *image.RGBA, r image.Rectangle) {
	r = r.Intersect(dst.Rect).Intersect(src.Rect)
	if r.Empty() {
		return
	}
	n := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		j := src.PixOffset(r.Min.X, y)
		copy(dst.Pix[i:i+n], src.Pix[j:j+n])
	}
}

// Fill sets every pixel of img inside r to c.
func Fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}
	p := color.RGBAModel.Convert(c).(color.RGBA)
	px := [4]uint8{p.R, p.G, p.B, p.A}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X-1, y)+4]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], px[:])
		}
	}
}

// IsTransparent reports whether every pixel of img inside r has zero alpha.
func IsTransparent(img *image.RGBA, r image.Rectangle) bool {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] != 0 {
				return false
			}
		}
	}
	return true
}
