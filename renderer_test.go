// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasm

import (
	"image"
	"image/color"
	"testing"
)

func TestRender(t *testing.T) {
	rc := newCanvas(t, 50, 50)
	drawStroke(t, rc, Point{5, 25}, Point{45, 25})

	black := color.RGBA{A: 255}
	fill := func(img *image.RGBA) {
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i+3] = 255
		}
	}

	tests := []struct {
		name string
		size int
		m    Matrix
		want map[image.Point]color.RGBA
	}{
		{
			name: "identity",
			size: 50,
			m:    Identity(),
			want: map[image.Point]color.RGBA{
				{25, 25}: opaqueRed,
				{25, 5}:  white,
			},
		},
		{
			name: "scaled",
			size: 100,
			m:    Scale(2, 2),
			want: map[image.Point]color.RGBA{
				{50, 50}: opaqueRed,
				{50, 10}: white,
			},
		},
		{
			name: "translated",
			size: 100,
			m:    Translate(50, 50),
			want: map[image.Point]color.RGBA{
				{75, 75}: opaqueRed,
				{10, 10}: black,
				{75, 55}: white,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := image.NewRGBA(image.Rect(0, 0, tt.size, tt.size))
			fill(dst)
			if err := rc.Render(dst, tt.m); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for p, want := range tt.want {
				if got := dst.RGBAAt(p.X, p.Y); got != want {
					t.Errorf("dst%v = %v, want %v", p, got, want)
				}
			}
		})
	}
}

func TestRenderView(t *testing.T) {
	rc := newCanvas(t, 20, 10, WithBackground(Black))
	if err := rc.ResetTransformation(40, 40); err != nil {
		t.Fatal(err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	if err := rc.RenderView(dst); err != nil {
		t.Fatal(err)
	}
	// 20x10 fitted into 40x40 is scaled by 2 and centred vertically.
	if got := dst.RGBAAt(20, 5); got != (color.RGBA{}) {
		t.Errorf("dst(20,5) = %v, want untouched", got)
	}
	if got := dst.RGBAAt(20, 20); got != (color.RGBA{A: 255}) {
		t.Errorf("dst(20,20) = %v, want the black background", got)
	}
}
