// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasm

import (
	"image/color"
	"testing"

	"github.com/gogpu/rasm/brush"
)

func TestContextOptions(t *testing.T) {
	cfg := brush.DefaultConfig()
	cfg.Width = 3
	cfg.Eraser = true

	rc := NewContext(
		WithBrushConfig(cfg),
		WithBrushColor(Hex("#123456")),
		WithBackground(Black),
		WithHistoryLimit(2),
	)
	if got := rc.BrushConfig(); got != cfg {
		t.Errorf("BrushConfig() = %+v, want %+v", got, cfg)
	}
	if got := FromColor(rc.BrushColor()).NRGBA(); got != (color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}) {
		t.Errorf("BrushColor() = %v", got)
	}
	if got := rc.BackgroundColor(); got != (color.NRGBA{A: 255}) {
		t.Errorf("BackgroundColor() = %v, want opaque black", got)
	}

	if err := rc.Init(20, 20); err != nil {
		t.Fatal(err)
	}
	if err := rc.SetBrushConfig(brush.DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	for i := range 4 {
		y := float64(2 + i*5)
		drawStroke(t, rc, Point{2, y}, Point{18, y})
	}
	if got := len(rc.History()); got != 2 {
		t.Errorf("len(History()) = %d, want the limit 2", got)
	}
}

func TestContextOptionsIgnoreNil(t *testing.T) {
	rc := NewContext(WithBrushColor(nil), WithBackground(nil))
	if rc.BrushColor() != DefaultBrushColor {
		t.Errorf("BrushColor() = %v, want default", rc.BrushColor())
	}
	if got := rc.BackgroundColor(); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("BackgroundColor() = %v, want white", got)
	}
}
