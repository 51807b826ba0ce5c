// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/rasm"
	"github.com/gogpu/rasm/brush"
	"github.com/gogpu/rasm/touch"
)

// defaultBatch is the number of samples per move event when the scene does
// not say.
const defaultBatch = 4

var errEmptyStroke = errors.New("stroke has no points")

// scene is the TOML scene file.
type scene struct {
	// Source is an image file, relative to the scene file, to start from.
	// Width and Height are ignored when it is set.
	Source       string       `toml:"source"`
	Width        int          `toml:"width"`
	Height       int          `toml:"height"`
	Background   string       `toml:"background"`
	HistoryLimit int          `toml:"history_limit"`
	Batch        int          `toml:"batch"`
	Brush        brushSpec    `toml:"brush"`
	Strokes      []strokeSpec `toml:"stroke"`
	Undo         int          `toml:"undo"`
	Redo         int          `toml:"redo"`

	dir string
}

type brushSpec struct {
	Color    string   `toml:"color"`
	Width    *float64 `toml:"width"`
	Hardness *float64 `toml:"hardness"`
	Opacity  *float64 `toml:"opacity"`
	Flow     *float64 `toml:"flow"`
	Spacing  *float64 `toml:"spacing"`
}

type strokeSpec struct {
	Points [][2]float64 `toml:"points"`
	Color  string       `toml:"color"`
	Width  float64      `toml:"width"`
	Eraser bool         `toml:"eraser"`
	Cancel bool         `toml:"cancel"`
}

func loadScene(path string) (*scene, error) {
	var sc scene
	md, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("%s: unknown keys %v", path, keys)
	}
	if sc.Batch <= 0 {
		sc.Batch = defaultBatch
	}
	sc.dir = filepath.Dir(path)
	return &sc, nil
}

// config returns the scene brush on top of the library defaults.
func (b brushSpec) config() brush.Config {
	cfg := brush.DefaultConfig()
	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{b.Width, &cfg.Width},
		{b.Hardness, &cfg.Hardness},
		{b.Opacity, &cfg.Opacity},
		{b.Flow, &cfg.Flow},
		{b.Spacing, &cfg.Spacing},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	return cfg
}

// build creates and initialises the canvas described by the scene.
func (sc *scene) build() (*rasm.Context, error) {
	cfg := sc.Brush.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []rasm.ContextOption{
		rasm.WithBrushConfig(cfg),
		rasm.WithHistoryLimit(sc.HistoryLimit),
	}
	if sc.Background != "" {
		bg, err := rasm.ParseHex(sc.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		opts = append(opts, rasm.WithBackground(bg))
	}
	if sc.Brush.Color != "" {
		c, err := rasm.ParseHex(sc.Brush.Color)
		if err != nil {
			return nil, fmt.Errorf("brush colour: %w", err)
		}
		opts = append(opts, rasm.WithBrushColor(c))
	}

	rc := rasm.NewContext(opts...)
	if sc.Source != "" {
		img, err := rasm.LoadImage(filepath.Join(sc.dir, sc.Source))
		if err != nil {
			return nil, err
		}
		if err := rc.InitFromImage(img); err != nil {
			return nil, err
		}
		return rc, nil
	}
	if err := rc.Init(sc.Width, sc.Height); err != nil {
		return nil, err
	}
	return rc, nil
}

// replay draws every stroke, then applies the scene's undo and redo counts.
func (sc *scene) replay(rc *rasm.Context) error {
	base := rc.BrushConfig()
	baseColor := rc.BrushColor()

	for i, st := range sc.Strokes {
		if len(st.Points) == 0 {
			return fmt.Errorf("stroke %d: %w", i, errEmptyStroke)
		}
		cfg := base
		if st.Width > 0 {
			cfg.Width = st.Width
		}
		cfg.Eraser = st.Eraser
		if err := rc.SetBrushConfig(cfg); err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}
		c := baseColor
		if st.Color != "" {
			hc, err := rasm.ParseHex(st.Color)
			if err != nil {
				return fmt.Errorf("stroke %d: %w", i, err)
			}
			c = hc
		}
		if err := rc.SetBrushColor(c); err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}

		for _, e := range strokeEvents(st.Points, sc.Batch, st.Cancel) {
			if err := rc.HandleEvent(e); err != nil {
				return fmt.Errorf("stroke %d: %w", i, err)
			}
		}
	}

	for range sc.Undo {
		rc.Undo()
	}
	for range sc.Redo {
		rc.Redo()
	}
	return nil
}

// strokeEvents turns a polyline into the event stream of one gesture: a
// down event on the first point, then move events carrying up to batch
// samples each, the older ones as history. The last event lifts the pointer,
// or cancels the gesture when cancel is set.
func strokeEvents(pts [][2]float64, batch int, cancel bool) []touch.Event {
	if len(pts) == 0 {
		return nil
	}
	if batch < 1 {
		batch = 1
	}
	events := []touch.Event{{
		Action:   touch.ActionDown,
		Pointers: []touch.Pointer{{X: pts[0][0], Y: pts[0][1]}},
	}}

	rest := pts[1:]
	if len(rest) == 0 && !cancel {
		rest = pts[:1]
	}
	for len(rest) > 0 {
		n := min(batch, len(rest))
		group := rest[:n]
		rest = rest[n:]

		p := touch.Pointer{X: group[n-1][0], Y: group[n-1][1]}
		for _, h := range group[:n-1] {
			p.History = append(p.History, touch.Sample{X: h[0], Y: h[1]})
		}
		a := touch.ActionMove
		if len(rest) == 0 && !cancel {
			a = touch.ActionUp
		}
		events = append(events, touch.Event{Action: a, Pointers: []touch.Pointer{p}})
	}
	if cancel {
		events = append(events, touch.Event{Action: touch.ActionCancel})
	}
	return events
}
