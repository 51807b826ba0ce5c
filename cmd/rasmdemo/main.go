// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command rasmdemo replays a scripted drawing session and saves the result.
//
// The session is described in a TOML scene file: canvas size, background,
// brush and a list of strokes, each replayed as a pointer gesture with
// batched samples. The output format follows the -output extension (.png,
// .bmp, .tif, .pdf).
//
//	rasmdemo -config testdata/scene.toml -output scene.png
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/rasm"
	"github.com/gogpu/rasm/brush"
)

func main() {
	var (
		config  = flag.String("config", "scene.toml", "scene file")
		output  = flag.String("output", "rasm.png", "output file")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		rasm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sc, err := loadScene(*config)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	rc, err := sc.build()
	if err != nil {
		log.Fatalf("Failed to set up canvas: %v", err)
	}
	if err := sc.replay(rc); err != nil {
		log.Fatalf("Failed to replay scene: %v", err)
	}
	if err := rc.SaveExport(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Scene saved to %s (%dx%d, %d actions)\n",
		*output, rc.Width(), rc.Height(), len(rc.History()))
	if *verbose {
		st := brush.TipCacheStats()
		log.Printf("Brush tips: %d cached, %d hits, %d misses\n", st.Cached, st.Hits, st.Misses)
	}
}
