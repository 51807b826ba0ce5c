// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasm

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("rasm: empty image data")

// Decode decodes a PNG, JPEG, BMP or TIFF image, detecting the format from
// its content.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("rasm: decode: %w", err)
	}
	return img, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// LoadImage loads an image file for use with Context.InitFromImage.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("rasm: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}
