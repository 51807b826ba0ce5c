// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasm

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/gogpu/rasm/internal/logging"
	"github.com/gogpu/rasm/surface"
)

// ErrUnsupportedFormat is returned for an unknown export format or file
// extension.
var ErrUnsupportedFormat = errors.New("rasm: unsupported export format")

// Format is an export file format.
type Format uint8

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
	FormatPDF
)

var formatNames = [...]string{
	FormatPNG:  "png",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
	FormatPDF:  "pdf",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".pdf":
		return FormatPDF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Export returns a new image of exactly Width × Height pixels: the
// background colour with the committed layer drawn over it. A gesture in
// progress is not included.
func (c *Context) Export() (*image.RGBA, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.set == nil {
		return nil, ErrNotInitialized
	}
	b := c.set.Bounds()
	img := image.NewRGBA(b)
	surface.Fill(img, b, c.state.Background())
	draw.Draw(img, b, c.set.Layer(), b.Min, draw.Over)
	return img, nil
}

// EncodeExport writes the exported image to w in format f.
func (c *Context) EncodeExport(w io.Writer, f Format) error {
	img, err := c.Export()
	if err != nil {
		return err
	}
	return Encode(w, img, f)
}

// SaveExport writes the exported image to path, choosing the format from
// its extension.
func (c *Context) SaveExport(path string) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	img, err := c.Export()
	if err != nil {
		return err
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("rasm: create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("rasm: close file: %w", cerr)
		}
	}()

	if err := Encode(file, img, f); err != nil {
		return err
	}
	logging.Logger().Info("rasm: export saved", "path", path, "format", f,
		"width", img.Rect.Dx(), "height", img.Rect.Dy())
	return nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatPDF:
		err = encodePDF(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("rasm: encode %v: %w", f, err)
	}
	return nil
}

// encodePDF writes a single-page PDF whose page is the image at one point
// per pixel.
func encodePDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opt, &buf)
	pdf.ImageOptions("canvas", 0, 0, wd, ht, false, opt, 0, "")
	return pdf.Output(w)
}
