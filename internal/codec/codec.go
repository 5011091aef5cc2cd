// Package codec encodes in-memory images to files. The on-disk format is
// picked from the destination's extension.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an on-disk image encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Default is used when the extension is absent or unrecognized.
const Default = PNG

// DefaultJPEGQuality matches the quality most desktop image tools save at.
const DefaultJPEGQuality = 90

var extensions = map[string]Format{
	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"jpe":  JPEG,
	"bmp":  BMP,
	"tif":  TIFF,
	"tiff": TIFF,
}

// FromPath infers the format from path's extension, case-insensitively.
func FromPath(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if f, ok := extensions[ext]; ok {
		return f
	}
	return Default
}

// Encoder encodes img in format f and writes it to path.
type Encoder interface {
	Encode(img image.Image, path string, f Format) error
}

// FileEncoder is the in-process Encoder backed by the Go image codecs.
type FileEncoder struct {
	// JPEGQuality ranges 1-100. Zero means DefaultJPEGQuality.
	JPEGQuality int
}

// NewFileEncoder returns a FileEncoder, clamping quality into range.
func NewFileEncoder(jpegQuality int) *FileEncoder {
	switch {
	case jpegQuality <= 0:
		jpegQuality = DefaultJPEGQuality
	case jpegQuality > 100:
		jpegQuality = 100
	}
	return &FileEncoder{JPEGQuality: jpegQuality}
}

// Encode creates (or truncates) path and writes img to it.
func (e *FileEncoder) Encode(img image.Image, path string, f Format) (err error) {
	if img == nil {
		return errors.New("no image to encode")
	}
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := e.encode(w, img, f); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

func (e *FileEncoder) encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		q := e.JPEGQuality
		if q <= 0 {
			q = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
