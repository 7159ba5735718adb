package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
)

// Format is an output image encoding.
type Format string

const (
	BMP  Format = "bmp"
	PNG  Format = "png"
	WebP Format = "webp"
)

// ParseFormat accepts "bmp", "png" or "webp" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case BMP, PNG, WebP:
		return f, nil
	}
	return "", fmt.Errorf("canvas: unknown image format %q", s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case BMP:
		return bmp.Encode(w, img)
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("canvas: unknown image format %q", f)
}

// Save encodes the canvas to path, creating parent directories.
func (c *Canvas) Save(path string, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("canvas: create dir for %s: %w", path, err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	defer out.Close()

	if err := Encode(out, c.img, f); err != nil {
		return fmt.Errorf("canvas: encode %s: %w", path, err)
	}
	return nil
}
