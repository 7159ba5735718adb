// Package canvas is the small RGBA drawing surface used by the map renderer.
package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	Black = color.NRGBA{0, 0, 0, 0xFF}
	White = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Red   = color.NRGBA{0xFF, 0, 0, 0xFF}
)

// Canvas wraps an NRGBA image. All drawing is clipped to its bounds.
type Canvas struct {
	img *image.NRGBA
}

// New allocates an opaque black canvas.
func New(w, h int) *Canvas {
	c := &Canvas{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
	c.FillRect(0, 0, w, h, Black)
	return c
}

// FromImage copies img into a new canvas anchored at (0,0).
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Canvas{img: dst}
}

// Crop copies the w x h region at (x, y) into a new canvas. The region is
// clipped to c.
func (c *Canvas) Crop(x, y, w, h int) *Canvas {
	return FromImage(c.img.SubImage(image.Rect(x, y, x+w, y+h)))
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the backing image.
func (c *Canvas) Image() *image.NRGBA { return c.img }

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.img.Rect.Max.X && y < c.img.Rect.Max.Y
}

// Pixel returns the color at (x, y), or transparent black outside the canvas.
func (c *Canvas) Pixel(x, y int) color.NRGBA {
	if !c.inside(x, y) {
		return color.NRGBA{}
	}
	return c.img.NRGBAAt(x, y)
}

// SetPixel writes one pixel. Writes outside the canvas are dropped.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if c.inside(x, y) {
		c.img.SetNRGBA(x, y, col)
	}
}

// clip intersects the w x h rectangle at (x, y) with the canvas.
func (c *Canvas) clip(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
}

// FillRect paints a rectangle. Translucent colors are blended over the
// existing pixels.
func (c *Canvas) FillRect(x, y, w, h int, col color.NRGBA) {
	r := c.clip(x, y, w, h)
	if r.Empty() {
		return
	}
	op := draw.Src
	if col.A != 0xFF {
		op = draw.Over
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, op)
}

// Blit copies a w x h block from src at (sx, sy) to (x, y).
func (c *Canvas) Blit(src *Canvas, x, y, w, h, sx, sy int) {
	c.blit(src, x, y, w, h, sx, sy, nil)
}

// MaskBlit is Blit that skips source pixels whose RGB equals mask.
func (c *Canvas) MaskBlit(src *Canvas, x, y, w, h, sx, sy int, mask color.NRGBA) {
	c.blit(src, x, y, w, h, sx, sy, &mask)
}

func (c *Canvas) blit(src *Canvas, x, y, w, h, sx, sy int, mask *color.NRGBA) {
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			if !src.inside(sx+xx, sy+yy) || !c.inside(x+xx, y+yy) {
				continue
			}
			p := src.img.NRGBAAt(sx+xx, sy+yy)
			if mask != nil && p.R == mask.R && p.G == mask.G && p.B == mask.B {
				continue
			}
			c.img.SetNRGBA(x+xx, y+yy, p)
		}
	}
}

// HLine draws a horizontal line from x1 to x2 inclusive.
func (c *Canvas) HLine(x1, x2, y int, col color.NRGBA) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		c.SetPixel(x, y, col)
	}
}

// VLine draws a vertical line from y1 to y2 inclusive.
func (c *Canvas) VLine(x, y1, y2 int, col color.NRGBA) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		c.SetPixel(x, y, col)
	}
}

// Border outlines the w x h rectangle at (x, y).
func (c *Canvas) Border(x, y, w, h int, col color.NRGBA) {
	c.HLine(x, x+w-1, y, col)
	c.HLine(x, x+w-1, y+h-1, col)
	c.VLine(x, y, y+h-1, col)
	c.VLine(x+w-1, y, y+h-1, col)
}
