package canvas

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales the canvas by factor (0 < factor <= 1) with
// premultiplied-alpha CatmullRom filtering. Factors >= 1 return c.
func (c *Canvas) Downsample(factor float64) *Canvas {
	if factor >= 1 || factor <= 0 {
		return c
	}
	b := c.img.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	// Premultiply alpha
	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := c.img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(c.img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(c.img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(c.img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(c.img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = c.img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	// Unpremultiply alpha
	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(dst.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}
	return &Canvas{img: result}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
