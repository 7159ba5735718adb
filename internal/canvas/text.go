package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// LineHeight is the vertical advance between stacked text labels.
const LineHeight = 13

// GlyphWidth is the advance of one character.
const GlyphWidth = 7

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawText writes s with its top-left corner at (x, y). A background with
// nonzero alpha is blended behind the text first.
func (c *Canvas) DrawText(x, y int, fg, bg color.NRGBA, s string) {
	if s == "" {
		return
	}
	if bg.A != 0 {
		r := image.Rect(x, y, x+TextWidth(s), y+LineHeight).Intersect(c.img.Rect)
		if !r.Empty() {
			draw.Draw(c.img, r, image.NewUniform(bg), image.Point{}, draw.Over)
		}
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + face.Ascent)},
	}
	d.DrawString(s)
}

// DrawTextVertical writes s one character per line, downward from (x, y).
// step is the vertical distance between characters.
func (c *Canvas) DrawTextVertical(x, y, step int, fg, bg color.NRGBA, s string) {
	for i, r := range []rune(s) {
		c.DrawText(x, y+i*step, fg, bg, string(r))
	}
}
