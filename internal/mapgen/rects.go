package mapgen

import (
	"fmt"
	"image/color"

	"realmz-dasm/internal/canvas"
	"realmz-dasm/internal/scenario"
)

// drawRandomRects overlays each non-empty random rect as a checkered tint with
// an outline, its summary, and its index.
func drawRandomRects(c *canvas.Canvas, rects []scenario.RandomRect, tileSize, xoff, yoff int, col color.NRGBA) {
	last := scenario.MapSize - 1
	for i, rect := range rects {
		if rect.IsEmpty() {
			continue
		}
		left, right := max(int(rect.Left), 0), min(int(rect.Right), last)
		top, bottom := max(int(rect.Top), 0), min(int(rect.Bottom), last)

		xl := left*tileSize + xoff
		xr := right*tileSize + tileSize - 1 + xoff
		yt := top*tileSize + yoff
		yb := bottom*tileSize + tileSize - 1 + yoff

		for yy := max(yt, 0); yy < min(yb, c.Height()); yy++ {
			for xx := max(xl, 0); xx < min(xr, c.Width()); xx++ {
				p := c.Pixel(xx, yy)
				if ((xx+yy)/8)&1 != 0 {
					p.R = shade(0, p.R)
					p.G = shade(0, p.G)
					p.B = shade(0, p.B)
				} else {
					p.R = shade(col.R, p.R)
					p.G = shade(col.G, p.G)
					p.B = shade(col.B, p.B)
				}
				c.SetPixel(xx, yy, p)
			}
		}

		c.HLine(xl, xr, yt, col)
		c.HLine(xl, xr, yb, col)
		c.VLine(xl, yt, yb, col)
		c.VLine(xr, yt, yb, col)

		c.DrawText(xl+2, yb-canvas.LineHeight, col, labelBG, rect.Info())
		c.DrawText(xl+2, yb-2*canvas.LineHeight, col, labelBG, fmt.Sprintf("%d", i))
	}
}

// shade mixes 1/16 of tint into v.
func shade(tint, v uint8) uint8 {
	return uint8((0x10*uint32(tint) + 0xEF*uint32(v)) / 0xFF)
}
