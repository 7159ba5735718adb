package mapgen

import (
	"realmz-dasm/internal/canvas"
	"realmz-dasm/internal/scenario"
)

// Origin of the dungeon glyphs inside the dungeon pattern.
const (
	dungeonPatternX = 576
	dungeonPatternY = 320
)

// DungeonOptions selects the dungeon rendering style. A nil Pattern draws the
// plain style at LandTile size; otherwise glyphs are masked out of Pattern at
// DungeonTile size.
type DungeonOptions struct {
	Pattern *canvas.Canvas
}

// glyphs maps tile flags to their offsets from the pattern origin, in draw order.
var glyphs = []struct {
	flag   int16
	sx, sy int
}{
	{scenario.DungeonWall, 0, 0},
	{scenario.DungeonVertDoor, 16, 0},
	{scenario.DungeonHorizDoor, 32, 0},
	{scenario.DungeonStairs, 48, 0},
	{scenario.DungeonColumns, 0, 16},
	{scenario.DungeonSecretUp, 0, 32},
	{scenario.DungeonSecretRight, 16, 32},
	{scenario.DungeonSecretDown, 32, 32},
	{scenario.DungeonSecretLeft, 48, 32},
}

// Dungeon renders one dungeon level with its APs and random rects.
func Dungeon(grid *scenario.Grid, meta scenario.MapMetadata, aps []scenario.AP, opts DungeonOptions) *canvas.Canvas {
	ts := DungeonTile
	if opts.Pattern == nil {
		ts = LandTile
	}
	c := canvas.New(scenario.MapSize*ts, scenario.MapSize*ts)
	at := scenario.APsAt(aps)

	// Labels spill into later tiles, so draw bottom-right first.
	for y := scenario.MapSize - 1; y >= 0; y-- {
		for x := scenario.MapSize - 1; x >= 0; x-- {
			xp, yp := x*ts, y*ts
			data := grid[y][x]
			if opts.Pattern != nil {
				drawGlyphTile(c, opts.Pattern, xp, yp, data)
			} else {
				drawPlainTile(c, xp, yp, data)
			}

			ids := at[[2]int{x, y}]
			if opts.Pattern == nil && len(ids) > 0 {
				c.Border(xp, yp, ts, ts, canvas.Red)
			}
			tileLabels(&labeler{c: c, x: xp + 1, y: yp + 1}, x, y, aps, ids)
		}
	}

	drawRandomRects(c, meta.Rects[:], ts, 0, 0, canvas.White)
	return c
}

func drawGlyphTile(c *canvas.Canvas, pattern *canvas.Canvas, xp, yp int, data int16) {
	c.FillRect(xp, yp, DungeonTile, DungeonTile, canvas.Black)
	for _, g := range glyphs {
		if data&g.flag != 0 {
			c.MaskBlit(pattern, xp, yp, DungeonTile, DungeonTile,
				dungeonPatternX+g.sx, dungeonPatternY+g.sy, canvas.White)
		}
	}
}

func drawPlainTile(c *canvas.Canvas, xp, yp int, data int16) {
	c.FillRect(xp, yp, LandTile, LandTile, canvas.White)
	if data&scenario.DungeonWall != 0 {
		c.FillRect(xp, yp, LandTile, LandTile, wallGray)
	}
	if data&scenario.DungeonVertDoor != 0 {
		c.FillRect(xp, yp, LandTile, LandTile, canvas.White)
		c.FillRect(xp, yp+12, LandTile, 8, wallGray)
	}
	if data&scenario.DungeonHorizDoor != 0 {
		c.FillRect(xp, yp, LandTile, LandTile, canvas.White)
		c.FillRect(xp+12, yp, 8, LandTile, wallGray)
	}
	if data&scenario.DungeonStairs != 0 {
		c.FillRect(xp+4, yp+28, 24, 4, canvas.Red)
		c.FillRect(xp+7, yp+20, 18, 4, canvas.Red)
		c.FillRect(xp+10, yp+12, 12, 4, canvas.Red)
		c.FillRect(xp+13, yp+4, 6, 4, canvas.Red)
	}
	if data&scenario.DungeonColumns != 0 {
		c.FillRect(xp, yp, 4, 4, column)
		c.FillRect(xp+28, yp, 4, 4, column)
		c.FillRect(xp, yp+28, 4, 4, column)
		c.FillRect(xp+28, yp+28, 4, 4, column)
	}
	if data&scenario.DungeonSecretUp != 0 {
		c.FillRect(xp+14, yp+2, 4, 4, canvas.Red)
	}
	if data&scenario.DungeonSecretRight != 0 {
		c.FillRect(xp+26, yp+14, 4, 4, canvas.Red)
	}
	if data&scenario.DungeonSecretDown != 0 {
		c.FillRect(xp+14, yp+26, 4, 4, canvas.Red)
	}
	if data&scenario.DungeonSecretLeft != 0 {
		c.FillRect(xp+2, yp+14, 4, 4, canvas.Red)
	}
}
