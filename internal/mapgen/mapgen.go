// Package mapgen rasterizes dungeon and land levels, and stitches land
// levels into layout maps.
package mapgen

import (
	"fmt"
	"image/color"

	"realmz-dasm/internal/canvas"
	"realmz-dasm/internal/scenario"
	"realmz-dasm/internal/tiles"
)

const (
	// LandTile and DungeonTile are the rendered tile sizes in pixels.
	LandTile    = 32
	DungeonTile = 16

	// Gutter is the strip reserved for each neighbor label.
	Gutter = 9

	// LevelPixels is the width and height of a level without gutters.
	LevelPixels = scenario.MapSize * LandTile
)

var (
	labelBG  = color.NRGBA{0, 0, 0, 0x80}
	startFG  = color.NRGBA{0, 0xFF, 0xFF, 0xFF}
	wallGray = color.NRGBA{0xC0, 0xC0, 0xC0, 0xFF}
	column   = color.NRGBA{0x80, 0x80, 0xFF, 0xFF}
)

// AllLandTypes returns every land type with a built-in pattern, sorted. These
// are the candidates of the fallback pass for unsupported tilesets.
func AllLandTypes() []string {
	return tiles.StandardLandTypes()
}

// apLabel is "id" for certain APs, "id-pct" otherwise.
func apLabel(id int, ap *scenario.AP) string {
	if ap.PercentChance < 100 {
		return fmt.Sprintf("%d-%d", id, ap.PercentChance)
	}
	return fmt.Sprintf("%d", id)
}

// labeler stacks text labels downward inside one tile.
type labeler struct {
	c    *canvas.Canvas
	x, y int
}

func (l *labeler) add(fg color.NRGBA, s string) {
	l.c.DrawText(l.x, l.y, fg, labelBG, s)
	l.y += canvas.LineHeight
}

// tileLabels draws the coordinates every 10 tiles, then the AP ids at (x, y).
func tileLabels(l *labeler, x, y int, aps []scenario.AP, at []int) {
	if x%10 == 0 && y%10 == 0 {
		l.add(canvas.White, fmt.Sprintf("%d,%d", x, y))
	}
	for _, id := range at {
		l.add(canvas.White, apLabel(id, &aps[id]))
	}
}
