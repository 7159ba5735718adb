package mapgen

import (
	"fmt"
	"image"

	"realmz-dasm/internal/canvas"
	"realmz-dasm/internal/location"
	"realmz-dasm/internal/record"
	"realmz-dasm/internal/scenario"
	"realmz-dasm/internal/tiles"
)

// Land pattern geometry: 20 columns of 32 px tiles, 10 rows.
const (
	patternWidth  = 640
	patternHeight = 320
	patternCols   = 20
)

// LandOptions carries the per-render inputs of Land.
type LandOptions struct {
	Cache *tiles.Cache

	// LandType overrides the level's own land type when non-empty. The
	// fallback pass uses it to render unsupported tilesets.
	LandType string

	// Start marks the party's starting tile when HasStart is set.
	Start    image.Point
	HasStart bool
}

// landTypeName resolves the land type a level is drawn with.
func landTypeName(meta scenario.MapMetadata, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return meta.LandType.Name()
}

// pattern fetches and checks the 640x320 tile pattern for a land type.
func pattern(cache *tiles.Cache, landType string) (*canvas.Canvas, error) {
	id, _ := tiles.PatternID(landType)
	if cache == nil {
		return nil, &record.ResourceError{Type: tiles.TypePICT, ID: id, Err: fmt.Errorf("no tile cache")}
	}
	p, err := cache.Pattern(landType)
	if err != nil {
		return nil, err
	}
	if p.Width() != patternWidth || p.Height() != patternHeight {
		return nil, &record.ResourceError{
			Type: tiles.TypePICT,
			ID:   id,
			Err:  fmt.Errorf("pattern is %dx%d, want %dx%d", p.Width(), p.Height(), patternWidth, patternHeight),
		}
	}
	return p, nil
}

// patternOrigin is the top-left corner of pattern tile code.
func patternOrigin(code int16) (int, int) {
	src := int(code) - 1
	return (src % patternCols) * LandTile, (src / patternCols) * LandTile
}

// Land renders one land level. An unknown land type yields a
// *record.BoundsError; a missing or misshapen pattern yields a
// *record.ResourceError.
func Land(grid *scenario.Grid, meta scenario.MapMetadata, aps []scenario.AP, n location.Neighbors, opts LandOptions) (*canvas.Canvas, error) {
	landType, err := landTypeName(meta, opts.LandType)
	if err != nil {
		return nil, fmt.Errorf("mapgen: land type: %w", err)
	}
	pat, err := pattern(opts.Cache, landType)
	if err != nil {
		return nil, fmt.Errorf("mapgen: %s pattern: %w", landType, err)
	}
	background := opts.Cache.Background(landType)

	xoff, yoff := 0, 0
	w, h := LevelPixels, LevelPixels
	if n.HasLeft() {
		xoff = Gutter
		w += Gutter
	}
	if n.HasRight() {
		w += Gutter
	}
	if n.HasTop() {
		yoff = Gutter
		h += Gutter
	}
	if n.HasBottom() {
		h += Gutter
	}
	c := canvas.New(w, h)
	at := scenario.APsAt(aps)

	for y := 0; y < scenario.MapSize; y++ {
		for x := 0; x < scenario.MapSize; x++ {
			tile := scenario.NewTileCode(grid[y][x])
			xp, yp := x*LandTile+xoff, y*LandTile+yoff
			l := &labeler{c: c, x: xp + 2, y: yp + 2}

			if tile.Standard() {
				sx, sy := patternOrigin(tile.Code)
				c.Blit(pat, xp, yp, LandTile, LandTile, sx, sy)
			} else if img, ok := opts.Cache.CustomTile(tile.Code); ok {
				if background != 0 {
					sx, sy := patternOrigin(background)
					c.Blit(pat, xp, yp, LandTile, LandTile, sx, sy)
				} else {
					c.FillRect(xp, yp, LandTile, LandTile, canvas.Black)
				}
				c.MaskBlit(img, xp, yp, LandTile, LandTile, 0, 0, canvas.White)
			} else {
				c.FillRect(xp, yp, LandTile, LandTile, canvas.Black)
				l.add(canvas.White, fmt.Sprintf("%04X", uint16(tile.Code)))
			}

			if tile.HasAP {
				c.Border(xp, yp, LandTile, LandTile, canvas.Red)
			}

			if x%10 == 0 && y%10 == 0 {
				l.add(canvas.White, fmt.Sprintf("%d,%d", x, y))
			}
			if opts.HasStart && opts.Start.X == x && opts.Start.Y == y {
				l.add(startFG, "START")
			}
			for _, id := range at[[2]int{x, y}] {
				l.add(canvas.White, apLabel(id, &aps[id]))
			}
		}
	}

	drawNeighborLabels(c, n)
	drawRandomRects(c, meta.Rects[:], LandTile, xoff, yoff, canvas.White)
	return c, nil
}

// drawNeighborLabels writes "TO LEVEL n" every 10 tiles along each gutter.
func drawNeighborLabels(c *canvas.Canvas, n location.Neighbors) {
	first := func(has bool) int {
		if has {
			return 10
		}
		return 1
	}
	step := 10 * LandTile

	if n.HasLeft() {
		text := fmt.Sprintf("TO LEVEL %d", n.Left)
		for y := first(n.HasTop()); y < LevelPixels; y += step {
			c.DrawTextVertical(2, y, canvas.LineHeight, canvas.White, canvas.Black, text)
		}
	}
	if n.HasRight() {
		text := fmt.Sprintf("TO LEVEL %d", n.Right)
		x := LevelPixels + 2
		if n.HasLeft() {
			x = LevelPixels + 11
		}
		for y := first(n.HasTop()); y < LevelPixels; y += step {
			c.DrawTextVertical(x, y, canvas.LineHeight, canvas.White, canvas.Black, text)
		}
	}
	if n.HasTop() {
		text := fmt.Sprintf("TO LEVEL %d", n.Top)
		for x := first(n.HasLeft()); x < LevelPixels; x += step {
			c.DrawText(x, 1, canvas.White, canvas.Black, text)
		}
	}
	if n.HasBottom() {
		text := fmt.Sprintf("TO LEVEL %d", n.Bottom)
		y := LevelPixels + first(n.HasTop())
		for x := first(n.HasLeft()); x < LevelPixels; x += step {
			c.DrawText(x, y, canvas.White, canvas.Black, text)
		}
	}
}
