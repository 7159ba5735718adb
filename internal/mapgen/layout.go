package mapgen

import (
	"errors"
	"fmt"
	"image"

	"realmz-dasm/internal/canvas"
	"realmz-dasm/internal/location"
	"realmz-dasm/internal/record"
)

// ErrNoConnectedLevels is returned by LayoutMap for a layout whose levels all
// lack neighbors.
var ErrNoConnectedLevels = errors.New("mapgen: layout has no connected levels")

// connected reports whether the cell at (x, y) has a non-empty 4-neighbor.
func connected(l *location.Layout, x, y int) bool {
	occupied := func(x, y int) bool {
		return x >= 0 && x < location.LayoutCols && y >= 0 && y < location.LayoutRows &&
			l[y][x] != location.Empty
	}
	return occupied(x-1, y) || occupied(x+1, y) || occupied(x, y-1) || occupied(x, y+1)
}

// LevelSource returns the rendered Land image of a level, gutters included.
type LevelSource func(level int16) (*canvas.Canvas, error)

// ImageMap serves levels from memory.
func ImageMap(images map[int16]*canvas.Canvas) LevelSource {
	return func(level int16) (*canvas.Canvas, error) {
		img, ok := images[level]
		if !ok {
			return nil, &record.BoundsError{What: "level image", Index: int(level), Len: -1}
		}
		return img, nil
	}
}

// LayoutMap stitches rendered land levels into one image of the layout's
// bounding box. Levels without any neighbor are skipped. Levels are fetched
// one at a time from src; scale shrinks every cell (1 keeps full size).
func LayoutMap(l location.Layout, src LevelSource, scale float64) (*canvas.Canvas, error) {
	if scale <= 0 || scale > 1 {
		scale = 1
	}

	bounds := image.Rectangle{}
	found := false
	for y := 0; y < location.LayoutRows; y++ {
		for x := 0; x < location.LayoutCols; x++ {
			if l[y][x] == location.Empty || !connected(&l, x, y) {
				continue
			}
			cell := image.Rect(x, y, x+1, y+1)
			if !found {
				bounds, found = cell, true
			} else {
				bounds = bounds.Union(cell)
			}
		}
	}
	if !found {
		return nil, ErrNoConnectedLevels
	}

	cellPx := int(float64(LevelPixels)*scale + 0.5)
	out := canvas.New(bounds.Dx()*cellPx, bounds.Dy()*cellPx)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			id := l[y][x]
			if id == location.Empty || !connected(&l, x, y) {
				continue
			}
			img, err := src(id)
			if err != nil {
				return nil, fmt.Errorf("mapgen: layout level %d: %w", id, err)
			}
			n, err := l.Neighbors(id)
			if err != nil {
				return nil, fmt.Errorf("mapgen: layout: %w", err)
			}

			sx, sy := 0, 0
			if n.HasLeft() {
				sx = Gutter
			}
			if n.HasTop() {
				sy = Gutter
			}
			xp := (x - bounds.Min.X) * cellPx
			yp := (y - bounds.Min.Y) * cellPx

			if cellPx == LevelPixels {
				out.Blit(img, xp, yp, LevelPixels, LevelPixels, sx, sy)
				continue
			}
			small := img.Crop(sx, sy, LevelPixels, LevelPixels).Downsample(scale)
			out.Blit(small, xp, yp, cellPx, cellPx, 0, 0)
		}
	}
	return out, nil
}
