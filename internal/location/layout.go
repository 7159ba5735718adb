package location

import (
	"realmz-dasm/internal/record"
)

const (
	LayoutRows = 8
	LayoutCols = 16

	// LayoutSize is the on-disk size of the layout grid.
	LayoutSize = LayoutRows * LayoutCols * 2

	// Empty marks a layout cell with no level after load.
	Empty int16 = -1
)

// Layout is the 8x16 land level layout grid, indexed [row][col].
type Layout [LayoutRows][LayoutCols]int16

// Neighbors holds a level's position in the layout and its four adjacent level ids.
// Missing neighbors are -1.
type Neighbors struct {
	X, Y                     int
	Left, Right, Top, Bottom int16
}

// NoNeighbors is the result used for levels that are not part of a layout.
var NoNeighbors = Neighbors{X: -1, Y: -1, Left: -1, Right: -1, Top: -1, Bottom: -1}

// HasLeft etc. report whether a neighbor exists on that side.
func (n Neighbors) HasLeft() bool   { return n.Left >= 0 }
func (n Neighbors) HasRight() bool  { return n.Right >= 0 }
func (n Neighbors) HasTop() bool    { return n.Top >= 0 }
func (n Neighbors) HasBottom() bool { return n.Bottom >= 0 }

// EmptyLayout returns a grid with every cell empty.
func EmptyLayout() Layout {
	var l Layout
	for y := range l {
		for x := range l[y] {
			l[y][x] = Empty
		}
	}
	return l
}

func decodeLayout(r *record.Reader) Layout {
	var l Layout
	for y := range l {
		r.I16s(l[y][:])
	}
	l.fixSentinels()
	return l
}

// fixSentinels swaps 0 and -1. Level 0 is stored as -1 and empty cells as 0.
func (l *Layout) fixSentinels() {
	for y := range l {
		for x := range l[y] {
			switch l[y][x] {
			case -1:
				l[y][x] = 0
			case 0:
				l[y][x] = Empty
			}
		}
	}
}

// LoadLayout reads the layout file and applies the sentinel swap.
func LoadLayout(path string) (Layout, error) {
	return record.LoadSingle(path, LayoutSize, decodeLayout)
}

// DecodeLayout decodes a raw layout buffer.
func DecodeLayout(raw []byte) (Layout, error) {
	ls, err := record.DecodeTable("layout", raw, LayoutSize, decodeLayout)
	if err != nil {
		return Layout{}, err
	}
	if len(ls) != 1 {
		return Layout{}, &record.FormatError{Path: "layout", Size: len(raw), Width: LayoutSize,
			Reason: "layout must hold exactly one grid"}
	}
	return ls[0], nil
}

// Neighbors finds the single cell holding id and returns its adjacent ids.
func (l *Layout) Neighbors(id int16) (Neighbors, error) {
	n := NoNeighbors
	found := 0
	for y := 0; y < LayoutRows; y++ {
		for x := 0; x < LayoutCols; x++ {
			if l[y][x] != id {
				continue
			}
			found++
			n.X, n.Y = x, y
			if x > 0 {
				n.Left = l[y][x-1]
			}
			if x < LayoutCols-1 {
				n.Right = l[y][x+1]
			}
			if y > 0 {
				n.Top = l[y-1][x]
			}
			if y < LayoutRows-1 {
				n.Bottom = l[y+1][x]
			}
		}
	}

	switch {
	case found == 0:
		return NoNeighbors, &record.BoundsError{What: "layout has no entry for level", Index: int(id), Len: -1}
	case found > 1:
		return NoNeighbors, &record.BoundsError{What: "layout has multiple entries for level", Index: int(id), Len: -1}
	}
	return n, nil
}

// Components splits the layout into 4-connected groups of non-empty cells.
// Components are emitted in row-major order of their first cell; each keeps
// its cells at their original coordinates.
func (l *Layout) Components() []Layout {
	remaining := *l
	var out []Layout

	type point struct{ x, y int }
	dx := [4]int{-1, 1, 0, 0}
	dy := [4]int{0, 0, -1, 1}

	for y := 0; y < LayoutRows; y++ {
		for x := 0; x < LayoutCols; x++ {
			if remaining[y][x] == Empty {
				continue
			}

			comp := EmptyLayout()
			queue := []point{{x, y}}
			comp[y][x] = remaining[y][x]
			remaining[y][x] = Empty

			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				for d := 0; d < 4; d++ {
					nx, ny := p.x+dx[d], p.y+dy[d]
					if nx < 0 || nx >= LayoutCols || ny < 0 || ny >= LayoutRows {
						continue
					}
					if remaining[ny][nx] == Empty {
						continue
					}
					comp[ny][nx] = remaining[ny][nx]
					remaining[ny][nx] = Empty
					queue = append(queue, point{nx, ny})
				}
			}

			out = append(out, comp)
		}
	}
	return out
}

// Levels returns the non-empty level ids in row-major order.
func (l *Layout) Levels() []int16 {
	var ids []int16
	for y := range l {
		for x := range l[y] {
			if l[y][x] != Empty {
				ids = append(ids, l[y][x])
			}
		}
	}
	return ids
}
