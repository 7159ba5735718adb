package mapgen

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realmz-dasm/internal/canvas"
	"realmz-dasm/internal/location"
	"realmz-dasm/internal/record"
	"realmz-dasm/internal/scenario"
	"realmz-dasm/internal/tiles"
)

var (
	green   = color.NRGBA{0, 0xFF, 0, 0xFF}
	blue    = color.NRGBA{0, 0, 0xFF, 0xFF}
	magenta = color.NRGBA{0xFF, 0, 0xFF, 0xFF}
)

func fullAP(x, y int) scenario.AP {
	return scenario.AP{
		LocationCode:  location.Encode(0, x, y),
		Location:      location.Decode(location.Encode(0, x, y)),
		PercentChance: 100,
	}
}

// hasColor reports whether any pixel of r has exactly col.
func hasColor(c *canvas.Canvas, r image.Rectangle, col color.NRGBA) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.Pixel(x, y) == col {
				return true
			}
		}
	}
	return false
}

// ---- Labels ----

func TestAPLabel(t *testing.T) {
	ap := scenario.AP{PercentChance: 100}
	assert.Equal(t, "7", apLabel(7, &ap))
	ap.PercentChance = 40
	assert.Equal(t, "7-40", apLabel(7, &ap))
}

func TestAllLandTypes(t *testing.T) {
	assert.Equal(t, []string{"abyss", "cave", "desert", "indoor", "outdoor", "snow"}, AllLandTypes())
}

// ---- Dungeon ----

func TestDungeon_PlainStyle(t *testing.T) {
	var g scenario.Grid
	g[1][1] = scenario.DungeonWall
	g[2][2] = scenario.DungeonStairs
	g[1][4] = scenario.DungeonVertDoor
	g[5][5] = scenario.DungeonColumns | scenario.DungeonSecretLeft

	c := Dungeon(&g, scenario.MapMetadata{}, []scenario.AP{fullAP(3, 3)}, DungeonOptions{})
	assert.Equal(t, 90*LandTile, c.Width())
	assert.Equal(t, 90*LandTile, c.Height())

	assert.Equal(t, wallGray, c.Pixel(32+20, 32+20))
	assert.Equal(t, canvas.White, c.Pixel(64+1, 64+1))
	assert.Equal(t, canvas.Red, c.Pixel(64+4, 64+28))
	assert.Equal(t, wallGray, c.Pixel(128+5, 32+15))
	assert.Equal(t, canvas.White, c.Pixel(128+5, 32+5))
	assert.Equal(t, column, c.Pixel(160+1, 160+1))
	assert.Equal(t, canvas.Red, c.Pixel(160+3, 160+15))

	// AP tile gets a red border
	assert.Equal(t, canvas.Red, c.Pixel(96+31, 96+31))
	assert.Equal(t, canvas.Red, c.Pixel(96, 96+20))
}

func TestDungeon_PatternStyle(t *testing.T) {
	pat := canvas.New(640, 368)
	pat.FillRect(0, 0, 640, 368, canvas.White)
	pat.FillRect(dungeonPatternX, dungeonPatternY, 16, 16, green)

	var g scenario.Grid
	g[5][5] = scenario.DungeonWall
	g[5][7] = scenario.DungeonVertDoor

	c := Dungeon(&g, scenario.MapMetadata{}, nil, DungeonOptions{Pattern: pat})
	assert.Equal(t, 90*DungeonTile, c.Width())
	assert.Equal(t, green, c.Pixel(80+3, 80+3))
	assert.Equal(t, canvas.Black, c.Pixel(96+3, 80+3))
	assert.Equal(t, canvas.Black, c.Pixel(112+3, 80+3))
}

// ---- Land ----

func landCache(t *testing.T) *tiles.Cache {
	t.Helper()
	pat := canvas.New(patternWidth, patternHeight)
	pat.FillRect(0, 0, 32, 32, green)
	// background 0x9B is pattern tile 154
	pat.FillRect(14*32, 7*32, 32, 32, blue)

	tile := canvas.New(32, 32)
	tile.FillRect(0, 0, 32, 32, canvas.White)
	tile.FillRect(12, 12, 8, 8, magenta)

	c := tiles.NewCache(nil)
	c.SetPattern("outdoor", pat)
	c.SetTile(-5, tile, false)
	return c
}

func TestLand_Tiles(t *testing.T) {
	var g scenario.Grid
	g[1][1] = 1
	g[1][2] = -5
	g[1][3] = -7
	g[1][4] = 1001

	c, err := Land(&g, scenario.MapMetadata{LandType: scenario.LandOutdoor}, nil, location.NoNeighbors,
		LandOptions{Cache: landCache(t)})
	require.NoError(t, err)
	assert.Equal(t, LevelPixels, c.Width())
	assert.Equal(t, LevelPixels, c.Height())

	assert.Equal(t, green, c.Pixel(32+20, 32+20))

	// custom tile masked over the background tile
	assert.Equal(t, magenta, c.Pixel(64+14, 32+14))
	assert.Equal(t, blue, c.Pixel(64+25, 32+25))

	// missing custom tile
	assert.Equal(t, canvas.Black, c.Pixel(96+30, 32+30))
	assert.True(t, hasColor(c, image.Rect(96+2, 32+2, 96+32, 32+16), canvas.White))

	// AP offset stripped, border drawn
	assert.Equal(t, canvas.Red, c.Pixel(128, 32+16))
	assert.Equal(t, green, c.Pixel(128+16, 32+16))
}

func TestLand_NoBackgroundFillsBlack(t *testing.T) {
	cache := landCache(t)
	cache.SetBackground("outdoor", 0)
	var g scenario.Grid
	g[1][2] = -5

	c, err := Land(&g, scenario.MapMetadata{}, nil, location.NoNeighbors, LandOptions{Cache: cache})
	require.NoError(t, err)
	assert.Equal(t, canvas.Black, c.Pixel(64+25, 32+25))
	assert.Equal(t, magenta, c.Pixel(64+14, 32+14))
}

func TestLand_Gutters(t *testing.T) {
	var g scenario.Grid
	g[1][1] = 1
	n := location.Neighbors{Left: 3, Right: -1, Top: 4, Bottom: 6}

	c, err := Land(&g, scenario.MapMetadata{}, nil, n, LandOptions{Cache: landCache(t)})
	require.NoError(t, err)
	assert.Equal(t, LevelPixels+Gutter, c.Width())
	assert.Equal(t, LevelPixels+2*Gutter, c.Height())
	assert.Equal(t, green, c.Pixel(Gutter+32+20, Gutter+32+20))

	assert.True(t, hasColor(c, image.Rect(0, 10, Gutter, 160), canvas.White))
	assert.True(t, hasColor(c, image.Rect(10, 0, 100, Gutter), canvas.White))
}

func TestLand_StartAndAPLabels(t *testing.T) {
	var g scenario.Grid
	for y := range g {
		for x := range g[y] {
			g[y][x] = 1
		}
	}
	c, err := Land(&g, scenario.MapMetadata{}, []scenario.AP{fullAP(5, 5)}, location.NoNeighbors,
		LandOptions{Cache: landCache(t), Start: image.Point{X: 5, Y: 5}, HasStart: true})
	require.NoError(t, err)

	tileRect := image.Rect(160, 160, 192+40, 192+40)
	assert.True(t, hasColor(c, tileRect, startFG))
	assert.True(t, hasColor(c, tileRect, canvas.White))
}

func TestLand_OverrideLandType(t *testing.T) {
	var g scenario.Grid
	meta := scenario.MapMetadata{LandType: scenario.LandCustom1}

	_, err := Land(&g, meta, nil, location.NoNeighbors, LandOptions{Cache: landCache(t)})
	var re *record.ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 306, re.ID)

	_, err = Land(&g, meta, nil, location.NoNeighbors, LandOptions{Cache: landCache(t), LandType: "outdoor"})
	assert.NoError(t, err)
}

func TestLand_UnknownLandType(t *testing.T) {
	var g scenario.Grid
	_, err := Land(&g, scenario.MapMetadata{LandType: 42}, nil, location.NoNeighbors, LandOptions{Cache: landCache(t)})
	var be *record.BoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 42, be.Index)
}

func TestLand_BadPattern(t *testing.T) {
	cache := tiles.NewCache(nil)
	cache.SetPattern("cave", canvas.New(64, 64))
	var g scenario.Grid

	_, err := Land(&g, scenario.MapMetadata{LandType: scenario.LandCave}, nil, location.NoNeighbors, LandOptions{Cache: cache})
	var re *record.ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 303, re.ID)

	_, err = Land(&g, scenario.MapMetadata{}, nil, location.NoNeighbors, LandOptions{})
	assert.True(t, errors.As(err, &re))
}

// ---- Random rects ----

func TestDrawRandomRects(t *testing.T) {
	c := canvas.New(100, 100)
	c.FillRect(0, 0, 100, 100, canvas.White)
	rects := []scenario.RandomRect{
		{Top: 2, Left: 2, Bottom: 5, Right: 5, TimesIn10k: 1},
		{Top: 8, Left: 8, Bottom: 10, Right: 10},
	}
	drawRandomRects(c, rects, 8, 0, 0, canvas.Red)

	assert.Equal(t, color.NRGBA{0xEF, 0xEF, 0xEF, 0xFF}, c.Pixel(40, 17))
	assert.Equal(t, color.NRGBA{0xFF, 0xEF, 0xEF, 0xFF}, c.Pixel(33, 17))
	assert.Equal(t, canvas.Red, c.Pixel(16, 20))
	assert.Equal(t, canvas.Red, c.Pixel(47, 20))
	assert.Equal(t, canvas.White, c.Pixel(70, 70))
}

func TestDrawRandomRects_Clamped(t *testing.T) {
	c := canvas.New(16, 16)
	c.FillRect(0, 0, 16, 16, canvas.White)
	drawRandomRects(c, []scenario.RandomRect{{Top: -5, Left: -5, Bottom: 200, Right: 200, TimesIn10k: 5}}, 1, 0, 0, canvas.Red)
	assert.Equal(t, canvas.Red, c.Pixel(0, 8))
}

// ---- Layout ----

func levelImage(w int, gutterLeft bool, col color.NRGBA) *canvas.Canvas {
	c := canvas.New(w, LevelPixels)
	x := 0
	if gutterLeft {
		x = Gutter
	}
	c.FillRect(x, 0, LevelPixels, LevelPixels, col)
	return c
}

func TestLayoutMap_Stitches(t *testing.T) {
	l := location.EmptyLayout()
	l[0][0] = 0
	l[0][1] = 1
	l[5][5] = 2

	images := map[int16]*canvas.Canvas{
		0: levelImage(LevelPixels+Gutter, false, canvas.Red),
		1: levelImage(LevelPixels+Gutter, true, green),
	}
	out, err := LayoutMap(l, ImageMap(images), 1)
	require.NoError(t, err)
	assert.Equal(t, 2*LevelPixels, out.Width())
	assert.Equal(t, LevelPixels, out.Height())
	assert.Equal(t, canvas.Red, out.Pixel(LevelPixels-1, 10))
	assert.Equal(t, green, out.Pixel(LevelPixels, 10))
}

func TestLayoutMap_Scaled(t *testing.T) {
	l := location.EmptyLayout()
	l[2][3] = 4
	l[3][3] = 5

	images := map[int16]*canvas.Canvas{
		4: levelImage(LevelPixels, false, canvas.Red),
		5: levelImage(LevelPixels, false, green),
	}
	out, err := LayoutMap(l, ImageMap(images), 0.01)
	require.NoError(t, err)
	assert.Equal(t, 29, out.Width())
	assert.Equal(t, 58, out.Height())
	assertNear(t, canvas.Red, out.Pixel(10, 10))
	assertNear(t, green, out.Pixel(10, 40))
}

func assertNear(t *testing.T, want, got color.NRGBA) {
	t.Helper()
	assert.InDelta(t, int(want.R), int(got.R), 1)
	assert.InDelta(t, int(want.G), int(got.G), 1)
	assert.InDelta(t, int(want.B), int(got.B), 1)
}

func TestLayoutMap_Errors(t *testing.T) {
	l := location.EmptyLayout()
	l[1][1] = 0
	_, err := LayoutMap(l, ImageMap(nil), 1)
	assert.ErrorIs(t, err, ErrNoConnectedLevels)

	l[1][2] = 1
	_, err = LayoutMap(l, ImageMap(map[int16]*canvas.Canvas{0: canvas.New(1, 1)}), 1)
	var be *record.BoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 1, be.Index)
}
