package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realmz-dasm/internal/canvas"
	"realmz-dasm/internal/config"
	"realmz-dasm/internal/location"
	"realmz-dasm/internal/scenario"
	"realmz-dasm/internal/tiles"
)

func testScenario() *scenario.Scenario {
	s := &scenario.Scenario{
		Name:        "Test",
		DungeonMaps: make([]scenario.Grid, 1),
		LandMaps:    make([]scenario.Grid, 3),
		Strings:     scenario.StringPool{"", "hello"},
		Ecodes:      []scenario.Ecodes{{1, 2, 3, 4, 5}},
		Treasures:   []scenario.Treasure{{Gold: scenario.NewAmount(50)}},
		LandMetadata: []scenario.MapMetadata{
			{LandType: scenario.LandOutdoor},
			{LandType: scenario.LandCustom2},
			{LandType: scenario.LandOutdoor},
		},
		HasGlobal:   true,
		Global:      scenario.GlobalMetadata{StartXAP: 4},
		HasMetadata: true,
		Metadata:    scenario.ScenarioMetadata{StartLevel: 0, StartX: 3, StartY: 4},
		Layout:      location.EmptyLayout(),
		HasLayout:   true,
		Tilesets:    map[scenario.LandType]scenario.TilesetDefinition{},
	}
	s.DungeonMaps[0][1][1] = scenario.DungeonWall
	for n := range s.LandMaps {
		for y := range s.LandMaps[n] {
			for x := range s.LandMaps[n][y] {
				s.LandMaps[n][y][x] = 1
			}
		}
	}
	s.Layout[0][0] = 0
	s.Layout[0][1] = 2
	return s
}

func testCache() *tiles.Cache {
	pat := canvas.New(640, 320)
	pat.FillRect(0, 0, 640, 320, canvas.White)
	c := tiles.NewCache(nil)
	c.SetPattern("outdoor", pat)
	return c
}

func byName(results []Result) map[string]Result {
	m := make(map[string]Result, len(results))
	for _, r := range results {
		m[r.Name] = r
	}
	return m
}

// ---- Run ----

func TestRun_TextOnly(t *testing.T) {
	out := t.TempDir()
	results := Run(Config{OutputDir: out, Format: canvas.BMP}, testScenario(), nil)
	got := byName(results)

	for _, name := range []string{
		"encounter-simple.txt", "encounter-complex.txt", "encounter-rogue.txt",
		"encounter-time.txt", "treasure.txt", "dungeon-ap.txt", "land-ap.txt",
		"extra-ap.txt", "globals.txt", "metadata.txt",
	} {
		r, ok := got[name]
		require.True(t, ok, name)
		assert.True(t, r.Success, name)
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.NotContains(t, got, "resources.txt")
	assert.NotContains(t, got, "dungeon-0.bmp")

	data, err := os.ReadFile(filepath.Join(out, "treasure.txt"))
	require.NoError(t, err)
	assert.Equal(t, "===== TREASURE id=0\n  gold=50\n", string(data))

	data, err = os.ReadFile(filepath.Join(out, "metadata.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "==== SCENARIO METADATA")
	assert.Contains(t, string(data), "==== LAND METADATA level=1 land_type=custom_2")
}

func TestRun_MapsWithFallbackAndLayout(t *testing.T) {
	out := t.TempDir()
	cfg := Config{
		OutputDir:    out,
		Format:       canvas.BMP,
		DungeonStyle: config.StyleAuto,
		RenderMaps:   true,
		LayoutMaps:   true,
		LayoutScale:  0.01,
		Tiles:        testCache(),
	}
	results := Run(cfg, testScenario(), nil)
	got := byName(results)

	for _, name := range []string{"dungeon-0.bmp", "land-0.bmp", "land-2.bmp", "land-1-outdoor.bmp", "layout-0.bmp"} {
		r, ok := got[name]
		require.True(t, ok, name)
		assert.True(t, r.Success, name)
		assert.FileExists(t, filepath.Join(out, name))
	}

	// only the outdoor pattern is available
	for _, lt := range []string{"abyss", "cave", "desert", "indoor", "snow"} {
		r, ok := got["land-1-"+lt+".bmp"]
		require.True(t, ok, lt)
		assert.False(t, r.Success, lt)
		assert.Equal(t, KindFallback, r.Kind, lt)
		assert.NotEmpty(t, r.Error)
	}
	assert.Equal(t, KindFallback, got["land-1-outdoor.bmp"].Kind)
	assert.Zero(t, Failures(results))
	assert.NotContains(t, got, "land-1.bmp")

	img, err := tiles.LoadImage(filepath.Join(out, "layout-0.bmp"))
	require.NoError(t, err)
	assert.Equal(t, 58, img.Rect.Dx())
	assert.Equal(t, 29, img.Rect.Dy())
}

func TestRun_LayoutReloadsPNGLevels(t *testing.T) {
	out := t.TempDir()
	cfg := Config{
		OutputDir:   out,
		Format:      canvas.PNG,
		RenderMaps:  true,
		LayoutMaps:  true,
		LayoutScale: 0.01,
		Tiles:       testCache(),
	}
	got := byName(Run(cfg, testScenario(), nil))

	r, ok := got["layout-0.png"]
	require.True(t, ok)
	assert.True(t, r.Success, r.Error)
	assert.True(t, got["land-1-outdoor.png"].Success)
}

func TestRun_ForcedPatternStyle(t *testing.T) {
	out := t.TempDir()
	cfg := Config{OutputDir: out, Format: canvas.BMP, DungeonStyle: config.StylePattern, RenderMaps: true, Tiles: testCache()}
	got := byName(Run(cfg, testScenario(), nil))

	r, ok := got["dungeon-0.bmp"]
	require.True(t, ok)
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "PICT:302")
}

func TestRun_CustomTilesetBackground(t *testing.T) {
	s := testScenario()
	s.Tilesets[scenario.LandCustom2] = scenario.TilesetDefinition{BaseTileID: 17}
	cache := testCache()

	Run(Config{OutputDir: t.TempDir(), Format: canvas.BMP, RenderMaps: true, Tiles: cache}, s, nil)
	assert.Equal(t, int16(17), cache.Background("custom_2"))
}

func TestRun_BadOutputDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	results := Run(Config{OutputDir: filepath.Join(file, "sub")}, testScenario(), nil)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
}

// ---- Manifest ----

func TestFailures_IgnoresFallback(t *testing.T) {
	results := []Result{
		{Name: "treasure.txt", Kind: KindText, Success: true},
		{Name: "land-1-snow.bmp", Kind: KindFallback, Error: "no pattern"},
	}
	assert.Zero(t, Failures(results))

	results = append(results, Result{Name: "dungeon-0.bmp", Kind: KindImage, Error: "disk full"})
	assert.Equal(t, 1, Failures(results))
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Name: "treasure.txt", Kind: KindText, Path: filepath.Join(dir, "treasure.txt"), Success: true},
		{Name: "land-1.bmp", Kind: KindImage, Error: "no pattern"},
	}
	path := filepath.Join(dir, "manifest.json")
	require.NoError(t, WriteManifest(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "treasure.txt", entries[0].File)
	assert.True(t, entries[0].Success)
	assert.Equal(t, "", entries[1].File)
	assert.Equal(t, "no pattern", entries[1].Error)
}
