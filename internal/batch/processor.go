package batch

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"realmz-dasm/internal/canvas"
	"realmz-dasm/internal/config"
	"realmz-dasm/internal/dasm"
	"realmz-dasm/internal/location"
	"realmz-dasm/internal/mapgen"
	"realmz-dasm/internal/opcode"
	"realmz-dasm/internal/record"
	"realmz-dasm/internal/resfork"
	"realmz-dasm/internal/scenario"
	"realmz-dasm/internal/tiles"
)

// Output kinds.
const (
	KindText     = "text"
	KindImage    = "image"
	KindLayout   = "layout"
	// KindFallback marks a land level rendered with a substitute tileset.
	KindFallback = "fallback"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir    string
	Format       canvas.Format
	DungeonStyle string
	RenderMaps   bool
	LayoutMaps   bool
	LayoutScale  float64
	Tiles        *tiles.Cache
}

// Result holds the outcome of producing one output file.
type Result struct {
	Name    string
	Kind    string
	Path    string
	Success bool
	Error   string
}

// Failures counts failed results, ignoring fallback variants. A level whose
// tileset is unavailable is expected to fail for most substitute tilesets.
func Failures(results []Result) int {
	n := 0
	for _, res := range results {
		if !res.Success && res.Kind != KindFallback {
			n++
		}
	}
	return n
}

type runner struct {
	cfg     Config
	scn     *scenario.Scenario
	eng     *opcode.Engine
	log     *zap.Logger
	results []Result
}

// Run writes every text report and map image of scn. Failures are recorded in
// the returned results and logged; they never stop the run.
func Run(cfg Config, scn *scenario.Scenario, log *zap.Logger) []Result {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Tiles == nil {
		cfg.Tiles = tiles.NewCache(log)
	}
	r := &runner{
		cfg: cfg,
		scn: scn,
		eng: opcode.New(scn.Ecodes, scn.Strings),
		log: log,
	}

	start := time.Now()
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		r.fail("output", KindText, cfg.OutputDir, err)
		return r.results
	}

	r.texts()
	if cfg.RenderMaps {
		for lt, def := range scn.Tilesets {
			cfg.Tiles.SetBackground(lt.String(), def.BaseTileID)
		}
		r.dungeons()
		rendered := r.lands()
		if cfg.LayoutMaps {
			r.layouts(rendered)
		}
	}

	ok := 0
	for _, res := range r.results {
		if res.Success {
			ok++
		}
	}
	log.Info("batch finished",
		zap.Int("outputs", len(r.results)),
		zap.Int("succeeded", ok),
		zap.Duration("elapsed", time.Since(start)))
	return r.results
}

func (r *runner) fail(name, kind, path string, err error) {
	r.log.Warn("output failed", zap.String("name", name), zap.Error(err))
	r.results = append(r.results, Result{Name: name, Kind: kind, Path: path, Error: err.Error()})
}

func (r *runner) ok(name, kind, path string) {
	r.log.Info("wrote", zap.String("path", path))
	r.results = append(r.results, Result{Name: name, Kind: kind, Path: path, Success: true})
}

func (r *runner) writeText(name, text string) {
	path := filepath.Join(r.cfg.OutputDir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		r.fail(name, KindText, path, fmt.Errorf("batch: write %s: %w", name, err))
		return
	}
	r.ok(name, KindText, path)
}

func (r *runner) texts() {
	s, e := r.scn, r.eng
	r.writeText("encounter-simple.txt", dasm.AllSimpleEncounters(e, s.SimpleEncounters))
	r.writeText("encounter-complex.txt", dasm.AllComplexEncounters(e, s.ComplexEncounters))
	r.writeText("encounter-rogue.txt", dasm.AllRogueEncounters(e, s.RogueEncounters))
	r.writeText("encounter-time.txt", dasm.AllTimeEncounters(s.TimeEncounters))
	r.writeText("treasure.txt", dasm.Treasures(s.Treasures))
	r.writeText("dungeon-ap.txt", dasm.AllAPs(e, scenario.DungeonAP, s.DungeonAPs))
	r.writeText("land-ap.txt", dasm.AllAPs(e, scenario.LandAP, s.LandAPs))
	r.writeText("extra-ap.txt", dasm.LevelAPs(e, scenario.ExtraAP, 0, s.ExtraAPs))
	if s.HasGlobal {
		r.writeText("globals.txt", dasm.Globals(s.Global))
	}
	r.writeText("metadata.txt", r.metadataText())

	if s.ResourcePath != "" {
		f, err := resfork.Open(s.ResourcePath)
		if err != nil {
			r.fail("resources.txt", KindText, s.ResourcePath, err)
			return
		}
		r.writeText("resources.txt", dasm.Resources(filepath.Base(s.ResourcePath), f))
	}
}

func (r *runner) metadataText() string {
	s := r.scn
	var b strings.Builder
	if s.HasMetadata {
		b.WriteString(dasm.ScenarioInfo(s.Metadata))
	}
	b.WriteString(dasm.AllMapMetadata("LAND", s.LandMetadata))
	b.WriteString(dasm.AllMapMetadata("DUNGEON", s.DungeonMetadata))
	for _, lt := range []scenario.LandType{scenario.LandCustom1, scenario.LandCustom2, scenario.LandCustom3} {
		if def, ok := s.Tilesets[lt]; ok {
			b.WriteString(dasm.Tileset(lt, def))
		}
	}
	return b.String()
}

func (r *runner) save(name, kind string, c *canvas.Canvas) (string, bool) {
	file := name + r.cfg.Format.Ext()
	path := filepath.Join(r.cfg.OutputDir, file)
	if err := c.Save(path, r.cfg.Format); err != nil {
		r.fail(file, kind, path, err)
		return "", false
	}
	r.ok(file, kind, path)
	return path, true
}

// dungeonOptions resolves the configured dungeon style against the cache.
func (r *runner) dungeonOptions() (mapgen.DungeonOptions, error) {
	if r.cfg.DungeonStyle == config.StylePlain {
		return mapgen.DungeonOptions{}, nil
	}
	p, err := r.cfg.Tiles.Pattern(tiles.PatternDungeon)
	if err != nil {
		if r.cfg.DungeonStyle == config.StylePattern {
			return mapgen.DungeonOptions{}, err
		}
		r.log.Debug("dungeon pattern unavailable, using plain style", zap.Error(err))
		return mapgen.DungeonOptions{}, nil
	}
	return mapgen.DungeonOptions{Pattern: p}, nil
}

func (r *runner) dungeons() {
	s := r.scn
	opts, err := r.dungeonOptions()
	for n := range s.DungeonMaps {
		name := fmt.Sprintf("dungeon-%d", n)
		if err != nil {
			r.fail(name+r.cfg.Format.Ext(), KindImage, "", fmt.Errorf("batch: %s: %w", name, err))
			continue
		}
		c := mapgen.Dungeon(&s.DungeonMaps[n], scenario.MetadataFor(s.DungeonMetadata, n),
			scenario.LevelAPs(s.DungeonAPs, n), opts)
		r.save(name, KindImage, c)
	}
}

// landOptions returns the neighbors and start marker of level n.
func (r *runner) landOptions(n int) (location.Neighbors, mapgen.LandOptions) {
	s := r.scn
	opts := mapgen.LandOptions{Cache: r.cfg.Tiles}
	if s.HasMetadata && int(s.Metadata.StartLevel) == n {
		opts.Start = image.Point{X: int(s.Metadata.StartX), Y: int(s.Metadata.StartY)}
		opts.HasStart = true
	}
	if !s.HasLayout {
		return location.NoNeighbors, opts
	}
	nb, err := s.Layout.Neighbors(int16(n))
	if err != nil {
		r.log.Debug("level not in layout", zap.Int("level", n), zap.Error(err))
		return location.NoNeighbors, opts
	}
	return nb, opts
}

// fallbackable reports errors that mean the level's tileset cannot be drawn.
func fallbackable(err error) bool {
	var be *record.BoundsError
	var re *record.ResourceError
	return errors.As(err, &be) || errors.As(err, &re)
}

// lands renders every land level and returns the image path of each level
// rendered with its own tileset.
func (r *runner) lands() map[int16]string {
	s := r.scn
	rendered := make(map[int16]string)
	for n := range s.LandMaps {
		name := fmt.Sprintf("land-%d", n)
		grid := &s.LandMaps[n]
		meta := scenario.MetadataFor(s.LandMetadata, n)
		aps := scenario.LevelAPs(s.LandAPs, n)
		nb, opts := r.landOptions(n)

		c, err := mapgen.Land(grid, meta, aps, nb, opts)
		if err == nil {
			if path, ok := r.save(name, KindImage, c); ok {
				rendered[int16(n)] = path
			}
			continue
		}
		if !fallbackable(err) {
			r.fail(name+r.cfg.Format.Ext(), KindImage, "", err)
			continue
		}

		r.log.Warn("cannot render with selected tileset, rendering all known tilesets",
			zap.Int("level", n), zap.String("land_type", meta.LandType.String()), zap.Error(err))
		for _, lt := range mapgen.AllLandTypes() {
			opts.LandType = lt
			alt := fmt.Sprintf("%s-%s", name, lt)
			c, err := mapgen.Land(grid, meta, aps, nb, opts)
			if err != nil {
				r.fail(alt+r.cfg.Format.Ext(), KindFallback, "", err)
				continue
			}
			r.save(alt, KindFallback, c)
		}
	}
	return rendered
}

// loadRendered reads a saved level image back for stitching.
func loadRendered(paths map[int16]string) mapgen.LevelSource {
	return func(level int16) (*canvas.Canvas, error) {
		path, ok := paths[level]
		if !ok {
			return nil, &record.BoundsError{What: "rendered land level", Index: int(level), Len: -1}
		}
		img, err := tiles.LoadImage(path)
		if err != nil {
			return nil, err
		}
		return canvas.FromImage(img), nil
	}
}

func (r *runner) layouts(rendered map[int16]string) {
	if !r.scn.HasLayout {
		r.log.Info("no layout file, skipping layout maps")
		return
	}
	for i, comp := range r.scn.Layout.Components() {
		name := fmt.Sprintf("layout-%d", i)
		c, err := mapgen.LayoutMap(comp, loadRendered(rendered), r.cfg.LayoutScale)
		if errors.Is(err, mapgen.ErrNoConnectedLevels) {
			r.log.Debug("isolated level, no layout map", zap.Int("component", i))
			continue
		}
		if err != nil {
			r.fail(name+r.cfg.Format.Ext(), KindLayout, "", err)
			continue
		}
		r.save(name, KindLayout, c)
	}
}
