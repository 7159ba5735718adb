package scenario

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"realmz-dasm/internal/location"
)

// Scenario is every decoded table of one scenario directory. All fields are
// read-only after LoadDir returns.
type Scenario struct {
	Dir  string
	Name string

	DungeonMaps       []Grid
	LandMaps          []Grid
	Strings           StringPool
	Ecodes            []Ecodes
	LandAPs           [][]AP
	DungeonAPs        [][]AP
	ExtraAPs          []AP
	LandMetadata      []MapMetadata
	DungeonMetadata   []MapMetadata
	SimpleEncounters  []SimpleEncounter
	ComplexEncounters []ComplexEncounter
	RogueEncounters   []RogueEncounter
	TimeEncounters    []TimeEncounter
	Treasures         []Treasure

	Global      GlobalMetadata
	HasGlobal   bool
	Metadata    ScenarioMetadata
	HasMetadata bool

	// Layout is EmptyLayout when the scenario has no layout file.
	Layout    location.Layout
	HasLayout bool

	// Tilesets holds the custom tileset definitions keyed by land type
	// (LandCustom1..LandCustom3).
	Tilesets map[LandType]TilesetDefinition

	// ResourcePath is the scenario.rsf path, empty when absent.
	ResourcePath string
}

// LevelAPs returns the APs of level n in aps, or nil.
func LevelAPs(aps [][]AP, n int) []AP {
	if n < 0 || n >= len(aps) {
		return nil
	}
	return aps[n]
}

// MetadataFor returns level n's metadata, or an empty record.
func MetadataFor(meta []MapMetadata, n int) MapMetadata {
	if n < 0 || n >= len(meta) {
		return MapMetadata{}
	}
	return meta[n]
}

type loader struct {
	idx *FileIndex
	log *zap.Logger
}

// path resolves name. A missing file is logged and reported as "".
func (l *loader) path(name string) string {
	p, ok := l.idx.Find(name)
	if !ok {
		l.log.Warn("scenario file missing, using empty table", zap.String("file", name))
		return ""
	}
	return p
}

func loadTable[T any](l *loader, name string, load func(string) (T, error)) (T, error) {
	var zero T
	p := l.path(name)
	if p == "" {
		return zero, nil
	}
	v, err := load(p)
	if err != nil {
		return zero, fmt.Errorf("scenario: load %s: %w", name, err)
	}
	l.log.Debug("loaded table", zap.String("file", name), zap.String("path", p))
	return v, nil
}

// LoadDir decodes every table of the scenario in dir. Missing files become
// empty tables with a warning; a present but malformed file is an error.
func LoadDir(dir string, log *zap.Logger) (*Scenario, error) {
	if log == nil {
		log = zap.NewNop()
	}
	idx, err := IndexDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scenario: scan %s: %w", dir, err)
	}
	l := &loader{idx: idx, log: log}

	s := &Scenario{
		Dir:      dir,
		Name:     filepath.Base(filepath.Clean(dir)),
		Layout:   location.EmptyLayout(),
		Tilesets: make(map[LandType]TilesetDefinition),
	}

	if s.DungeonMaps, err = loadTable(l, FileDungeonMaps, LoadDungeonMaps); err != nil {
		return nil, err
	}
	if s.LandMaps, err = loadTable(l, FileLandMaps, LoadLandMaps); err != nil {
		return nil, err
	}
	if s.Strings, err = loadTable(l, FileStrings, LoadStringPool); err != nil {
		return nil, err
	}
	if s.Ecodes, err = loadTable(l, FileEcodes, LoadEcodes); err != nil {
		return nil, err
	}
	if s.LandAPs, err = loadTable(l, FileLandAPs, LoadLevelAPs); err != nil {
		return nil, err
	}
	if s.DungeonAPs, err = loadTable(l, FileDungeonAPs, LoadLevelAPs); err != nil {
		return nil, err
	}
	if s.ExtraAPs, err = loadTable(l, FileExtraAPs, LoadExtraAPs); err != nil {
		return nil, err
	}
	if s.LandMetadata, err = loadTable(l, FileLandMetadata, LoadMapMetadata); err != nil {
		return nil, err
	}
	if s.DungeonMetadata, err = loadTable(l, FileDungeonMetadata, LoadMapMetadata); err != nil {
		return nil, err
	}
	if s.SimpleEncounters, err = loadTable(l, FileSimpleEncounters, LoadSimpleEncounters); err != nil {
		return nil, err
	}
	if s.ComplexEncounters, err = loadTable(l, FileComplexEncounters, LoadComplexEncounters); err != nil {
		return nil, err
	}
	if s.RogueEncounters, err = loadTable(l, FileRogueEncounters, LoadRogueEncounters); err != nil {
		return nil, err
	}
	if s.TimeEncounters, err = loadTable(l, FileTimeEncounters, LoadTimeEncounters); err != nil {
		return nil, err
	}
	if s.Treasures, err = loadTable(l, FileTreasures, LoadTreasures); err != nil {
		return nil, err
	}

	if p := l.path(FileGlobal); p != "" {
		if s.Global, err = LoadGlobalMetadata(p); err != nil {
			return nil, fmt.Errorf("scenario: load %s: %w", FileGlobal, err)
		}
		s.HasGlobal = true
	}
	if p := l.path(FileLayout); p != "" {
		if s.Layout, err = location.LoadLayout(p); err != nil {
			return nil, fmt.Errorf("scenario: load %s: %w", FileLayout, err)
		}
		s.HasLayout = true
	}
	if p := l.path(s.Name); p != "" {
		if s.Metadata, err = LoadScenarioMetadata(p); err != nil {
			return nil, fmt.Errorf("scenario: load metadata %s: %w", s.Name, err)
		}
		s.HasMetadata = true
	}
	for n, lt := range []LandType{LandCustom1, LandCustom2, LandCustom3} {
		p, ok := idx.Find(TilesetFile(n + 1))
		if !ok {
			continue
		}
		def, err := LoadTilesetDefinition(p)
		if err != nil {
			return nil, fmt.Errorf("scenario: load %s: %w", TilesetFile(n+1), err)
		}
		s.Tilesets[lt] = def
	}
	if p, ok := idx.Find(FileResources); ok {
		s.ResourcePath = p
	}

	log.Info("scenario loaded",
		zap.String("name", s.Name),
		zap.Int("dungeon_levels", len(s.DungeonMaps)),
		zap.Int("land_levels", len(s.LandMaps)),
		zap.Int("strings", len(s.Strings)),
		zap.Int("ecodes", len(s.Ecodes)))
	return s, nil
}
