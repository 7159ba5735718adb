package tiles

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"realmz-dasm/internal/canvas"
	"realmz-dasm/internal/record"
)

// PatternDungeon keys the dungeon pattern, which has no land type byte.
const PatternDungeon = "dungeon"

// patternIDs maps a pattern key to the PICT it comes from in the default
// assets.
var patternIDs = map[string]int{
	"outdoor":      300,
	PatternDungeon: 302,
	"cave":         303,
	"indoor":       304,
	"desert":       305,
	"abyss":        309,
	"snow":         310,
}

// customPatternIDs come from the scenario assets instead.
var customPatternIDs = map[string]int{
	"custom_1": 306,
	"custom_2": 307,
	"custom_3": 308,
}

var defaultBackgrounds = map[string]int16{
	"outdoor": 0x9B,
	"abyss":   0x9B,
	"cave":    0x9B,
	"snow":    0x9B,
	"desert":  0xBF,
	"indoor":  0x6F,
}

// PatternID returns the PICT id a land type's pattern is loaded from.
func PatternID(landType string) (int, bool) {
	if id, ok := patternIDs[landType]; ok {
		return id, true
	}
	id, ok := customPatternIDs[landType]
	return id, ok
}

// StandardLandTypes returns the land types with a built-in pattern, sorted.
func StandardLandTypes() []string {
	names := make([]string, 0, len(patternIDs))
	for name := range patternIDs {
		if name != PatternDungeon {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Cache holds decoded tile images for one run. It is filled by Populate and
// read by the map renderers.
type Cache struct {
	mu            sync.RWMutex
	defaultTiles  map[int16]*canvas.Canvas
	scenarioTiles map[int16]*canvas.Canvas
	patterns      map[string]*canvas.Canvas
	backgrounds   map[string]int16
	log           *zap.Logger
}

// NewCache returns an empty cache with the built-in background tile ids.
func NewCache(log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Cache{
		defaultTiles:  make(map[int16]*canvas.Canvas),
		scenarioTiles: make(map[int16]*canvas.Canvas),
		patterns:      make(map[string]*canvas.Canvas),
		backgrounds:   make(map[string]int16, len(defaultBackgrounds)),
		log:           log,
	}
	for k, v := range defaultBackgrounds {
		c.backgrounds[k] = v
	}
	return c
}

func (c *Cache) load(idx *Index, typ string, id int) (*canvas.Canvas, error) {
	path, ok := idx.ResolvePath(typ, id)
	if !ok {
		return nil, &record.ResourceError{Type: typ, ID: id}
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil, &record.ResourceError{Type: typ, ID: id, Err: err}
	}
	return canvas.FromImage(img), nil
}

func (c *Cache) loadTiles(idx *Index, dst map[int16]*canvas.Canvas) int {
	n := 0
	for _, id := range idx.IDs(TypeCICN) {
		if id < -32768 || id > 32767 {
			continue
		}
		img, err := c.load(idx, TypeCICN, id)
		if err != nil {
			c.log.Warn("custom tile skipped", zap.Int("id", id), zap.Error(err))
			continue
		}
		dst[int16(id)] = img
		n++
	}
	return n
}

func (c *Cache) loadPatterns(idx *Index, ids map[string]int) {
	for name, id := range ids {
		if _, ok := idx.ResolvePath(TypePICT, id); !ok {
			c.log.Debug("pattern not indexed", zap.String("land_type", name), zap.Int("id", id))
			continue
		}
		img, err := c.load(idx, TypePICT, id)
		if err != nil {
			c.log.Warn("pattern skipped", zap.String("land_type", name), zap.Int("id", id), zap.Error(err))
			continue
		}
		c.patterns[name] = img
	}
}

// Populate decodes the custom tiles and land patterns of both asset indexes.
// Either index may be nil. Undecodable images are logged and skipped.
func (c *Cache) Populate(defaults, scenario *Index) {
	c.mu.Lock()
	defer c.mu.Unlock()

	nd := c.loadTiles(defaults, c.defaultTiles)
	ns := c.loadTiles(scenario, c.scenarioTiles)
	c.loadPatterns(defaults, patternIDs)
	c.loadPatterns(scenario, customPatternIDs)

	c.log.Info("tile caches populated",
		zap.Int("default_tiles", nd),
		zap.Int("scenario_tiles", ns),
		zap.Int("patterns", len(c.patterns)))
}

// SetPattern installs a pattern directly, replacing any loaded one.
func (c *Cache) SetPattern(landType string, img *canvas.Canvas) {
	c.mu.Lock()
	c.patterns[landType] = img
	c.mu.Unlock()
}

// SetTile installs a custom tile image. Scenario tiles shadow default ones.
func (c *Cache) SetTile(code int16, img *canvas.Canvas, scenario bool) {
	c.mu.Lock()
	if scenario {
		c.scenarioTiles[code] = img
	} else {
		c.defaultTiles[code] = img
	}
	c.mu.Unlock()
}

// SetBackground sets the tile drawn beneath custom tiles of a land type.
func (c *Cache) SetBackground(landType string, id int16) {
	c.mu.Lock()
	c.backgrounds[landType] = id
	c.mu.Unlock()
}

// Background returns the background tile id of a land type; 0 means black.
func (c *Cache) Background(landType string) int16 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.backgrounds[landType]
}

// Pattern returns a land type's tile pattern or a ResourceError.
func (c *Cache) Pattern(landType string) (*canvas.Canvas, error) {
	c.mu.RLock()
	img, ok := c.patterns[landType]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}
	id, known := PatternID(landType)
	if !known {
		id = -1
	}
	return nil, &record.ResourceError{Type: TypePICT, ID: id}
}

// CustomTile looks a custom tile up in the scenario tiles, then the defaults.
func (c *Cache) CustomTile(code int16) (*canvas.Canvas, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if img, ok := c.scenarioTiles[code]; ok {
		return img, true
	}
	img, ok := c.defaultTiles[code]
	return img, ok
}
