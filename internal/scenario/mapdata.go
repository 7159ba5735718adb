package scenario

import "realmz-dasm/internal/record"

const (
	MapSize     = 90
	MapDataSize = MapSize * MapSize * 2
)

// Dungeon tile flags.
const (
	DungeonWall        int16 = 0x0001
	DungeonVertDoor    int16 = 0x0002
	DungeonHorizDoor   int16 = 0x0004
	DungeonStairs      int16 = 0x0008
	DungeonColumns     int16 = 0x0010
	DungeonUnmapped    int16 = 0x0080
	DungeonSecretUp    int16 = 0x0100
	DungeonSecretRight int16 = 0x0200
	DungeonSecretDown  int16 = 0x0400
	DungeonSecretLeft  int16 = 0x0800
	DungeonSecretAny   int16 = 0x0F00
	DungeonHasAP       int16 = 0x1000
	DungeonBattleBlank int16 = 0x2000
)

// Grid is one level's 90x90 tile codes, indexed [y][x].
type Grid [MapSize][MapSize]int16

func decodeGrid(r *record.Reader) Grid {
	var g Grid
	for y := range g {
		r.I16s(g[y][:])
	}
	return g
}

func (g *Grid) transpose() {
	for y := 0; y < MapSize; y++ {
		for x := y + 1; x < MapSize; x++ {
			g[y][x], g[x][y] = g[x][y], g[y][x]
		}
	}
}

// LoadDungeonMaps reads a data_dl file. Dungeon grids are stored row-major.
func LoadDungeonMaps(path string) ([]Grid, error) {
	return record.LoadTable(path, MapDataSize, decodeGrid)
}

// LoadLandMaps reads a data_ld file. Land grids are stored column-major and
// are transposed so both kinds index [y][x].
func LoadLandMaps(path string) ([]Grid, error) {
	grids, err := LoadDungeonMaps(path)
	if err != nil {
		return nil, err
	}
	for i := range grids {
		grids[i].transpose()
	}
	return grids, nil
}

// DecodeDungeonMaps and DecodeLandMaps decode in-memory grids.
func DecodeDungeonMaps(raw []byte) ([]Grid, error) {
	return record.DecodeTable("data_dl", raw, MapDataSize, decodeGrid)
}

func DecodeLandMaps(raw []byte) ([]Grid, error) {
	grids, err := record.DecodeTable("data_ld", raw, MapDataSize, decodeGrid)
	if err != nil {
		return nil, err
	}
	for i := range grids {
		grids[i].transpose()
	}
	return grids, nil
}

// TileCode is a decoded land tile.
type TileCode struct {
	// Code is the tile code with AP offsets removed.
	Code  int16
	HasAP bool
}

// NewTileCode strips the +-1000 AP offsets from a raw land tile.
func NewTileCode(raw int16) TileCode {
	v := int(raw)
	t := TileCode{}
	for v <= -1000 {
		v += 1000
		t.HasAP = true
	}
	for v > 1000 {
		v -= 1000
		t.HasAP = true
	}
	t.Code = int16(v)
	return t
}

// Standard reports a tile drawn from the land pattern (1..200).
func (t TileCode) Standard() bool {
	return t.Code >= 1 && t.Code <= 200
}

// Custom reports a tile that needs an external image (0, negative or >200).
func (t TileCode) Custom() bool {
	return !t.Standard()
}
