package scenario

import "realmz-dasm/internal/record"

const (
	TilesetTiles = 201
	TileDefSize  = 40
	TilesetSize  = TilesetTiles*TileDefSize + 2 + 47*2
)

// TileDefinition describes one land tile of a custom tileset.
type TileDefinition struct {
	SoundID         int16
	TimePerMove     int16
	SolidType       int16 // 0 not solid, 1 solid to 1-box chars, 2 solid
	IsShore         int16
	NeedBoat        int16 // 1 is boat, 2 needs boat
	IsPath          int16
	BlocksLOS       int16
	NeedFlyFloat    int16
	SpecialType     int16 // 1 trees, 2 desert, 3 shrooms, 4 swamp, 5 snow
	Unknown5        int16
	BattleExpansion [9]int16
	Unknown6        int16
}

// TilesetDefinition is a data_custom_N_bd file.
type TilesetDefinition struct {
	Tiles      [TilesetTiles]TileDefinition
	BaseTileID int16
	Unknown    [47]int16
}

func decodeTilesetDefinition(r *record.Reader) TilesetDefinition {
	var t TilesetDefinition
	for i := range t.Tiles {
		d := &t.Tiles[i]
		d.SoundID = r.I16()
		d.TimePerMove = r.I16()
		d.SolidType = r.I16()
		d.IsShore = r.I16()
		d.NeedBoat = r.I16()
		d.IsPath = r.I16()
		d.BlocksLOS = r.I16()
		d.NeedFlyFloat = r.I16()
		d.SpecialType = r.I16()
		d.Unknown5 = r.I16()
		r.I16s(d.BattleExpansion[:])
		d.Unknown6 = r.I16()
	}
	t.BaseTileID = r.I16()
	r.I16s(t.Unknown[:])
	return t
}

// LoadTilesetDefinition reads a data_custom_N_bd file.
func LoadTilesetDefinition(path string) (TilesetDefinition, error) {
	return record.LoadSingle(path, TilesetSize, decodeTilesetDefinition)
}
