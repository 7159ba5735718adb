package dasm

import (
	"fmt"
	"strings"

	"realmz-dasm/internal/scenario"
)

// Globals renders the scenario-wide XAP table.
func Globals(g scenario.GlobalMetadata) string {
	var b strings.Builder
	b.WriteString("==== GLOBAL METADATA\n")
	fmt.Fprintf(&b, "  start_xap=%d\n", g.StartXAP)
	fmt.Fprintf(&b, "  death_xap=%d\n", g.DeathXAP)
	fmt.Fprintf(&b, "  quit_xap=%d\n", g.QuitXAP)
	fmt.Fprintf(&b, "  reserved1_xap=%d\n", g.Reserved1XAP)
	fmt.Fprintf(&b, "  shop_xap=%d\n", g.ShopXAP)
	fmt.Fprintf(&b, "  temple_xap=%d\n", g.TempleXAP)
	fmt.Fprintf(&b, "  reserved2_xap=%d\n", g.Reserved2XAP)
	return b.String()
}

// ScenarioInfo renders the known fields of the scenario metadata file.
func ScenarioInfo(s scenario.ScenarioMetadata) string {
	var b strings.Builder
	b.WriteString("==== SCENARIO METADATA\n")
	fmt.Fprintf(&b, "  recommended_starting_levels=%d\n", s.RecommendedStartingLevels)
	fmt.Fprintf(&b, "  start_level=%d\n", s.StartLevel)
	fmt.Fprintf(&b, "  start_pos=(%d,%d)\n", s.StartX, s.StartY)
	return b.String()
}

// MapMetadata renders one level's land type and random rects. kind is
// "LAND" or "DUNGEON".
func MapMetadata(kind string, level int, m scenario.MapMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "==== %s METADATA level=%d land_type=%s\n", kind, level, m.LandType)
	for i, r := range m.Rects {
		if r.IsEmpty() {
			continue
		}
		fmt.Fprintf(&b, "  rect%d: top=%d left=%d bottom=%d right=%d %s\n",
			i, r.Top, r.Left, r.Bottom, r.Right, r.Info())
	}
	return b.String()
}

// AllMapMetadata renders a metadata table in level order.
func AllMapMetadata(kind string, ms []scenario.MapMetadata) string {
	var b strings.Builder
	for i, m := range ms {
		b.WriteString(MapMetadata(kind, i, m))
	}
	return b.String()
}

// Tileset renders the non-default tiles of a custom tileset definition.
func Tileset(lt scenario.LandType, t scenario.TilesetDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "==== TILESET %s base_tile_id=%d\n", lt, t.BaseTileID)
	for i, d := range t.Tiles {
		if d == (scenario.TileDefinition{}) {
			continue
		}
		fmt.Fprintf(&b, "  %d> sound=%d time=%d solid=%d shore=%d boat=%d path=%d blocks_los=%d fly_float=%d special=%d\n",
			i, d.SoundID, d.TimePerMove, d.SolidType, d.IsShore, d.NeedBoat, d.IsPath,
			d.BlocksLOS, d.NeedFlyFloat, d.SpecialType)
	}
	return b.String()
}
