package scenario

import (
	"realmz-dasm/internal/location"
	"realmz-dasm/internal/record"
)

const (
	APSlots     = 8
	APSize      = 40
	APsPerLevel = 100
)

// APKind distinguishes the three action point tables.
type APKind int

const (
	LandAP APKind = iota
	DungeonAP
	ExtraAP
)

func (k APKind) String() string {
	switch k {
	case LandAP:
		return "LAND_AP"
	case DungeonAP:
		return "DUNGEON_AP"
	case ExtraAP:
		return "EXTRA_AP"
	}
	return "AP"
}

// AP is one action point record.
type AP struct {
	LocationCode  int32
	Location      location.Location
	ToLevel       uint8
	ToX           uint8
	ToY           uint8
	PercentChance uint8
	Commands      [APSlots]int16
	Args          [APSlots]int16
}

// SlotBlank reports a slot whose command and argument are both zero.
func (a *AP) SlotBlank(n int) bool {
	return a.Commands[n] == 0 && a.Args[n] == 0
}

func decodeAP(r *record.Reader) AP {
	var a AP
	a.LocationCode = r.I32()
	a.Location = location.Decode(a.LocationCode)
	a.ToLevel = r.U8()
	a.ToX = r.U8()
	a.ToY = r.U8()
	a.PercentChance = r.U8()
	r.I16s(a.Commands[:])
	r.I16s(a.Args[:])
	return a
}

// LoadExtraAPs reads a flat AP table (data_ed3).
func LoadExtraAPs(path string) ([]AP, error) {
	return record.LoadTable(path, APSize, decodeAP)
}

// DecodeExtraAPs decodes an in-memory flat AP table.
func DecodeExtraAPs(raw []byte) ([]AP, error) {
	return record.DecodeTable("data_ed3", raw, APSize, decodeAP)
}

// LoadLevelAPs reads a per-level AP table (data_dd, data_ddd) and groups
// every 100 consecutive records into one level.
func LoadLevelAPs(path string) ([][]AP, error) {
	aps, err := LoadExtraAPs(path)
	if err != nil {
		return nil, err
	}
	return GroupLevels(aps), nil
}

// GroupLevels splits a flat AP list into levels of 100 records. A trailing
// partial group becomes the final level.
func GroupLevels(aps []AP) [][]AP {
	levels := make([][]AP, 0, (len(aps)+APsPerLevel-1)/APsPerLevel)
	for start := 0; start < len(aps); start += APsPerLevel {
		end := start + APsPerLevel
		if end > len(aps) {
			end = len(aps)
		}
		levels = append(levels, aps[start:end])
	}
	return levels
}

// APsAt groups AP indexes by the tile they are placed on. APs without a
// location are left out.
func APsAt(aps []AP) map[[2]int][]int {
	out := make(map[[2]int][]int)
	for i := range aps {
		loc := aps[i].Location
		if !loc.Valid {
			continue
		}
		key := [2]int{loc.X, loc.Y}
		out[key] = append(out[key], i)
	}
	return out
}
