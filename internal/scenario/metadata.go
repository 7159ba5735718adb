package scenario

import (
	"fmt"
	"strings"

	"realmz-dasm/internal/record"
)

const (
	RandomRects     = 20
	RectXAPs        = 3
	MapMetadataSize = 644
)

// RandomRect is one random-encounter rectangle of a level.
type RandomRect struct {
	Top, Left, Bottom, Right int16
	TimesIn10k               int16
	BattleLow, BattleHigh    int16
	XAPNum                   [RectXAPs]int16
	XAPChance                [RectXAPs]int16
	PercentOption            int8
	Sound                    int16
	Text                     int16
}

// IsEmpty reports a rect that never triggers.
func (r RandomRect) IsEmpty() bool {
	return r.TimesIn10k == 0
}

// Info is the one-line summary drawn inside a rect on rendered maps.
func (r RandomRect) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/10000", r.TimesIn10k)
	if r.BattleLow != 0 || r.BattleHigh != 0 {
		fmt.Fprintf(&b, " b=[%d,%d]", r.BattleLow, r.BattleHigh)
	}
	if r.PercentOption != 0 {
		fmt.Fprintf(&b, " o=%d%%", r.PercentOption)
	}
	if r.Sound != 0 {
		fmt.Fprintf(&b, " s=%d", r.Sound)
	}
	if r.Text != 0 {
		fmt.Fprintf(&b, " t=%d", r.Text)
	}
	for i := 0; i < RectXAPs; i++ {
		if r.XAPNum[i] != 0 && r.XAPChance[i] != 0 {
			fmt.Fprintf(&b, " a%d=%d,%d%%", i, r.XAPNum[i], r.XAPChance[i])
		}
	}
	return b.String()
}

// LandType is the raw land type byte of a level.
type LandType uint8

const (
	LandOutdoor LandType = iota
	LandReserved1
	LandReserved2
	LandCave
	LandIndoor
	LandDesert
	LandCustom1
	LandCustom2
	LandCustom3
	LandAbyss
	LandSnow
)

var landTypeNames = [...]string{
	"outdoor", "reserved1", "reserved2", "cave", "indoor", "desert",
	"custom_1", "custom_2", "custom_3", "abyss", "snow",
}

// Name returns the land type's name, or a BoundsError for unknown bytes.
func (t LandType) Name() (string, error) {
	if int(t) >= len(landTypeNames) {
		return "", &record.BoundsError{What: "land type", Index: int(t), Len: len(landTypeNames)}
	}
	return landTypeNames[t], nil
}

func (t LandType) String() string {
	if name, err := t.Name(); err == nil {
		return name
	}
	return fmt.Sprintf("land_type_%d", uint8(t))
}

// ParseLandType is the inverse of Name.
func ParseLandType(name string) (LandType, bool) {
	for i, n := range landTypeNames {
		if n == name {
			return LandType(i), true
		}
	}
	return 0, false
}

// MapMetadata is one level's data_rd / data_rdd record.
type MapMetadata struct {
	LandType LandType
	Rects    [RandomRects]RandomRect
}

// decodeMapMetadata reads the column-wise layout: each field is stored for
// all 20 rects before the next field begins.
func decodeMapMetadata(r *record.Reader) MapMetadata {
	var m MapMetadata
	for i := range m.Rects {
		rc := &m.Rects[i]
		rc.Top = r.I16()
		rc.Left = r.I16()
		rc.Bottom = r.I16()
		rc.Right = r.I16()
	}
	for i := range m.Rects {
		m.Rects[i].TimesIn10k = r.I16()
	}
	for i := range m.Rects {
		m.Rects[i].BattleLow = r.I16()
		m.Rects[i].BattleHigh = r.I16()
	}
	for i := range m.Rects {
		r.I16s(m.Rects[i].XAPNum[:])
	}
	for i := range m.Rects {
		r.I16s(m.Rects[i].XAPChance[:])
	}
	m.LandType = LandType(r.U8())
	r.Skip(0x16)
	for i := range m.Rects {
		m.Rects[i].PercentOption = r.I8()
	}
	r.Skip(1)
	for i := range m.Rects {
		m.Rects[i].Sound = r.I16()
	}
	for i := range m.Rects {
		m.Rects[i].Text = r.I16()
	}
	return m
}

// LoadMapMetadata reads a data_rd or data_rdd file.
func LoadMapMetadata(path string) ([]MapMetadata, error) {
	return record.LoadTable(path, MapMetadataSize, decodeMapMetadata)
}

// DecodeMapMetadata decodes an in-memory metadata table.
func DecodeMapMetadata(raw []byte) ([]MapMetadata, error) {
	return record.DecodeTable("data_rd", raw, MapMetadataSize, decodeMapMetadata)
}
