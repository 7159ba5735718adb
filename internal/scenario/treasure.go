package scenario

import (
	"fmt"
	"strconv"

	"realmz-dasm/internal/record"
)

const (
	TreasureItems = 20
	TreasureSize  = (TreasureItems + 4) * 2
)

// Amount is a treasure quantity. Negative stored values mean a uniform
// random amount from 1 to N.
type Amount struct {
	N      int
	Random bool
}

// NewAmount tags a raw stored amount.
func NewAmount(v int16) Amount {
	if v < 0 {
		return Amount{N: -int(v), Random: true}
	}
	return Amount{N: int(v)}
}

func (a Amount) IsZero() bool {
	return a.N == 0
}

func (a Amount) String() string {
	if a.Random {
		return fmt.Sprintf("rand(1, %d)", a.N)
	}
	return strconv.Itoa(a.N)
}

// Treasure is one data_td record.
type Treasure struct {
	ItemIDs       [TreasureItems]int16
	VictoryPoints Amount
	Gold          Amount
	Gems          Amount
	Jewelry       Amount
}

func decodeTreasure(r *record.Reader) Treasure {
	var t Treasure
	r.I16s(t.ItemIDs[:])
	t.VictoryPoints = NewAmount(r.I16())
	t.Gold = NewAmount(r.I16())
	t.Gems = NewAmount(r.I16())
	t.Jewelry = NewAmount(r.I16())
	return t
}

// LoadTreasures reads a data_td file.
func LoadTreasures(path string) ([]Treasure, error) {
	return record.LoadTable(path, TreasureSize, decodeTreasure)
}

// DecodeTreasures decodes an in-memory data_td buffer.
func DecodeTreasures(raw []byte) ([]Treasure, error) {
	return record.DecodeTable("data_td", raw, TreasureSize, decodeTreasure)
}
