package scenario

import "realmz-dasm/internal/record"

const (
	// EcodesPerEntry is the number of values held by one ecodes entry.
	EcodesPerEntry = 5
	EcodesSize     = EcodesPerEntry * 2
)

// Ecodes is one entry of the extra-codes table (data_edcd).
type Ecodes [EcodesPerEntry]int16

func decodeEcodes(r *record.Reader) Ecodes {
	var e Ecodes
	r.I16s(e[:])
	return e
}

// LoadEcodes reads a data_edcd file.
func LoadEcodes(path string) ([]Ecodes, error) {
	return record.LoadTable(path, EcodesSize, decodeEcodes)
}

// DecodeEcodes decodes an in-memory data_edcd buffer.
func DecodeEcodes(raw []byte) ([]Ecodes, error) {
	return record.DecodeTable("data_edcd", raw, EcodesSize, decodeEcodes)
}
