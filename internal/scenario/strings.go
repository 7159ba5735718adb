package scenario

import (
	"fmt"
	"os"

	"realmz-dasm/internal/record"
)

// StringSlotSize is the fixed size of one string pool slot.
const StringSlotSize = 0x100

// StringPool holds the scenario's string table (data_sd2).
type StringPool []string

// StringRef is a signed string pool reference. Index is the pool position;
// Alt is set for negative references, which select an alternate rendering of
// the same string.
type StringRef struct {
	Index int
	Alt   bool
}

// NewStringRef tags a raw signed reference.
func NewStringRef(v int16) StringRef {
	if v < 0 {
		return StringRef{Index: -int(v), Alt: true}
	}
	return StringRef{Index: int(v)}
}

// Signed returns the reference as stored on disk.
func (s StringRef) Signed() int {
	if s.Alt {
		return -s.Index
	}
	return s.Index
}

// IsZero reports the "no string" sentinel.
func (s StringRef) IsZero() bool {
	return s.Index == 0
}

// Lookup returns the pool entry for ref.
func (p StringPool) Lookup(ref StringRef) (string, bool) {
	if ref.Index < 0 || ref.Index >= len(p) {
		return "", false
	}
	return p[ref.Index], true
}

// DecodeStringPool splits raw into 256-byte length-prefixed slots.
func DecodeStringPool(name string, raw []byte) (StringPool, error) {
	if len(raw)%StringSlotSize != 0 {
		return nil, &record.FormatError{Path: name, Size: len(raw), Width: StringSlotSize,
			Reason: fmt.Sprintf("string pool size %d is not a multiple of %d", len(raw), StringSlotSize)}
	}
	return record.DecodeTable(name, raw, StringSlotSize, func(r *record.Reader) string {
		n := int(r.U8())
		return MacRoman(r.Bytes(n))
	})
}

// LoadStringPool reads a data_sd2 file.
func LoadStringPool(path string) (StringPool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return DecodeStringPool(path, raw)
}
