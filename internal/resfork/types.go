package resfork

import (
	"fmt"
	"strings"
)

// TypeString renders a four-character type code. Bytes outside printable
// ASCII and '/' are replaced by '_' so the result is safe in file names.
func TypeString(t uint32) string {
	b := []byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
	for i, c := range b {
		if c < 0x20 || c > 0x7E || c == '/' {
			b[i] = '_'
		}
	}
	return string(b)
}

// ParseType is the inverse of TypeString for four-byte codes. Shorter codes
// are padded with spaces, so "STR" names 'STR '.
func ParseType(s string) (uint32, error) {
	if len(s) == 0 || len(s) > 4 {
		return 0, fmt.Errorf("resfork: type %q must be 1-4 bytes", s)
	}
	s += strings.Repeat(" ", 4-len(s))
	return uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3]), nil
}

// MustParseType is ParseType for constants.
func MustParseType(s string) uint32 {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}
