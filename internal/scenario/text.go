package scenario

import (
	"golang.org/x/text/encoding/charmap"
)

// MacRoman decodes classic Mac OS text to UTF-8. Every byte maps to a rune,
// so decoding cannot fail.
func MacRoman(b []byte) string {
	out, err := charmap.Macintosh.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// decodeFixedText reads a length-prefixed text field occupying width bytes
// (one length byte plus width-1 characters). The length byte may exceed the
// field; the text is clipped to the field and need not be terminated.
func decodeFixedText(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	n := int(raw[0])
	if n > len(raw)-1 {
		n = len(raw) - 1
	}
	return MacRoman(raw[1 : 1+n])
}
