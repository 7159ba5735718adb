package resfork

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

func macRoman(b []byte) string {
	out, err := charmap.Macintosh.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// DecodeText converts a TEXT resource to UTF-8 with LF line endings.
func DecodeText(data []byte) string {
	return strings.ReplaceAll(macRoman(data), "\r", "\n")
}

// DecodeString decodes an 'STR ' resource: one Pascal string, clipped to the
// data. Bytes after the string are returned as trailing.
func DecodeString(data []byte) (s string, trailing []byte) {
	if len(data) == 0 {
		return "", nil
	}
	n := min(int(data[0]), len(data)-1)
	return DecodeText(data[1 : 1+n]), data[1+n:]
}

// DecodeStringList decodes an 'STR#' resource: a 16-bit count followed by
// that many Pascal strings. A truncated list yields the strings read so far.
func DecodeStringList(data []byte) []string {
	if len(data) < 2 {
		return nil
	}
	count := int(data[0])<<8 | int(data[1])
	out := make([]string, 0, count)
	pos := 2
	for i := 0; i < count && pos < len(data); i++ {
		n := int(data[pos])
		pos++
		end := min(pos+n, len(data))
		out = append(out, DecodeText(data[pos:end]))
		pos = end
	}
	return out
}
