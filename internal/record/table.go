package record

import (
	"fmt"
	"os"
)

// DecodeFunc turns one width-sized chunk into a typed record.
type DecodeFunc[T any] func(r *Reader) T

// LoadTable reads path and decodes one record per width-sized chunk.
// The file size must be an exact multiple of width.
func LoadTable[T any](path string, width int, decode DecodeFunc[T]) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("record: read %s: %w", path, err)
	}
	return DecodeTable(path, raw, width, decode)
}

// DecodeTable is LoadTable over an in-memory buffer. name is used in errors.
func DecodeTable[T any](name string, raw []byte, width int, decode DecodeFunc[T]) ([]T, error) {
	if width <= 0 {
		return nil, fmt.Errorf("record: %s: invalid record width %d", name, width)
	}
	if len(raw)%width != 0 {
		return nil, &FormatError{Path: name, Size: len(raw), Width: width}
	}

	n := len(raw) / width
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = decode(NewReader(raw[i*width : (i+1)*width]))
	}
	return out, nil
}

// LoadSingle decodes the first width bytes of path. Trailing bytes are ignored.
func LoadSingle[T any](path string, width int, decode DecodeFunc[T]) (T, error) {
	var zero T
	raw, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("record: read %s: %w", path, err)
	}
	if len(raw) < width {
		return zero, &FormatError{Path: path, Size: len(raw), Width: width,
			Reason: fmt.Sprintf("file is %d bytes, need at least %d", len(raw), width)}
	}
	return decode(NewReader(raw[:width])), nil
}
