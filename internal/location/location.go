package location

import "fmt"

// Location is a decoded action-point location code.
// Valid is false for negative codes, which mean "no location".
type Location struct {
	X, Y, Level int
	Valid       bool
}

// Decode splits a packed location code: level*10000 + y*100 + x.
func Decode(code int32) Location {
	if code < 0 {
		return Location{X: -1, Y: -1, Level: -1}
	}
	c := int(code)
	return Location{
		X:     c % 100,
		Y:     (c / 100) % 100,
		Level: (c / 10000) % 100,
		Valid: true,
	}
}

// Encode packs (level, x, y) into a location code.
func Encode(level, x, y int) int32 {
	return int32(level*10000 + y*100 + x)
}

func (l Location) String() string {
	if !l.Valid {
		return "none"
	}
	return fmt.Sprintf("%d:(%d,%d)", l.Level, l.X, l.Y)
}
