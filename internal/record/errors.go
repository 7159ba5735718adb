package record

import "fmt"

// FormatError reports a file whose shape does not match its record layout.
type FormatError struct {
	Path   string
	Size   int
	Width  int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("record: %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("record: %s: size %d is not a multiple of record width %d", e.Path, e.Size, e.Width)
}

// BoundsError reports an index or lookup key outside its table.
type BoundsError struct {
	What  string
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("record: %s %d", e.What, e.Index)
	}
	return fmt.Sprintf("record: %s %d out of range [0,%d)", e.What, e.Index, e.Len)
}

// ResourceError reports a container entry or image that is missing or undecodable.
// It is a warning-level condition.
type ResourceError struct {
	Type string
	ID   int
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("record: resource %s:%d not found", e.Type, e.ID)
	}
	return fmt.Sprintf("record: resource %s:%d: %v", e.Type, e.ID, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
