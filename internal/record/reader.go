package record

import "encoding/binary"

// Reader is a big-endian cursor over one fixed-size record.
// Reads past the end return zero and pin the offset at len(data).
type Reader struct {
	data []byte
	off  int
}

// NewReader wraps b for sequential big-endian reads.
func NewReader(b []byte) *Reader {
	return &Reader{data: b}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) take(n int) []byte {
	if r.off+n > len(r.data) {
		r.off = len(r.data)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

// U8 reads one unsigned byte.
func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// I8 reads one signed byte.
func (r *Reader) I8() int8 {
	return int8(r.U8())
}

// I16 reads a big-endian int16.
func (r *Reader) I16() int16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return int16(binary.BigEndian.Uint16(b))
}

// I32 reads a big-endian int32.
func (r *Reader) I32() int32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.BigEndian.Uint32(b))
}

// Bytes returns a copy of the next n bytes.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n)
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Skip advances past n bytes of padding or unknown fields.
func (r *Reader) Skip(n int) {
	r.take(n)
}

// I8s fills dst with consecutive signed bytes.
func (r *Reader) I8s(dst []int8) {
	for i := range dst {
		dst[i] = r.I8()
	}
}

// I16s fills dst with consecutive big-endian int16 values.
func (r *Reader) I16s(dst []int16) {
	for i := range dst {
		dst[i] = r.I16()
	}
}
