// Package resfork reads classic Mac OS resource forks: enumerate entries and
// load their raw bytes. Only text resources are decoded.
package resfork

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"realmz-dasm/internal/record"
)

const (
	headerSize     = 16
	mapHeaderSize  = 28
	typeEntrySize  = 8
	refEntrySize   = 12
	dataLengthSize = 4
)

// Common resource types.
var (
	TypeTEXT = MustParseType("TEXT")
	TypeSTR  = MustParseType("STR ")
	TypeSTRN = MustParseType("STR#")
	TypePICT = MustParseType("PICT")
	TypeCICN = MustParseType("cicn")
	TypeMOOV = MustParseType("MooV")
)

// Ref identifies one resource.
type Ref struct {
	Type uint32
	ID   int16
}

func (r Ref) String() string {
	return fmt.Sprintf("%s:%d", TypeString(r.Type), r.ID)
}

type entry struct {
	offset uint32 // from the start of the data area
}

// File is a parsed resource fork held in memory.
type File struct {
	Path    string
	data    []byte
	dataOff uint32
	entries map[Ref]entry
	remap   map[uint32]uint32
}

// Open reads and parses the resource fork at path.
func Open(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resfork: read %s: %w", path, err)
	}
	f, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("resfork: parse %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

func headerError(size int, reason string, args ...any) error {
	return &record.FormatError{Path: "resource fork", Size: size, Reason: fmt.Sprintf(reason, args...)}
}

// Parse decodes an in-memory resource fork. Resource names are ignored.
func Parse(raw []byte) (*File, error) {
	if len(raw) < headerSize {
		return nil, headerError(len(raw), "truncated header")
	}
	be := binary.BigEndian
	dataOff := be.Uint32(raw[0:4])
	mapOff := be.Uint32(raw[4:8])
	dataLen := be.Uint32(raw[8:12])
	mapLen := be.Uint32(raw[12:16])

	if uint64(dataOff)+uint64(dataLen) > uint64(len(raw)) {
		return nil, headerError(len(raw), "data area [%d,+%d) past end", dataOff, dataLen)
	}
	if uint64(mapOff)+uint64(mapLen) > uint64(len(raw)) || mapLen < mapHeaderSize+2 {
		return nil, headerError(len(raw), "map [%d,+%d) invalid", mapOff, mapLen)
	}
	m := raw[mapOff : mapOff+mapLen]

	typeListOff := int(be.Uint16(m[24:26]))
	if typeListOff+2 > len(m) {
		return nil, headerError(len(raw), "type list offset %d past map", typeListOff)
	}
	typeList := m[typeListOff:]
	numTypes := int(int16(be.Uint16(typeList[0:2]))) + 1

	f := &File{
		data:    raw,
		dataOff: dataOff,
		entries: make(map[Ref]entry),
		remap:   make(map[uint32]uint32),
	}
	for i := 0; i < numTypes; i++ {
		pos := 2 + i*typeEntrySize
		if pos+typeEntrySize > len(typeList) {
			return nil, headerError(len(raw), "type list truncated at entry %d", i)
		}
		typ := be.Uint32(typeList[pos:])
		count := int(be.Uint16(typeList[pos+4:])) + 1
		refOff := int(be.Uint16(typeList[pos+6:]))

		for j := 0; j < count; j++ {
			rp := refOff + j*refEntrySize
			if rp+refEntrySize > len(typeList) {
				return nil, headerError(len(raw), "reference list of %s truncated", TypeString(typ))
			}
			ref := typeList[rp : rp+refEntrySize]
			id := int16(be.Uint16(ref[0:2]))
			off := be.Uint32(ref[4:8]) & 0x00FFFFFF
			f.entries[Ref{Type: typ, ID: id}] = entry{offset: off}
		}
	}
	return f, nil
}

// Remap makes Load and Enumerate treat resources of type from as type to.
func (f *File) Remap(from, to uint32) {
	f.remap[from] = to
}

// Enumerate returns every resource sorted by type, then id. Remapped types
// are reported under their target type.
func (f *File) Enumerate() []Ref {
	refs := make([]Ref, 0, len(f.entries))
	for r := range f.entries {
		if to, ok := f.remap[r.Type]; ok {
			r.Type = to
		}
		refs = append(refs, r)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Type != refs[j].Type {
			return refs[i].Type < refs[j].Type
		}
		return refs[i].ID < refs[j].ID
	})
	return refs
}

// lookup finds the entry a (possibly remapped) type and id refer to. The
// native type wins, then remapped source types in ascending order.
func (f *File) lookup(typ uint32, id int16) (entry, bool) {
	if e, ok := f.entries[Ref{Type: typ, ID: id}]; ok {
		return e, true
	}
	var sources []uint32
	for from, to := range f.remap {
		if to == typ {
			sources = append(sources, from)
		}
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	for _, from := range sources {
		if e, ok := f.entries[Ref{Type: from, ID: id}]; ok {
			return e, true
		}
	}
	return entry{}, false
}

// Load returns a copy of one resource's data. A missing or truncated entry
// is a *record.ResourceError.
func (f *File) Load(typ uint32, id int16) ([]byte, error) {
	e, ok := f.lookup(typ, id)
	if !ok {
		return nil, &record.ResourceError{Type: TypeString(typ), ID: int(id)}
	}
	start := uint64(f.dataOff) + uint64(e.offset)
	if start+dataLengthSize > uint64(len(f.data)) {
		return nil, &record.ResourceError{Type: TypeString(typ), ID: int(id), Err: fmt.Errorf("data offset %d past end", start)}
	}
	size := uint64(binary.BigEndian.Uint32(f.data[start:]))
	start += dataLengthSize
	if start+size > uint64(len(f.data)) {
		return nil, &record.ResourceError{Type: TypeString(typ), ID: int(id), Err: fmt.Errorf("data length %d past end", size)}
	}
	out := make([]byte, size)
	copy(out, f.data[start:start+size])
	return out, nil
}

// Len returns the number of resources.
func (f *File) Len() int {
	return len(f.entries)
}
