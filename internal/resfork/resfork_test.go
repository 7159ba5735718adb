package resfork

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realmz-dasm/internal/record"
)

type fixture struct {
	typ  string
	id   int16
	data []byte
}

// buildFork lays out a minimal resource fork: header, data area, map.
func buildFork(t *testing.T, items []fixture) []byte {
	t.Helper()
	be := binary.BigEndian

	var data []byte
	offsets := make([]uint32, len(items))
	for i, it := range items {
		offsets[i] = uint32(len(data))
		data = be.AppendUint32(data, uint32(len(it.data)))
		data = append(data, it.data...)
	}

	// group by type, preserving first-seen order
	var types []string
	byType := map[string][]int{}
	for i, it := range items {
		if _, ok := byType[it.typ]; !ok {
			types = append(types, it.typ)
		}
		byType[it.typ] = append(byType[it.typ], i)
	}

	typeList := be.AppendUint16(nil, uint16(len(types)-1))
	refOff := 2 + len(types)*typeEntrySize
	var refs []byte
	for _, typ := range types {
		code, err := ParseType(typ)
		require.NoError(t, err)
		typeList = be.AppendUint32(typeList, code)
		typeList = be.AppendUint16(typeList, uint16(len(byType[typ])-1))
		typeList = be.AppendUint16(typeList, uint16(refOff+len(refs)))
		for _, i := range byType[typ] {
			refs = be.AppendUint16(refs, uint16(items[i].id))
			refs = be.AppendUint16(refs, 0xFFFF)
			refs = be.AppendUint32(refs, offsets[i])
			refs = be.AppendUint32(refs, 0)
		}
	}
	typeList = append(typeList, refs...)

	m := make([]byte, mapHeaderSize)
	be.PutUint16(m[24:], mapHeaderSize)
	be.PutUint16(m[26:], uint16(mapHeaderSize+len(typeList)))
	m = append(m, typeList...)

	out := make([]byte, headerSize)
	be.PutUint32(out[0:], headerSize)
	be.PutUint32(out[4:], uint32(headerSize+len(data)))
	be.PutUint32(out[8:], uint32(len(data)))
	be.PutUint32(out[12:], uint32(len(m)))
	out = append(out, data...)
	return append(out, m...)
}

func sampleFork(t *testing.T) []byte {
	return buildFork(t, []fixture{
		{"TEXT", 128, []byte("line one\rline two")},
		{"PICT", 300, []byte{1, 2, 3}},
		{"TEXT", -5, []byte("neg")},
		{"STR#", 1, []byte{0, 2, 2, 'h', 'i', 3, 'y', 'o', 'u'}},
	})
}

// ---- Types ----

func TestTypeString(t *testing.T) {
	assert.Equal(t, "TEXT", TypeString(TypeTEXT))
	assert.Equal(t, "STR#", TypeString(TypeSTRN))
	assert.Equal(t, "a_b_", TypeString(0x612F6200))
}

func TestParseType(t *testing.T) {
	v, err := ParseType("STR")
	require.NoError(t, err)
	assert.Equal(t, TypeSTR, v)
	assert.Equal(t, uint32(0x6369636E), TypeCICN)

	_, err = ParseType("")
	assert.Error(t, err)
	_, err = ParseType("TOOLONG")
	assert.Error(t, err)
}

// ---- Parse / Load ----

func TestParse_EnumerateSorted(t *testing.T) {
	f, err := Parse(sampleFork(t))
	require.NoError(t, err)
	assert.Equal(t, 4, f.Len())

	refs := f.Enumerate()
	require.Len(t, refs, 4)
	assert.Equal(t, Ref{Type: TypePICT, ID: 300}, refs[0])
	assert.Equal(t, Ref{Type: TypeSTRN, ID: 1}, refs[1])
	assert.Equal(t, Ref{Type: TypeTEXT, ID: -5}, refs[2])
	assert.Equal(t, Ref{Type: TypeTEXT, ID: 128}, refs[3])
	assert.Equal(t, "TEXT:128", refs[3].String())
}

func TestLoad(t *testing.T) {
	f, err := Parse(sampleFork(t))
	require.NoError(t, err)

	data, err := f.Load(TypePICT, 300)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	data, err = f.Load(TypeTEXT, -5)
	require.NoError(t, err)
	assert.Equal(t, "neg", string(data))
}

func TestLoad_Missing(t *testing.T) {
	f, err := Parse(sampleFork(t))
	require.NoError(t, err)

	_, err = f.Load(TypePICT, 301)
	var re *record.ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "PICT", re.Type)
	assert.Equal(t, 301, re.ID)
}

func TestLoad_TruncatedData(t *testing.T) {
	raw := sampleFork(t)
	// claim a huge length for the first resource
	binary.BigEndian.PutUint32(raw[headerSize:], 1<<20)
	f, err := Parse(raw)
	require.NoError(t, err)

	_, err = f.Load(TypeTEXT, 128)
	var re *record.ResourceError
	require.True(t, errors.As(err, &re))
	assert.Error(t, re.Err)
}

func TestRemap(t *testing.T) {
	f, err := Parse(sampleFork(t))
	require.NoError(t, err)
	f.Remap(TypePICT, TypeCICN)

	data, err := f.Load(TypeCICN, 300)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.Equal(t, Ref{Type: TypeCICN, ID: 300}, f.Enumerate()[3])
}

func TestRemap_SeveralSourcesLowestTypeWins(t *testing.T) {
	f, err := Parse(buildFork(t, []fixture{
		{typ: "BBBB", id: 1, data: []byte{2}},
		{typ: "AAAA", id: 1, data: []byte{1}},
	}))
	require.NoError(t, err)
	target := MustParseType("ZZZZ")
	f.Remap(MustParseType("BBBB"), target)
	f.Remap(MustParseType("AAAA"), target)

	for i := 0; i < 32; i++ {
		data, err := f.Load(target, 1)
		require.NoError(t, err)
		assert.Equal(t, []byte{1}, data)
	}
}

func TestParse_BadHeader(t *testing.T) {
	_, err := Parse([]byte{1, 2, 3})
	var fe *record.FormatError
	require.True(t, errors.As(err, &fe))

	raw := sampleFork(t)
	binary.BigEndian.PutUint32(raw[4:], 1<<30)
	_, err = Parse(raw)
	assert.True(t, errors.As(err, &fe))
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.rsf")
	require.NoError(t, os.WriteFile(path, sampleFork(t), 0o644))
	f, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)

	_, err = Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

// ---- Text ----

func TestDecodeText(t *testing.T) {
	assert.Equal(t, "café\nok", DecodeText([]byte{'c', 'a', 'f', 0x8E, '\r', 'o', 'k'}))
}

func TestDecodeString(t *testing.T) {
	s, rest := DecodeString([]byte{3, 'a', 'b', 'c', 9, 9})
	assert.Equal(t, "abc", s)
	assert.Equal(t, []byte{9, 9}, rest)

	s, rest = DecodeString([]byte{10, 'a'})
	assert.Equal(t, "a", s)
	assert.Empty(t, rest)
}

func TestDecodeStringList(t *testing.T) {
	f, err := Parse(sampleFork(t))
	require.NoError(t, err)
	data, err := f.Load(TypeSTRN, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi", "you"}, DecodeStringList(data))

	assert.Equal(t, []string{"ab"}, DecodeStringList([]byte{0, 5, 4, 'a', 'b'}))
	assert.Nil(t, DecodeStringList([]byte{0}))
}
