package tiles

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Resource types that tile images are exported from.
const (
	TypePICT = "PICT"
	TypeCICN = "cicn"
)

// Key identifies one exported resource image.
type Key struct {
	Type string
	ID   int
}

// extRank orders image formats when several exports share a key. Lower wins.
var extRank = map[string]int{
	".png":  0,
	".bmp":  1,
	".tga":  2,
	".webp": 3,
	".jpg":  4,
	".jpeg": 4,
}

// Index maps (type, id) to image files named "<anything>_<TYPE>_<id>.<ext>".
type Index struct {
	entries map[Key]string
}

// parseName extracts the resource key from an exported file name.
func parseName(name string) (Key, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := extRank[ext]; !ok {
		return Key{}, false
	}
	parts := strings.Split(strings.TrimSuffix(name, filepath.Ext(name)), "_")
	if len(parts) < 2 {
		return Key{}, false
	}
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Key{}, false
	}
	switch typ := parts[len(parts)-2]; {
	case strings.EqualFold(typ, TypePICT):
		return Key{Type: TypePICT, ID: id}, true
	case strings.EqualFold(typ, TypeCICN):
		return Key{Type: TypeCICN, ID: id}, true
	}
	return Key{}, false
}

// BuildIndex scans dir and its subdirectories for exported tile images.
// An empty or missing dir yields an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[Key]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		key, ok := parseName(d.Name())
		if !ok {
			return nil
		}
		existing, exists := idx.entries[key]
		if !exists || extRank[strings.ToLower(filepath.Ext(path))] < extRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[key] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the file for a resource, or ("", false).
func (idx *Index) ResolvePath(typ string, id int) (string, bool) {
	if idx == nil {
		return "", false
	}
	path, ok := idx.entries[Key{Type: typ, ID: id}]
	return path, ok
}

// IDs returns the indexed ids of one resource type in ascending order.
func (idx *Index) IDs(typ string) []int {
	if idx == nil {
		return nil
	}
	var ids []int
	for k := range idx.entries {
		if k.Type == typ {
			ids = append(ids, k.ID)
		}
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}
