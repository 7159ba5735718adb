package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Canonical scenario data file names. On disk they appear in several
// spellings ("data_dl", "Data DL", "DATA DL").
const (
	FileDungeonMaps       = "data_dl"
	FileLandMaps          = "data_ld"
	FileStrings           = "data_sd2"
	FileEcodes            = "data_edcd"
	FileLandAPs           = "data_dd"
	FileDungeonAPs        = "data_ddd"
	FileExtraAPs          = "data_ed3"
	FileLandMetadata      = "data_rd"
	FileDungeonMetadata   = "data_rdd"
	FileSimpleEncounters  = "data_ed"
	FileComplexEncounters = "data_ed2"
	FileTreasures         = "data_td"
	FileRogueEncounters   = "data_td2"
	FileTimeEncounters    = "data_td3"
	FileGlobal            = "global"
	FileLayout            = "layout"
	FileResources         = "scenario.rsf"
)

// TilesetFile returns the canonical name of custom tileset n (1..3).
func TilesetFile(n int) string {
	return fmt.Sprintf("data_custom_%d_bd", n)
}

// FileIndex maps normalized file names in one directory to their paths.
type FileIndex struct {
	entries map[string]string
}

// normalizeName lowercases and turns spaces into underscores.
func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// IndexDir scans dir (not recursively) for regular files.
func IndexDir(dir string) (*FileIndex, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	idx := &FileIndex{entries: make(map[string]string, len(entries))}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		key := normalizeName(e.Name())
		if _, dup := idx.entries[key]; dup {
			continue
		}
		idx.entries[key] = filepath.Join(dir, e.Name())
	}
	return idx, nil
}

// Find resolves a canonical name to the file present on disk.
func (idx *FileIndex) Find(name string) (string, bool) {
	p, ok := idx.entries[normalizeName(name)]
	return p, ok
}

// Len returns the number of indexed files.
func (idx *FileIndex) Len() int {
	return len(idx.entries)
}
