package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one output in the manifest.
type ManifestEntry struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	File    string `json:"file,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// WriteManifest writes the run results as JSON. File paths are made relative
// to the manifest's directory when possible.
func WriteManifest(path string, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, res := range results {
		file := res.Path
		if rel, err := filepath.Rel(base, res.Path); err == nil && res.Path != "" {
			file = filepath.ToSlash(rel)
		}
		entries[i] = ManifestEntry{
			Name:    res.Name,
			Kind:    res.Kind,
			File:    file,
			Success: res.Success,
			Error:   res.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
