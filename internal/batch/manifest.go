package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry describes one written frame.
type ManifestEntry struct {
	Frame int    `json:"frame"`
	Image string `json:"image"`
	Error string `json:"error,omitempty"`
}

// WriteManifest writes a JSON index of results to path. Image paths are
// stored relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		img := r.Path
		if rel, err := filepath.Rel(dir, r.Path); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries[i] = ManifestEntry{Frame: r.Frame, Image: img}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}
