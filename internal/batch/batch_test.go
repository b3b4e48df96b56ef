package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"softrender/internal/framebuf"
	"softrender/internal/present"
)

func TestWriterWritesNumberedFrames(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(Config{Path: filepath.Join(dir, "spin.png"), Workers: 2})
	if err != nil {
		t.Fatal(err)
	}

	cb := framebuf.NewColor(4, 3)
	for i := 0; i < 5; i++ {
		cb.Draw(i%4, 0, framebuf.Green)
		if err := w.Present(cb.Data(), 4, 3); err != nil {
			t.Fatalf("Present %d: %v", i, err)
		}
	}
	results, err := w.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
	for i, r := range results {
		if r.Frame != i {
			t.Errorf("results[%d].Frame = %d", i, r.Frame)
		}
		if want := present.FramePath(filepath.Join(dir, "spin.png"), i); r.Path != want {
			t.Errorf("results[%d].Path = %q, want %q", i, r.Path, want)
		}
		if _, err := os.Stat(r.Path); err != nil {
			t.Errorf("frame %d missing: %v", i, err)
		}
	}

	if err := w.Present(cb.Data(), 4, 3); err == nil {
		t.Error("Present after Close succeeded")
	}

	manifest := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(manifest, results); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 || entries[2].Image != "spin_0002.png" || entries[2].Error != "" {
		t.Errorf("unexpected manifest %+v", entries)
	}
}

func TestNewWriterRejectsUnknownFormat(t *testing.T) {
	if _, err := NewWriter(Config{Path: "out.gif"}); err == nil {
		t.Error("expected an error for .gif output")
	}
}
