package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestManifestRoundtrip(t *testing.T) {
	m := New("webp")
	m.BuildInfo = &BuildInfo{Workers: 4, Options: "default"}
	m.Entries["photos/cat"] = Entry{
		Source: "photos/cat.png", SourceSize: 1000,
		Output: "photos/cat.abcd1234.webp", Size: 400,
		Hash: "abcd1234abcd1234",
	}
	m.Failures = map[string]string{"broken": "Image processing error: bad data"}

	dir := t.TempDir()
	path := filepath.Join(dir, "imgconv.manifest.json")
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var m2 Manifest
	if err := json.Unmarshal(data, &m2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Target != "webp" {
		t.Errorf("target: got %q", m2.Target)
	}
	if m2.BuildInfo == nil || m2.BuildInfo.Workers != 4 {
		t.Fatal("build_info missing")
	}
	e, ok := m2.Entries["photos/cat"]
	if !ok {
		t.Fatal("entry photos/cat missing")
	}
	if e.Output != "photos/cat.abcd1234.webp" || e.Size != 400 {
		t.Errorf("entry: %+v", e)
	}
	if m2.Stats.Converted != 1 || m2.Stats.Failed != 1 {
		t.Errorf("stats: %+v", m2.Stats)
	}
	if m2.Stats.TotalInputBytes != 1000 || m2.Stats.TotalOutputBytes != 400 {
		t.Errorf("byte totals: %+v", m2.Stats)
	}
}

func TestManifestIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2025-01-01T00:00:00Z",
		"target": "png",
		"future_field": "should be ignored",
		"build_info": { "workers": 8, "options": "default", "new_flag": true },
		"entries": {},
		"stats": { "total_input_bytes": 0, "total_output_bytes": 0, "converted": 0, "new_stat": 42 }
	}`

	var m Manifest
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if m.Version != 1 || m.Target != "png" {
		t.Errorf("got %+v", m)
	}
	if m.BuildInfo == nil || m.BuildInfo.Workers != 8 {
		t.Error("build_info not parsed correctly")
	}
}
