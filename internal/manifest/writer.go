package manifest

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty manifest for a batch targeting target.
func New(target string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Target:      target,
		Entries:     make(map[string]Entry),
	}
}

// ComputeStats recalculates aggregate statistics from entries.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.Converted = len(m.Entries)
	s.Failed = len(m.Failures)
	for _, e := range m.Entries {
		s.TotalInputBytes += e.SourceSize
		s.TotalOutputBytes += e.Size
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
