package manifest

// Manifest is the report written by a batch conversion.
type Manifest struct {
	Version     int               `json:"version"`
	GeneratedAt string            `json:"generated_at"`
	Target      string            `json:"target"`
	Preset      string            `json:"preset,omitempty"`
	BuildInfo   *BuildInfo        `json:"build_info,omitempty"`
	Entries     map[string]Entry  `json:"entries"`
	Failures    map[string]string `json:"failures,omitempty"`
	Stats       Stats             `json:"stats"`
}

// BuildInfo captures run parameters for diagnostics.
type BuildInfo struct {
	Workers int    `json:"workers"`
	Options string `json:"options"` // resolved encoder options
}

// Entry describes one converted source file.
type Entry struct {
	Source     string `json:"source"`      // relative to the input directory
	SourceSize int64  `json:"source_size"` // bytes
	Output     string `json:"output"`      // relative to the output directory
	Size       int64  `json:"size"`
	Hash       string `json:"hash"` // 16 hex chars of xxhash64
}

// Stats aggregates batch metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	Converted        int   `json:"converted"`
	Failed           int   `json:"failed,omitempty"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
