package preset

import (
	"sort"

	"github.com/AnyUserName/imgconv/internal/encoder"
)

// Preset is a named bundle of encoder tuning.
type Preset struct {
	Name        string
	Description string
	Tuning      encoder.Tuning
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

// Built-in presets. "default" carries no tuning at all.
var presets = map[string]Preset{
	"default": {
		Name:        "default",
		Description: "encoder defaults for every format",
	},
	"web": {
		Name:        "web",
		Description: "JPEG q82, PNG best/adaptive",
		Tuning: encoder.Tuning{
			Quality:     intp(82),
			Compression: strp("best"),
			Filter:      strp("adaptive"),
		},
	},
	"fast": {
		Name:        "fast",
		Description: "JPEG q75, PNG fast/no_filter",
		Tuning: encoder.Tuning{
			Quality:     intp(75),
			Compression: strp("fast"),
			Filter:      strp("no_filter"),
		},
	},
	"archive": {
		Name:        "archive",
		Description: "JPEG q95, PNG best/paeth",
		Tuning: encoder.Tuning{
			Quality:     intp(95),
			Compression: strp("best"),
			Filter:      strp("paeth"),
		},
	},
}

// Get returns a preset by name. Unknown names fall back to "default",
// keeping the requested name.
func Get(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	p := presets["default"]
	p.Name = name
	return p
}

// Names returns the built-in preset names, sorted.
func Names() []string {
	var out []string
	for n := range presets {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Override layers the set fields of t over the preset's tuning.
func (p Preset) Override(t encoder.Tuning) encoder.Tuning {
	out := p.Tuning
	if t.Quality != nil {
		out.Quality = t.Quality
	}
	if t.Compression != nil {
		out.Compression = t.Compression
	}
	if t.Filter != nil {
		out.Filter = t.Filter
	}
	return out
}
