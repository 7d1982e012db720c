package preset

import (
	"testing"

	"github.com/AnyUserName/imgconv/internal/encoder"
	"github.com/AnyUserName/imgconv/internal/format"
)

func TestGet_Fallback(t *testing.T) {
	p := Get("nonexistent")
	if p.Name != "nonexistent" {
		t.Errorf("name: got %q", p.Name)
	}
	if p.Tuning != (encoder.Tuning{}) {
		t.Errorf("fallback tuning not empty: %+v", p.Tuning)
	}
}

func TestPresets_ResolveToExplicitOptions(t *testing.T) {
	for _, name := range Names() {
		if name == "default" {
			continue
		}
		p := Get(name)
		if _, ok := encoder.Resolve(format.Png, p.Tuning).(encoder.Png); !ok {
			t.Errorf("%s: png tuning did not resolve", name)
		}
		if _, ok := encoder.Resolve(format.Jpeg, p.Tuning).(encoder.Jpeg); !ok {
			t.Errorf("%s: jpeg tuning did not resolve", name)
		}
	}
}

func TestOverride(t *testing.T) {
	q := 40
	got := Get("web").Override(encoder.Tuning{Quality: &q})
	if *got.Quality != 40 {
		t.Errorf("quality: got %d", *got.Quality)
	}
	if *got.Compression != "best" || *got.Filter != "adaptive" {
		t.Errorf("png knobs lost: %+v", got)
	}
	if *Get("web").Tuning.Quality != 82 {
		t.Error("override mutated the preset")
	}
}
