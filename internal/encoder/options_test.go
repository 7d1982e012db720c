package encoder

import (
	"testing"

	"github.com/AnyUserName/imgconv/internal/codec"
	"github.com/AnyUserName/imgconv/internal/format"
)

func ptr[T any](v T) *T { return &v }

func TestResolve_Jpeg(t *testing.T) {
	got := Resolve(format.Jpeg, Tuning{Quality: ptr(42)})
	if got != (Jpeg{Quality: 42}) {
		t.Errorf("got %v", got)
	}
	if got := Resolve(format.Jpeg, Tuning{}); got != (None{}) {
		t.Errorf("no quality: got %v", got)
	}
	// PNG knobs mean nothing for JPEG.
	got = Resolve(format.Jpeg, Tuning{Compression: ptr("best"), Filter: ptr("sub")})
	if got != (None{}) {
		t.Errorf("png knobs on jpeg: got %v", got)
	}
}

func TestResolve_Png(t *testing.T) {
	cases := []struct {
		name string
		in   Tuning
		want Options
	}{
		{"both", Tuning{Compression: ptr("best"), Filter: ptr("paeth")},
			Png{Compression: codec.CompressionBest, Filter: codec.FilterPaeth}},
		{"fast no_filter", Tuning{Compression: ptr("fast"), Filter: ptr("no_filter")},
			Png{Compression: codec.CompressionFast, Filter: codec.FilterNone}},
		{"default adaptive", Tuning{Compression: ptr("default"), Filter: ptr("adaptive")},
			Png{Compression: codec.CompressionDefault, Filter: codec.FilterAdaptive}},
		{"compression only", Tuning{Compression: ptr("best")}, None{}},
		{"filter only", Tuning{Filter: ptr("up")}, None{}},
		{"unknown compression", Tuning{Compression: ptr("ultra"), Filter: ptr("up")}, None{}},
		{"unknown filter", Tuning{Compression: ptr("fast"), Filter: ptr("median")}, None{}},
		{"case matters", Tuning{Compression: ptr("BEST"), Filter: ptr("up")}, None{}},
		{"quality ignored", Tuning{Quality: ptr(90)}, None{}},
		{"empty", Tuning{}, None{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(format.Png, tc.in); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolve_OtherFormatsAlwaysDefault(t *testing.T) {
	full := Tuning{Quality: ptr(80), Compression: ptr("best"), Filter: ptr("sub")}
	for _, f := range format.All {
		if f == format.Jpeg || f == format.Png {
			continue
		}
		if got := Resolve(f, full); got != (None{}) {
			t.Errorf("%s: got %v", f, got)
		}
	}
}

func TestResolve_Total(t *testing.T) {
	qualities := []*int{nil, ptr(-1), ptr(0), ptr(100), ptr(1000)}
	words := []*string{nil, ptr(""), ptr("best"), ptr("sub"), ptr("nonsense")}
	for _, f := range append(format.All, format.Unspecified) {
		for _, q := range qualities {
			for _, c := range words {
				for _, fl := range words {
					tuning := Tuning{Quality: q, Compression: c, Filter: fl}
					a, b := Resolve(f, tuning), Resolve(f, tuning)
					if a == nil || a != b {
						t.Fatalf("%s %+v: %v vs %v", f, tuning, a, b)
					}
				}
			}
		}
	}
}

func TestKeywords(t *testing.T) {
	c, f := Keywords()
	if len(c) != 3 || len(f) != 6 {
		t.Fatalf("got %v, %v", c, f)
	}
	if c[0] != "best" || f[0] != "adaptive" {
		t.Errorf("not sorted: %v, %v", c, f)
	}
}
