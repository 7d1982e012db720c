// Package encoder turns optional caller tuning into the concrete encoder
// configuration handed to the codec.
package encoder

import (
	"fmt"
	"sort"

	"github.com/AnyUserName/imgconv/internal/codec"
	"github.com/AnyUserName/imgconv/internal/format"
)

// Tuning is the optional caller input. Nil fields carry no information.
type Tuning struct {
	Quality     *int    `json:"quality,omitempty"`
	Compression *string `json:"compression,omitempty"`
	Filter      *string `json:"filter,omitempty"`
}

// Options is the resolved encoder configuration: exactly one of Jpeg, Png
// or None.
type Options interface {
	isOptions()
	String() string
}

// Jpeg encodes with an explicit quality.
type Jpeg struct {
	Quality int
}

// Png encodes with an explicit compression and filter pair.
type Png struct {
	Compression codec.Compression
	Filter      codec.Filter
}

// None uses the target format's default encoder.
type None struct{}

func (Jpeg) isOptions() {}
func (Png) isOptions()  {}
func (None) isOptions() {}

func (o Jpeg) String() string { return fmt.Sprintf("jpeg(quality=%d)", o.Quality) }
func (o Png) String() string {
	return fmt.Sprintf("png(compression=%s, filter=%s)", o.Compression, o.Filter)
}
func (None) String() string { return "default" }

var compressions = map[string]codec.Compression{
	"fast":    codec.CompressionFast,
	"best":    codec.CompressionBest,
	"default": codec.CompressionDefault,
}

var filters = map[string]codec.Filter{
	"no_filter": codec.FilterNone,
	"sub":       codec.FilterSub,
	"up":        codec.FilterUp,
	"avg":       codec.FilterAvg,
	"paeth":     codec.FilterPaeth,
	"adaptive":  codec.FilterAdaptive,
}

// ParseCompression maps a keyword to a Compression. Matching is exact.
func ParseCompression(s *string) (codec.Compression, bool) {
	if s == nil {
		return 0, false
	}
	c, ok := compressions[*s]
	return c, ok
}

// ParseFilter maps a keyword to a Filter. Matching is exact.
func ParseFilter(s *string) (codec.Filter, bool) {
	if s == nil {
		return 0, false
	}
	f, ok := filters[*s]
	return f, ok
}

// Resolve picks the encoder configuration for target. It never fails:
// missing, partial or unrecognized tuning resolves to None.
func Resolve(target format.Format, t Tuning) Options {
	switch target {
	case format.Jpeg:
		if t.Quality != nil {
			return Jpeg{Quality: *t.Quality}
		}
	case format.Png:
		c, okC := ParseCompression(t.Compression)
		f, okF := ParseFilter(t.Filter)
		if okC && okF {
			return Png{Compression: c, Filter: f}
		}
	}
	return None{}
}

// Keywords lists the accepted compression and filter keywords, sorted.
func Keywords() (compression, filter []string) {
	for k := range compressions {
		compression = append(compression, k)
	}
	for k := range filters {
		filter = append(filter, k)
	}
	sort.Strings(compression)
	sort.Strings(filter)
	return compression, filter
}
