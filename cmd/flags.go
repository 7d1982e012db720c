package cmd

import (
	"fmt"
	"strings"

	"github.com/AnyUserName/imgconv/internal/encoder"
	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/AnyUserName/imgconv/internal/preset"
	"github.com/AnyUserName/imgconv/internal/progress"
	"github.com/spf13/cobra"
)

// tuningFlags are shared by every command that encodes.
type tuningFlags struct {
	quality     int
	compression string
	filter      string
	preset      string
	ids         string
	policy      string
}

func (f *tuningFlags) register(c *cobra.Command) {
	c.Flags().IntVarP(&f.quality, "quality", "q", 0, "JPEG quality 0-100")
	c.Flags().StringVar(&f.compression, "compression", "", "PNG compression: fast, best, default")
	c.Flags().StringVar(&f.filter, "filter", "", "PNG filter: no_filter, sub, up, avg, paeth, adaptive")
	c.Flags().StringVarP(&f.preset, "preset", "p", "default", "tuning preset ("+strings.Join(preset.Names(), ", ")+")")
	c.Flags().StringVar(&f.ids, "ids", "short", "identifier table: short, mime, legacy")
	c.Flags().StringVar(&f.policy, "progress-policy", "strict", "progress delivery: strict, best-effort")
}

// tuning layers explicitly set flags over the preset. Unset flags carry
// no information.
func (f *tuningFlags) tuning(c *cobra.Command) (encoder.Tuning, preset.Preset) {
	var t encoder.Tuning
	if c.Flags().Changed("quality") {
		q := f.quality
		t.Quality = &q
	}
	if c.Flags().Changed("compression") {
		s := f.compression
		t.Compression = &s
	}
	if c.Flags().Changed("filter") {
		s := f.filter
		t.Filter = &s
	}
	p := preset.Get(f.preset)
	return p.Override(t), p
}

func (f *tuningFlags) resolver() (*format.Table, error) {
	t, ok := format.TableByName(f.ids)
	if !ok {
		return nil, fmt.Errorf("unknown identifier table %q (want short, mime or legacy)", f.ids)
	}
	return t, nil
}

func (f *tuningFlags) progressPolicy() (progress.Policy, error) {
	switch f.policy {
	case "strict":
		return progress.Strict, nil
	case "best-effort":
		return progress.BestEffort, nil
	}
	return 0, fmt.Errorf("unknown progress policy %q (want strict or best-effort)", f.policy)
}
