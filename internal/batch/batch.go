// Package batch converts every image under a directory to one target format.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/AnyUserName/imgconv/internal/codec"
	"github.com/AnyUserName/imgconv/internal/convert"
	"github.com/AnyUserName/imgconv/internal/encoder"
	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/AnyUserName/imgconv/internal/hasher"
	"github.com/AnyUserName/imgconv/internal/manifest"
	"github.com/AnyUserName/imgconv/internal/progress"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Target    format.Format
	Tuning    encoder.Tuning
	Preset    string
	Workers   int
	Verbose   bool
	// Codec defaults to codec.New().
	Codec codec.ImageCodec
}

// Batch converts a directory tree.
type Batch struct {
	cfg      Config
	opts     encoder.Options
	pipeline *convert.Pipeline
}

// New creates a configured batch. Progress messages are discarded.
func New(cfg Config) *Batch {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Codec == nil {
		cfg.Codec = codec.New()
	}
	reporter := progress.NewReporter(progress.Discard, progress.BestEffort)
	return &Batch{
		cfg:      cfg,
		opts:     encoder.Resolve(cfg.Target, cfg.Tuning),
		pipeline: convert.NewPipeline(cfg.Codec, reporter),
	}
}

type result struct {
	key   string
	entry manifest.Entry
	err   error
}

// Run converts every source and returns the manifest. It fails only when
// nothing could be converted.
func (b *Batch) Run() (*manifest.Manifest, error) {
	sources, err := ScanImages(b.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", b.cfg.InputDir)
	}
	b.logf("found %d images, target %s, options %s", len(sources), b.cfg.Target, b.opts)

	results := make([]result, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, b.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			defer func() {
				if p := recover(); p != nil {
					results[idx] = result{key: s.Key, err: fmt.Errorf("convert %s: panic: %v", s.RelPath, p)}
				}
			}()

			b.logf("converting: %s", s.RelPath)
			results[idx] = b.convertOne(s)
			if results[idx].err == nil {
				b.logf("done: %s -> %s", s.RelPath, results[idx].entry.Output)
			}
		}(i, src)
	}
	wg.Wait()

	m := manifest.New(b.cfg.Target.String())
	m.Preset = b.cfg.Preset
	m.BuildInfo = &manifest.BuildInfo{Workers: b.cfg.Workers, Options: b.opts.String()}
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "[imgconv] error: %s: %v\n", r.key, r.err)
			if m.Failures == nil {
				m.Failures = make(map[string]string)
			}
			m.Failures[r.key] = r.err.Error()
			continue
		}
		m.Entries[r.key] = r.entry
	}
	if len(m.Failures) == len(sources) {
		return nil, fmt.Errorf("all %d images failed to convert", len(sources))
	}
	if len(m.Failures) > 0 {
		fmt.Fprintf(os.Stderr, "[imgconv] warning: %d of %d images had errors\n",
			len(m.Failures), len(sources))
	}
	m.ComputeStats()
	return m, nil
}

func (b *Batch) convertOne(s Source) result {
	r := result{key: s.Key}
	data, err := os.ReadFile(s.AbsPath)
	if err != nil {
		r.err = fmt.Errorf("read %s: %w", s.RelPath, err)
		return r
	}
	out, err := b.pipeline.Convert(data, s.Format, b.cfg.Target, b.opts)
	if err != nil {
		r.err = err
		return r
	}

	hash := hasher.ContentHash(out, 16)
	rel := filepath.ToSlash(fmt.Sprintf("%s.%s.%s", s.Key, hash[:8], b.cfg.Target.Extension()))
	outPath := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		r.err = fmt.Errorf("create dir for %s: %w", rel, err)
		return r
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		r.err = fmt.Errorf("write %s: %w", rel, err)
		return r
	}
	r.entry = manifest.Entry{
		Source:     s.RelPath,
		SourceSize: s.Size,
		Output:     rel,
		Size:       int64(len(out)),
		Hash:       hash,
	}
	return r
}

func (b *Batch) logf(msg string, args ...any) {
	if b.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[imgconv] "+msg+"\n", args...)
	}
}
