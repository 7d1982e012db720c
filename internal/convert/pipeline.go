// Package convert runs the decode → encode conversion and translates its
// failures into caller-visible messages.
package convert

import (
	"fmt"

	"github.com/AnyUserName/imgconv/internal/codec"
	"github.com/AnyUserName/imgconv/internal/encoder"
	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/AnyUserName/imgconv/internal/progress"
)

// Pipeline performs exactly one decode and one encode per call. It keeps
// no state between calls and is safe for concurrent use when its codec
// and sink are.
type Pipeline struct {
	codec    codec.ImageCodec
	reporter *progress.Reporter
}

// NewPipeline returns a Pipeline using c and reporting through r.
func NewPipeline(c codec.ImageCodec, r *progress.Reporter) *Pipeline {
	return &Pipeline{codec: c, reporter: r}
}

// Convert decodes data (sniffing when input is format.Unspecified) and
// re-encodes it as target under opts.
func (p *Pipeline) Convert(data []byte, input, target format.Format, opts encoder.Options) ([]byte, error) {
	if err := p.reporter.Report(progress.Loading); err != nil {
		return nil, wrap(KindProgress, fmt.Errorf("progress sink: %w", err))
	}
	buf, err := p.codec.Decode(data, input)
	if err != nil {
		return nil, wrap(KindDecode, err)
	}

	if err := p.reporter.Report(progress.Converting); err != nil {
		return nil, wrap(KindProgress, fmt.Errorf("progress sink: %w", err))
	}
	var out []byte
	switch o := opts.(type) {
	case encoder.Jpeg:
		out, err = p.codec.EncodeJPEG(buf, o.Quality)
	case encoder.Png:
		out, err = p.codec.EncodePNG(buf.Bytes(), buf.Width(), buf.Height(), buf.ColorType(), o.Compression, o.Filter)
	default:
		out, err = p.codec.EncodeDefault(buf, target)
	}
	if err != nil {
		return nil, wrap(KindEncode, err)
	}

	if err := p.reporter.Report(progress.Completed); err != nil {
		return nil, wrap(KindProgress, fmt.Errorf("progress sink: %w", err))
	}
	return out, nil
}
