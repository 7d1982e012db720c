package convert

import (
	"github.com/AnyUserName/imgconv/internal/codec"
	"github.com/AnyUserName/imgconv/internal/encoder"
	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/AnyUserName/imgconv/internal/progress"
)

// Config holds the collaborators of an Engine.
type Config struct {
	// Codec defaults to codec.New().
	Codec codec.ImageCodec
	// Identifiers resolves identifiers for Convert; defaults to
	// format.ShortNames.
	Identifiers format.Resolver
	// Sink receives progress messages. Nil is only usable with BestEffort.
	Sink   progress.Sink
	Policy progress.Policy
}

// Engine exposes the minimal and full conversion calls.
type Engine struct {
	ids      format.Resolver
	pipeline *Pipeline
}

// NewEngine builds an Engine from cfg.
func NewEngine(cfg Config) *Engine {
	if cfg.Codec == nil {
		cfg.Codec = codec.New()
	}
	if cfg.Identifiers == nil {
		cfg.Identifiers = format.ShortNames
	}
	return &Engine{
		ids:      cfg.Identifiers,
		pipeline: NewPipeline(cfg.Codec, progress.NewReporter(cfg.Sink, cfg.Policy)),
	}
}

// ConvertMinimal sniffs the input and encodes it as outputID, resolved
// through the legacy short-name table, with default settings.
func (e *Engine) ConvertMinimal(data []byte, outputID string) ([]byte, error) {
	target, err := format.Legacy.Resolve(outputID)
	if err != nil {
		return nil, unsupported(SideOutput, outputID, err)
	}
	return e.pipeline.Convert(data, format.Unspecified, target, encoder.None{})
}

// Convert resolves both identifiers and the tuning, then converts. An
// empty inputID sniffs the input format from data.
func (e *Engine) Convert(data []byte, inputID, outputID string, tuning encoder.Tuning) ([]byte, error) {
	input := format.Unspecified
	if inputID != "" {
		f, err := e.ids.Resolve(inputID)
		if err != nil {
			return nil, unsupported(SideInput, inputID, err)
		}
		input = f
	}
	target, err := e.ids.Resolve(outputID)
	if err != nil {
		return nil, unsupported(SideOutput, outputID, err)
	}
	return e.pipeline.Convert(data, input, target, encoder.Resolve(target, tuning))
}

// Target resolves outputID with the engine's identifier table.
func (e *Engine) Target(outputID string) (format.Format, error) {
	f, err := e.ids.Resolve(outputID)
	if err != nil {
		return 0, unsupported(SideOutput, outputID, err)
	}
	return f, nil
}
