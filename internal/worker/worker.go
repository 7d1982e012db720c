// Package worker runs the host message loop: JSON-line requests in,
// ready/progress/done/error messages out.
package worker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/AnyUserName/imgconv/internal/codec"
	"github.com/AnyUserName/imgconv/internal/convert"
	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/AnyUserName/imgconv/internal/hasher"
	"github.com/AnyUserName/imgconv/internal/progress"
)

// MaxRequestBytes bounds a single request line.
const MaxRequestBytes = 256 << 20

// Config holds the worker's engine settings.
type Config struct {
	Identifiers format.Resolver
	Policy      progress.Policy
	Codec       codec.ImageCodec
}

// Worker handles requests one at a time, in arrival order.
type Worker struct {
	sink   progress.Sink
	engine *convert.Engine
}

// New returns a Worker that posts every message to sink.
func New(sink progress.Sink, cfg Config) *Worker {
	return &Worker{
		sink: sink,
		engine: convert.NewEngine(convert.Config{
			Codec:       cfg.Codec,
			Identifiers: cfg.Identifiers,
			Sink:        sink,
			Policy:      cfg.Policy,
		}),
	}
}

// Run posts ready, then serves requests from r until EOF. It returns an
// error only when reading r or posting to the sink fails.
func (w *Worker) Run(r io.Reader) error {
	if err := w.sink.Post(Ready{Type: TypeReady}); err != nil {
		return fmt.Errorf("post ready: %w", err)
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), MaxRequestBytes)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := w.sink.Post(w.Handle(line)); err != nil {
			return fmt.Errorf("post reply: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read requests: %w", err)
	}
	return nil
}

// Handle serves one raw request and returns the final reply (Done or
// Failure). Progress messages are posted while it runs.
func (w *Worker) Handle(line []byte) (reply any) {
	defer func() {
		if p := recover(); p != nil {
			reply = Failure{Type: TypeError, Message: fmt.Sprintf("Unexpected exception: %v", p)}
		}
	}()

	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Failure{Type: TypeError, Message: fmt.Sprintf("Malformed request: %v", err)}
	}
	out, err := w.engine.Convert(req.ImageData, req.InputType, req.OutputType, req.Options)
	if err != nil {
		return Failure{Type: TypeError, Message: err.Error()}
	}
	return Done{
		Type:       TypeDone,
		ImageData:  out,
		FileName:   req.FileName,
		OutputType: req.OutputType,
		Digest:     hasher.ContentHash(out, 0),
	}
}
