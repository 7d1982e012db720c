package progress

import (
	"encoding/json"
	"io"
	"sync"
)

// JSONLines is a Sink that writes each message as one JSON line.
// It is safe for concurrent use.
type JSONLines struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONLines returns a sink writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLines{enc: enc}
}

// Post implements Sink.
func (s *JSONLines) Post(msg any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(msg)
}

// Recorder is an in-memory Sink that keeps every posted message.
type Recorder struct {
	mu   sync.Mutex
	msgs []any
}

// Post implements Sink.
func (r *Recorder) Post(msg any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return nil
}

// Messages returns a copy of the posted messages.
func (r *Recorder) Messages() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.msgs...)
}

// Progress returns the text of each posted progress Message, in order.
func (r *Recorder) Progress() []string {
	var out []string
	for _, m := range r.Messages() {
		if pm, ok := m.(Message); ok && pm.Type == TypeProgress {
			out = append(out, pm.Message)
		}
	}
	return out
}
