package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReporter_PostsMessage(t *testing.T) {
	rec := &Recorder{}
	r := NewReporter(rec, Strict)
	if err := r.Report(Loading); err != nil {
		t.Fatalf("report: %v", err)
	}
	msgs := rec.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages", len(msgs))
	}
	if msgs[0] != (Message{Type: "progress", Message: "Loading image..."}) {
		t.Errorf("got %#v", msgs[0])
	}
}

func TestReporter_Policy(t *testing.T) {
	boom := errors.New("port closed")
	failing := SinkFunc(func(any) error { return boom })

	if err := NewReporter(failing, Strict).Report(Converting); !errors.Is(err, boom) {
		t.Errorf("strict: got %v", err)
	}
	if err := NewReporter(failing, BestEffort).Report(Converting); err != nil {
		t.Errorf("best-effort: got %v", err)
	}
	if err := NewReporter(nil, Strict).Report(Completed); !errors.Is(err, ErrNoSink) {
		t.Errorf("strict nil sink: got %v", err)
	}
	if err := NewReporter(nil, BestEffort).Report(Completed); err != nil {
		t.Errorf("best-effort nil sink: got %v", err)
	}
	var nilReporter *Reporter
	if err := nilReporter.Report(Completed); !errors.Is(err, ErrNoSink) {
		t.Errorf("nil reporter: got %v", err)
	}
}

func TestJSONLines(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONLines(&buf)
	r := NewReporter(s, Strict)
	for _, m := range []string{Loading, Converting, Completed} {
		if err := r.Report(m); err != nil {
			t.Fatal(err)
		}
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		`{"type":"progress","message":"Loading image..."}`,
		`{"type":"progress","message":"Converting to new format..."}`,
		`{"type":"progress","message":"Completed conversion."}`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %s, want %s", i, lines[i], want[i])
		}
	}
}
