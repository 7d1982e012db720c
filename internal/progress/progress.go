// Package progress delivers one-way progress notifications to an external
// message sink.
package progress

import (
	"errors"
	"fmt"
)

// Phase messages, emitted in this order by a successful conversion.
const (
	Loading    = "Loading image..."
	Converting = "Converting to new format..."
	Completed  = "Completed conversion."
)

// TypeProgress is the message type of progress notifications.
const TypeProgress = "progress"

// Message is the structured notification posted to a Sink.
type Message struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Sink receives posted messages. Post must not retain msg after returning.
type Sink interface {
	Post(msg any) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(msg any) error

func (f SinkFunc) Post(msg any) error { return f(msg) }

// Discard accepts and drops every message.
var Discard Sink = SinkFunc(func(any) error { return nil })

// ErrNoSink is returned by a strict Reporter that has no sink.
var ErrNoSink = errors.New("no progress sink")

// Policy decides what a failed delivery means for the conversion.
type Policy int

const (
	// Strict makes a delivery failure fatal for the call.
	Strict Policy = iota
	// BestEffort drops failed deliveries.
	BestEffort
)

func (p Policy) String() string {
	if p == BestEffort {
		return "best-effort"
	}
	return "strict"
}

// Reporter posts progress messages to a sink under a delivery policy.
type Reporter struct {
	sink   Sink
	policy Policy
}

// NewReporter returns a Reporter. A nil sink is allowed; under Strict every
// Report then fails with ErrNoSink.
func NewReporter(sink Sink, policy Policy) *Reporter {
	return &Reporter{sink: sink, policy: policy}
}

// Report posts {type: "progress", message}. It returns an error only under
// the Strict policy.
func (r *Reporter) Report(message string) error {
	if r == nil || r.sink == nil {
		if r != nil && r.policy == BestEffort {
			return nil
		}
		return ErrNoSink
	}
	err := r.sink.Post(Message{Type: TypeProgress, Message: message})
	if err != nil && r.policy == Strict {
		return fmt.Errorf("post %q: %w", message, err)
	}
	return nil
}
