package convert

import (
	"errors"
	"fmt"
)

// Kind classifies conversion failures.
type Kind string

const (
	KindUnsupportedFormat Kind = "unsupported_format"
	KindDecode            Kind = "decode"
	KindEncode            Kind = "encode"
	KindProgress          Kind = "progress"
)

// Side tells which identifier an unsupported-format error refers to.
type Side string

const (
	SideInput  Side = "input"
	SideOutput Side = "output"
)

// Error is the single error type returned by the engine. Its Error text is
// the caller-visible message.
type Error struct {
	Kind Kind
	Side Side   // set for KindUnsupportedFormat
	ID   string // raw identifier, set for KindUnsupportedFormat
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindUnsupportedFormat {
		return fmt.Sprintf("Unsupported %s format: %s", e.Side, e.ID)
	}
	return Translate(e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Translate renders a codec or delivery failure for the caller.
func Translate(err error) string {
	return "Image processing error: " + err.Error()
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == k
	}
	return false
}

func unsupported(side Side, id string, err error) error {
	return &Error{Kind: KindUnsupportedFormat, Side: side, ID: id, Err: err}
}

func wrap(k Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Err: err}
}
