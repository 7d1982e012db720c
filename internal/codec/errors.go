package codec

import (
	"errors"
	"fmt"

	"github.com/AnyUserName/imgconv/internal/format"
)

var (
	// ErrUnsupported means the library has no decoder or encoder for a format.
	ErrUnsupported = errors.New("format is not supported")
	// ErrUnknownFormat means content sniffing found no matching signature.
	ErrUnknownFormat = errors.New("the image format could not be determined")
	// ErrDimensions means the image is too large or empty for the target.
	ErrDimensions = errors.New("image dimensions are out of range")
	// ErrCorrupt means a format library failed on malformed data.
	ErrCorrupt = errors.New("malformed image data")
)

// Op names the codec phase an Error came from.
type Op string

const (
	OpDecode Op = "decoding"
	OpEncode Op = "encoding"
)

// Error is a failure reported by the codec library.
type Error struct {
	Op     Op
	Format format.Format // Unspecified when sniffing failed
	Err    error
}

func (e *Error) Error() string {
	if e.Format == format.Unspecified {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if errors.Is(e.Err, ErrUnsupported) {
		return fmt.Sprintf("the image format %s is not supported for %s", e.Format, e.Op)
	}
	return fmt.Sprintf("format error %s %s: %v", e.Op, e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func decodeErr(f format.Format, err error) error {
	return &Error{Op: OpDecode, Format: f, Err: err}
}

func encodeErr(f format.Format, err error) error {
	return &Error{Op: OpEncode, Format: f, Err: err}
}
