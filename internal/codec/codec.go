// Package codec is the image codec library the conversion engine is built
// on: format sniffing, decoding into a PixelBuffer, and encoding with
// default or explicit encoder parameters.
package codec

import (
	"bytes"
	"fmt"
	"image"

	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/disintegration/imaging"
)

// ImageCodec is the capability the conversion pipeline depends on.
type ImageCodec interface {
	// Decode parses data. A hint of format.Unspecified sniffs the format
	// from the content.
	Decode(data []byte, hint format.Format) (*PixelBuffer, error)
	// EncodeDefault encodes buf as f with the format's default settings.
	EncodeDefault(buf *PixelBuffer, f format.Format) ([]byte, error)
	// EncodeJPEG encodes buf as JPEG at the given quality.
	EncodeJPEG(buf *PixelBuffer, quality int) ([]byte, error)
	// EncodePNG writes raw samples of the given layout as PNG.
	EncodePNG(raw []byte, width, height int, ct ColorType, c Compression, f Filter) ([]byte, error)
}

// Library is the default ImageCodec backed by the format registry.
type Library struct {
	decoders map[format.Format]decodeFunc
	encoders map[format.Format]encodeFunc
}

// New returns a Library with every built-in format registered.
func New() *Library {
	l := &Library{
		decoders: make(map[format.Format]decodeFunc),
		encoders: make(map[format.Format]encodeFunc),
	}
	for f, d := range builtinDecoders {
		l.decoders[f] = d
	}
	for f, e := range builtinEncoders {
		l.encoders[f] = e
	}
	return l
}

// Supports reports whether f can be decoded and encoded.
func (l *Library) Supports(f format.Format) (decode, encode bool) {
	_, decode = l.decoders[f]
	_, encode = l.encoders[f]
	return decode, encode
}

// Decode implements ImageCodec.
func (l *Library) Decode(data []byte, hint format.Format) (*PixelBuffer, error) {
	f := hint
	if f == format.Unspecified {
		g, err := Guess(data)
		if err != nil {
			return nil, &Error{Op: OpDecode, Err: err}
		}
		f = g
	}
	dec, ok := l.decoders[f]
	if !ok {
		return nil, decodeErr(f, ErrUnsupported)
	}
	if err := checkDeclaredSize(f, data); err != nil {
		return nil, decodeErr(f, err)
	}
	img, err := guarded(func() (image.Image, error) { return dec(bytes.NewReader(data)) })
	if err != nil {
		return nil, decodeErr(f, err)
	}
	return NewPixelBuffer(img), nil
}

// EncodeDefault implements ImageCodec.
func (l *Library) EncodeDefault(buf *PixelBuffer, f format.Format) ([]byte, error) {
	enc, ok := l.encoders[f]
	if !ok {
		return nil, encodeErr(f, ErrUnsupported)
	}
	var out bytes.Buffer
	_, err := guarded(func() (image.Image, error) { return nil, enc(&out, buf.Image()) })
	if err != nil {
		return nil, encodeErr(f, err)
	}
	return out.Bytes(), nil
}

// EncodeJPEG implements ImageCodec. Quality is clamped to 1..100.
func (l *Library) EncodeJPEG(buf *PixelBuffer, quality int) ([]byte, error) {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	var out bytes.Buffer
	if err := imaging.Encode(&out, buf.Image(), imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, encodeErr(format.Jpeg, err)
	}
	return out.Bytes(), nil
}

// EncodePNG implements ImageCodec.
func (l *Library) EncodePNG(raw []byte, width, height int, ct ColorType, c Compression, f Filter) ([]byte, error) {
	var out bytes.Buffer
	if err := writePNG(&out, raw, width, height, ct, c, f); err != nil {
		return nil, encodeErr(format.Png, err)
	}
	return out.Bytes(), nil
}

// guarded runs fn, turning a panic inside a format library into an error.
func guarded(fn func() (image.Image, error)) (img image.Image, err error) {
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, fmt.Errorf("%w: %v", ErrCorrupt, p)
		}
	}()
	return fn()
}

func checkDims(w, h, max int) error {
	if w <= 0 || h <= 0 || w > max || h > max {
		return fmt.Errorf("%w: %dx%d (max %d)", ErrDimensions, w, h, max)
	}
	return nil
}
