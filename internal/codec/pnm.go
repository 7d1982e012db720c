package codec

import (
	"errors"
	"image"
	"io"

	"github.com/spakin/netpbm"
)

var errPNMSample = errors.New("pnm: invalid sample")

func decodePNM(r io.Reader) (image.Image, error) {
	return netpbm.Decode(r, &netpbm.DecodeOptions{Target: netpbm.PNM, PBMMaxValue: 255})
}

// encodePNM picks PGM for gray sources, PPM for opaque color and PAM
// (RGB_ALPHA) otherwise, at 16 bits when the source has them.
func encodePNM(w io.Writer, img image.Image) error {
	ct := colorTypeOf(img)
	opts := &netpbm.EncodeOptions{MaxValue: 255}
	switch ct {
	case L8, L16:
		opts.Format = netpbm.PGM
	case Rgb8, Rgb16:
		opts.Format = netpbm.PPM
	default:
		opts.Format = netpbm.PAM
		opts.TupleType = "RGB_ALPHA"
	}
	if ct == L16 || ct == Rgb16 || ct == Rgba16 {
		opts.MaxValue = 0xffff
	}
	return netpbm.Encode(w, img, opts)
}

// checkPlainPNM rejects signed numbers in the ASCII variants (P1-P3), whose
// header values and samples are unsigned decimals.
func checkPlainPNM(data []byte) error {
	if len(data) < 2 || data[0] != 'P' || data[1] < '1' || data[1] > '3' {
		return nil
	}
	comment := false
	for _, c := range data[2:] {
		switch {
		case comment:
			comment = c != '\n' && c != '\r'
		case c == '#':
			comment = true
		case c == '-' || c == '+':
			return errPNMSample
		}
	}
	return nil
}
