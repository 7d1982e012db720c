package codec

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
)

// decodeHDR reads Radiance RGBE. Linear values are clamped to [0, 1] into
// opaque 16-bit channels so the rest of the pipeline sees an LDR image.
func decodeHDR(r io.Reader) (image.Image, error) {
	m, err := rgbe.Decode(r)
	if err != nil {
		return nil, err
	}
	b := m.Bounds()
	out := image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := m.At(b.Min.X+x, b.Min.Y+y)
			px := color.NRGBA64{A: 0xffff}
			if hc, ok := c.(interface {
				HDRRGBA() (r, g, b, a float64)
			}); ok {
				fr, fg, fb, _ := hc.HDRRGBA()
				px.R, px.G, px.B = unitTo16(fr), unitTo16(fg), unitTo16(fb)
			} else {
				n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
				px.R, px.G, px.B = n.R, n.G, n.B
			}
			out.SetNRGBA64(x, y, px)
		}
	}
	return out, nil
}

// encodeHDR writes img as RGBE with channels mapped linearly onto [0, 1].
// Alpha is dropped.
func encodeHDR(w io.Writer, img image.Image) error {
	b := img.Bounds()
	m := hdr.NewRGB(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			m.Set(x, y, hdrcolor.RGB{
				R: float64(c.R) / 0xffff,
				G: float64(c.G) / 0xffff,
				B: float64(c.B) / 0xffff,
			})
		}
	}
	return rgbe.Encode(w, m)
}

func unitTo16(v float64) uint16 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint16(v*0xffff + 0.5)
}
