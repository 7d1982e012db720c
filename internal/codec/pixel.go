package codec

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ColorType tags the sample layout of a PixelBuffer.
type ColorType int

const (
	L8 ColorType = iota + 1
	L16
	Rgb8
	Rgba8
	Rgb16
	Rgba16
)

var colorTypeNames = map[ColorType]string{
	L8:     "L8",
	L16:    "L16",
	Rgb8:   "Rgb8",
	Rgba8:  "Rgba8",
	Rgb16:  "Rgb16",
	Rgba16: "Rgba16",
}

func (c ColorType) String() string {
	if n, ok := colorTypeNames[c]; ok {
		return n
	}
	return "Unknown"
}

// BytesPerPixel returns the size of one interleaved pixel.
func (c ColorType) BytesPerPixel() int {
	switch c {
	case L8:
		return 1
	case L16:
		return 2
	case Rgb8:
		return 3
	case Rgba8:
		return 4
	case Rgb16:
		return 6
	case Rgba16:
		return 8
	}
	return 0
}

// PixelBuffer is a decoded raster owned by a single conversion.
type PixelBuffer struct {
	img   image.Image
	color ColorType
}

// NewPixelBuffer wraps img, picking the narrowest ColorType that holds it.
func NewPixelBuffer(img image.Image) *PixelBuffer {
	return &PixelBuffer{img: img, color: colorTypeOf(img)}
}

func colorTypeOf(img image.Image) ColorType {
	opaque := false
	if o, ok := img.(interface{ Opaque() bool }); ok {
		opaque = o.Opaque()
	}
	switch img.(type) {
	case *image.Gray:
		return L8
	case *image.Gray16:
		return L16
	case *image.RGBA64, *image.NRGBA64:
		if opaque {
			return Rgb16
		}
		return Rgba16
	}
	if opaque {
		return Rgb8
	}
	return Rgba8
}

// Image returns the underlying decoded image.
func (p *PixelBuffer) Image() image.Image { return p.img }

// ColorType returns the sample layout of Bytes.
func (p *PixelBuffer) ColorType() ColorType { return p.color }

func (p *PixelBuffer) Width() int  { return p.img.Bounds().Dx() }
func (p *PixelBuffer) Height() int { return p.img.Bounds().Dy() }

// Bytes returns the pixels as tightly packed, non-premultiplied,
// big-endian samples in ColorType layout, top row first.
func (p *PixelBuffer) Bytes() []byte {
	b := p.img.Bounds()
	w, h := b.Dx(), b.Dy()
	bpp := p.color.BytesPerPixel()
	out := make([]byte, 0, w*h*bpp)

	switch p.color {
	case L8:
		g := p.img.(*image.Gray)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := g.PixOffset(b.Min.X, y)
			out = append(out, g.Pix[i:i+w]...)
		}
	case L16:
		g := p.img.(*image.Gray16)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := g.PixOffset(b.Min.X, y)
			out = append(out, g.Pix[i:i+w*2]...)
		}
	case Rgb8, Rgba8:
		n := imaging.Clone(p.img)
		for i := 0; i < len(n.Pix); i += 4 {
			out = append(out, n.Pix[i], n.Pix[i+1], n.Pix[i+2])
			if p.color == Rgba8 {
				out = append(out, n.Pix[i+3])
			}
		}
	case Rgb16, Rgba16:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBA64Model.Convert(p.img.At(x, y)).(color.NRGBA64)
				out = append(out,
					byte(c.R>>8), byte(c.R),
					byte(c.G>>8), byte(c.G),
					byte(c.B>>8), byte(c.B))
				if p.color == Rgba16 {
					out = append(out, byte(c.A>>8), byte(c.A))
				}
			}
		}
	}
	return out
}
