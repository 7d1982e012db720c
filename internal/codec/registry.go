package codec

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/AnyUserName/imgconv/internal/format"
	ico "github.com/biessek/golang-ico"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"
	"github.com/gen2brain/avif"
	farbfeld "github.com/hullerob/go.farbfeld"
	"github.com/lukegb/dds"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	xwebp "golang.org/x/image/webp"
)

type decodeFunc func(r io.Reader) (image.Image, error)

type encodeFunc func(w io.Writer, img image.Image) error

// OpenEXR is recognized by Guess but has no codec here. DDS is decode only.
var builtinDecoders = map[format.Format]decodeFunc{
	format.Avif:     avif.Decode,
	format.Bmp:      bmp.Decode,
	format.Dds:      dds.Decode,
	format.Farbfeld: farbfeld.Decode,
	format.Gif:      gif.Decode,
	format.Hdr:      decodeHDR,
	format.Ico:      ico.Decode,
	format.Jpeg:     jpeg.Decode,
	format.Png:      png.Decode,
	format.Pnm:      decodePNM,
	format.Qoi:      qoi.Decode,
	format.Tga:      tga.Decode,
	format.Tiff:     tiff.Decode,
	format.WebP:     xwebp.Decode,
}

var builtinEncoders = map[format.Format]encodeFunc{
	format.Avif:     encodeAVIF,
	format.Bmp:      imagingEncoder(imaging.BMP),
	format.Farbfeld: farbfeld.Encode,
	format.Gif:      imagingEncoder(imaging.GIF),
	format.Hdr:      encodeHDR,
	format.Ico:      encodeICO,
	format.Jpeg:     imagingEncoder(imaging.JPEG),
	format.Png:      imagingEncoder(imaging.PNG),
	format.Pnm:      encodePNM,
	format.Qoi:      qoi.Encode,
	format.Tga:      tga.Encode,
	format.Tiff:     imagingEncoder(imaging.TIFF),
	format.WebP:     encodeWebP,
}

func imagingEncoder(f imaging.Format) encodeFunc {
	return func(w io.Writer, img image.Image) error {
		return imaging.Encode(w, img, f)
	}
}

// encodeWebP writes lossless WebP, matching the other lossless defaults.
func encodeWebP(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: true, Exact: true})
}

func encodeAVIF(w io.Writer, img image.Image) error {
	return avif.Encode(w, img)
}

// icoMaxSide is the largest side an ICO directory entry can describe.
const icoMaxSide = 256

func encodeICO(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if err := checkDims(b.Dx(), b.Dy(), icoMaxSide); err != nil {
		return err
	}
	return ico.Encode(w, img)
}
