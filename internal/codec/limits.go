package codec

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/ftrvxmtrx/tga"
	farbfeld "github.com/hullerob/go.farbfeld"
	"github.com/lukegb/dds"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/spakin/netpbm"
)

// maxPixels bounds any decoded raster.
const maxPixels = 1 << 28

type configFunc func(r io.Reader) (image.Config, error)

// densities holds, for formats whose decoders allocate the full raster
// from the header alone, the header reader and the most pixels a single
// input byte can encode. A header declaring more pixels than the input
// can hold is rejected before decoding.
var densities = map[format.Format]struct {
	config        configFunc
	pixelsPerByte float64
}{
	format.Dds:      {dds.DecodeConfig, 2},          // DXT1: 8 bytes per 4x4 block
	format.Farbfeld: {farbfeld.DecodeConfig, 0.125}, // 8 bytes per pixel, uncompressed
	format.Hdr:      {rgbe.DecodeConfig, 16},        // RLE: 2 bytes per 127-pixel run, 4 planes
	format.Pnm:      {netpbm.DecodeConfig, 8},       // P4: 8 pixels per byte
	format.Tga:      {tga.DecodeConfig, 64},         // RLE: 2 bytes per 128-pixel run
}

// checkDeclaredSize validates the dimensions a header declares against the
// size of data.
func checkDeclaredSize(f format.Format, data []byte) error {
	d, ok := densities[f]
	if !ok {
		return nil
	}
	cfg, err := d.config(bytes.NewReader(data))
	if err != nil {
		return err
	}
	px := float64(cfg.Width) * float64(cfg.Height)
	if cfg.Width <= 0 || cfg.Height <= 0 || px > maxPixels {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, cfg.Width, cfg.Height)
	}
	if px > float64(len(data))*d.pixelsPerByte {
		return fmt.Errorf("%w: header declares %dx%d but input holds %d bytes",
			ErrDimensions, cfg.Width, cfg.Height, len(data))
	}
	if f == format.Pnm {
		return checkPlainPNM(data)
	}
	return nil
}
