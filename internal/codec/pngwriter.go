package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compression selects the PNG deflate effort.
type Compression int

const (
	CompressionDefault Compression = iota
	CompressionFast
	CompressionBest
)

// Filter selects the PNG scanline filter. The non-adaptive values equal
// the filter type byte written before each row.
type Filter int

const (
	FilterNone Filter = iota
	FilterSub
	FilterUp
	FilterAvg
	FilterPaeth
	FilterAdaptive
)

var compressionNames = map[Compression]string{
	CompressionDefault: "default",
	CompressionFast:    "fast",
	CompressionBest:    "best",
}

var filterNames = map[Filter]string{
	FilterNone:     "no_filter",
	FilterSub:      "sub",
	FilterUp:       "up",
	FilterAvg:      "avg",
	FilterPaeth:    "paeth",
	FilterAdaptive: "adaptive",
}

func (c Compression) String() string { return compressionNames[c] }
func (f Filter) String() string      { return filterNames[f] }

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngHeader returns the IHDR color type and bit depth for ct.
func pngHeader(ct ColorType) (colorType, depth byte, err error) {
	switch ct {
	case L8:
		return 0, 8, nil
	case L16:
		return 0, 16, nil
	case Rgb8:
		return 2, 8, nil
	case Rgb16:
		return 2, 16, nil
	case Rgba8:
		return 6, 8, nil
	case Rgba16:
		return 6, 16, nil
	}
	return 0, 0, fmt.Errorf("png: unsupported color type %v", ct)
}

func zlibLevel(c Compression) int {
	switch c {
	case CompressionFast:
		return zlib.BestSpeed
	case CompressionBest:
		return zlib.BestCompression
	}
	return zlib.DefaultCompression
}

// writePNG encodes raw samples as a single-IDAT PNG with an explicit
// filter and compression level.
func writePNG(w io.Writer, raw []byte, width, height int, ct ColorType, c Compression, f Filter) error {
	colorType, depth, err := pngHeader(ct)
	if err != nil {
		return err
	}
	if f < FilterNone || f > FilterAdaptive {
		return fmt.Errorf("png: invalid filter %d", f)
	}
	if err := checkDims(width, height, 1<<31-1); err != nil {
		return err
	}
	bpp := ct.BytesPerPixel()
	stride := width * bpp
	if len(raw) != stride*height {
		return fmt.Errorf("png: buffer length %d does not match %dx%d %v", len(raw), width, height, ct)
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = depth
	ihdr[9] = colorType

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlibLevel(c))
	if err != nil {
		return err
	}
	prev := make([]byte, stride)
	row := make([]byte, 1+stride)
	var candidates [5][]byte
	if f == FilterAdaptive {
		for i := range candidates {
			candidates[i] = make([]byte, 1+stride)
		}
	}
	for y := 0; y < height; y++ {
		cur := raw[y*stride : (y+1)*stride]
		out := row
		if f == FilterAdaptive {
			out = pickFilter(candidates, cur, prev, bpp)
		} else {
			filterRow(row, cur, prev, bpp, byte(f))
		}
		if _, err := zw.Write(out); err != nil {
			return err
		}
		prev = cur
	}
	if err := zw.Close(); err != nil {
		return err
	}

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}
	for _, ch := range []struct {
		name string
		data []byte
	}{
		{"IHDR", ihdr[:]},
		{"IDAT", idat.Bytes()},
		{"IEND", nil},
	} {
		if err := writeChunk(w, ch.name, ch.data); err != nil {
			return err
		}
	}
	return nil
}

func writeChunk(w io.Writer, name string, data []byte) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data)))
	copy(hdr[4:], name)
	crc := crc32.NewIEEE()
	crc.Write(hdr[4:])
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	for _, b := range [][]byte{hdr[:], data, sum[:]} {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// filterRow writes the filter type byte followed by the filtered scanline.
func filterRow(dst, cur, prev []byte, bpp int, ft byte) {
	dst[0] = ft
	d := dst[1:]
	for i := range cur {
		var a, b, c byte
		if i >= bpp {
			a = cur[i-bpp]
			c = prev[i-bpp]
		}
		b = prev[i]
		switch ft {
		case 0:
			d[i] = cur[i]
		case 1:
			d[i] = cur[i] - a
		case 2:
			d[i] = cur[i] - b
		case 3:
			d[i] = cur[i] - byte((int(a)+int(b))/2)
		case 4:
			d[i] = cur[i] - paeth(a, b, c)
		}
	}
}

// pickFilter applies every filter and returns the row with the smallest
// sum of absolute residuals.
func pickFilter(candidates [5][]byte, cur, prev []byte, bpp int) []byte {
	best, bestSum := 0, -1
	for ft := range candidates {
		filterRow(candidates[ft], cur, prev, bpp, byte(ft))
		sum := 0
		for _, v := range candidates[ft][1:] {
			sum += abs8(v)
		}
		if bestSum < 0 || sum < bestSum {
			best, bestSum = ft, sum
		}
	}
	return candidates[best]
}

func abs8(v byte) int {
	if int8(v) < 0 {
		return -int(int8(v))
	}
	return int(v)
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa, pb, pc := absInt(p-int(a)), absInt(p-int(b)), absInt(p-int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
