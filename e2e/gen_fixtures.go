//go:build ignore

// gen_fixtures writes one small image per encodable format for the batch
// smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/AnyUserName/imgconv/internal/codec"
	"github.com/AnyUserName/imgconv/internal/format"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	if err := os.MkdirAll(filepath.Join(dir, "alpha"), 0o755); err != nil {
		panic(err)
	}

	lib := codec.New()
	opaque := codec.NewPixelBuffer(gradient(96, 64))
	alpha := codec.NewPixelBuffer(alphaGradient(48, 48))

	n := 0
	for _, f := range format.All {
		if _, enc := lib.Supports(f); !enc {
			continue
		}
		write(lib, filepath.Join(dir, "gradient."+f.Extension()), opaque, f)
		n++
	}
	for _, f := range []format.Format{format.Png, format.Farbfeld, format.Tga} {
		write(lib, filepath.Join(dir, "alpha", "logo."+f.Extension()), alpha, f)
		n++
	}

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created %d fixtures in %s\n", n, dir)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func alphaGradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: 220, G: 60, B: 30,
				A: uint8(x * 255 / w),
			})
		}
	}
	return img
}

func write(lib *codec.Library, path string, buf *codec.PixelBuffer, f format.Format) {
	data, err := lib.EncodeDefault(buf, f)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", f, err))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		panic(err)
	}
}
