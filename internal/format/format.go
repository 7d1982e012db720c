package format

// Format is a canonical raster image encoding.
type Format int

const (
	Avif Format = iota + 1
	Bmp
	Dds
	OpenExr
	Farbfeld
	Gif
	Hdr
	Ico
	Jpeg
	Png
	Pnm
	Qoi
	Tga
	Tiff
	WebP
)

// All lists every supported format in declaration order.
var All = []Format{
	Avif, Bmp, Dds, OpenExr, Farbfeld, Gif, Hdr, Ico,
	Jpeg, Png, Pnm, Qoi, Tga, Tiff, WebP,
}

var names = map[Format]string{
	Avif:     "Avif",
	Bmp:      "Bmp",
	Dds:      "Dds",
	OpenExr:  "OpenExr",
	Farbfeld: "Farbfeld",
	Gif:      "Gif",
	Hdr:      "Hdr",
	Ico:      "Ico",
	Jpeg:     "Jpeg",
	Png:      "Png",
	Pnm:      "Pnm",
	Qoi:      "Qoi",
	Tga:      "Tga",
	Tiff:     "Tiff",
	WebP:     "WebP",
}

// extensions holds the file extension (without dot) written for each format.
var extensions = map[Format]string{
	Avif:     "avif",
	Bmp:      "bmp",
	Dds:      "dds",
	OpenExr:  "exr",
	Farbfeld: "ff",
	Gif:      "gif",
	Hdr:      "hdr",
	Ico:      "ico",
	Jpeg:     "jpg",
	Png:      "png",
	Pnm:      "pnm",
	Qoi:      "qoi",
	Tga:      "tga",
	Tiff:     "tiff",
	WebP:     "webp",
}

func (f Format) String() string {
	if n, ok := names[f]; ok {
		return n
	}
	return "Unknown"
}

// Extension returns the file extension without dot.
func (f Format) Extension() string {
	return extensions[f]
}

// Valid reports whether f is one of the declared formats.
func (f Format) Valid() bool {
	_, ok := names[f]
	return ok
}

// Unspecified is the zero Format. Where a Format is optional it means
// "not given".
const Unspecified Format = 0
