package codec

import "github.com/AnyUserName/imgconv/internal/format"

// signature is a magic-byte prefix; '?' matches any byte.
type signature struct {
	magic  string
	format format.Format
}

// signatures is checked in order; the first match wins. TGA has no magic
// and can only be decoded with an explicit format.
var signatures = []signature{
	{"\x89PNG\r\n\x1a\n", format.Png},
	{"\xff\xd8\xff", format.Jpeg},
	{"GIF87a", format.Gif},
	{"GIF89a", format.Gif},
	{"RIFF????WEBP", format.WebP},
	{"MM\x00*", format.Tiff},
	{"II*\x00", format.Tiff},
	{"DDS ", format.Dds},
	{"BM", format.Bmp},
	{"\x00\x00\x01\x00", format.Ico},
	{"#?RADIANCE", format.Hdr},
	{"#?RGBE", format.Hdr},
	{"P1", format.Pnm},
	{"P2", format.Pnm},
	{"P3", format.Pnm},
	{"P4", format.Pnm},
	{"P5", format.Pnm},
	{"P6", format.Pnm},
	{"P7", format.Pnm},
	{"farbfeld", format.Farbfeld},
	{"\x76\x2f\x31\x01", format.OpenExr},
	{"qoif", format.Qoi},
	{"????ftypavif", format.Avif},
	{"????ftypavis", format.Avif},
}

func match(magic string, b []byte) bool {
	if len(b) < len(magic) {
		return false
	}
	for i := 0; i < len(magic); i++ {
		if magic[i] != '?' && magic[i] != b[i] {
			return false
		}
	}
	return true
}

// Guess identifies the format of data from its leading bytes.
func Guess(data []byte) (format.Format, error) {
	for _, s := range signatures {
		if match(s.magic, data) {
			return s.format, nil
		}
	}
	return format.Unspecified, ErrUnknownFormat
}
