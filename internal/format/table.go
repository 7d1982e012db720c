package format

import (
	"fmt"
	"sort"
	"strings"
)

// Resolver maps caller-supplied identifiers to a Format.
type Resolver interface {
	// Resolve looks up id case-insensitively. The returned error is an
	// *UnsupportedError carrying id unchanged.
	Resolve(id string) (Format, error)
	// Identifiers returns every identifier accepted for f.
	Identifiers(f Format) []string
}

// UnsupportedError reports an identifier missing from the active table.
type UnsupportedError struct {
	ID string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unknown format identifier %q", e.ID)
}

// Table is a static identifier → Format mapping.
type Table struct {
	Name    string
	entries map[string]Format
}

// NewTable builds a Table from format → synonyms data. Identifiers are
// stored lower-cased.
func NewTable(name string, ids map[Format][]string) *Table {
	t := &Table{Name: name, entries: make(map[string]Format)}
	for f, list := range ids {
		for _, id := range list {
			t.entries[strings.ToLower(id)] = f
		}
	}
	return t
}

// Resolve implements Resolver.
func (t *Table) Resolve(id string) (Format, error) {
	if f, ok := t.entries[strings.ToLower(id)]; ok {
		return f, nil
	}
	return 0, &UnsupportedError{ID: id}
}

// Identifiers implements Resolver. The result is sorted.
func (t *Table) Identifiers(f Format) []string {
	var out []string
	for id, g := range t.entries {
		if g == f {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Formats returns the formats reachable through the table, in All order.
func (t *Table) Formats() []Format {
	seen := map[Format]bool{}
	for _, f := range t.entries {
		seen[f] = true
	}
	var out []Format
	for _, f := range All {
		if seen[f] {
			out = append(out, f)
		}
	}
	return out
}

// ShortNames accepts one canonical token per format.
var ShortNames = NewTable("short", map[Format][]string{
	Avif:     {"avif"},
	Bmp:      {"bmp"},
	Dds:      {"dds"},
	OpenExr:  {"exr"},
	Farbfeld: {"ff"},
	Gif:      {"gif"},
	Hdr:      {"hdr"},
	Ico:      {"ico"},
	Jpeg:     {"jpeg"},
	Png:      {"png"},
	Pnm:      {"pnm"},
	Qoi:      {"qoi"},
	Tga:      {"tga"},
	Tiff:     {"tiff"},
	WebP:     {"webp"},
})

// Legacy is the reduced short-name table of the minimal call contract.
var Legacy = NewTable("legacy", map[Format][]string{
	Png:  {"png"},
	Jpeg: {"jpeg", "jpg"},
	Gif:  {"gif"},
	Bmp:  {"bmp"},
	Ico:  {"ico"},
	Tiff: {"tiff"},
	WebP: {"webp"},
})

// MIMETypes accepts MIME-type strings. Synonyms are part of the wire
// contract with callers; do not prune them.
var MIMETypes = NewTable("mime", map[Format][]string{
	Avif:     {"image/avif"},
	Bmp:      {"image/bmp", "image/x-bmp"},
	Dds:      {"image/vnd-ms.dds", "image/vnd.ms-dds", "image/x-dds"},
	OpenExr:  {"image/x-exr", "image/aces"},
	Farbfeld: {"image/farbfeld", "image/x-farbfeld"},
	Gif:      {"image/gif"},
	Hdr:      {"image/vnd.radiance", "image/x-hdr"},
	Ico:      {"image/x-icon", "image/vnd.microsoft.icon"},
	Jpeg:     {"image/jpeg", "image/jpg", "image/pjpeg"},
	Png:      {"image/png", "image/x-png"},
	Pnm: {
		"image/x-portable-bitmap",
		"image/x-portable-graymap",
		"image/x-portable-pixmap",
		"image/x-portable-anymap",
	},
	Qoi:  {"image/qoi", "image/x-qoi"},
	Tga:  {"image/x-tga", "image/x-targa", "image/tga"},
	Tiff: {"image/tiff", "image/tiff-fx"},
	WebP: {"image/webp"},
})

var tables = map[string]*Table{
	ShortNames.Name: ShortNames,
	Legacy.Name:     Legacy,
	MIMETypes.Name:  MIMETypes,
}

// TableByName returns one of the built-in tables ("short", "legacy", "mime").
func TableByName(name string) (*Table, bool) {
	t, ok := tables[strings.ToLower(name)]
	return t, ok
}
