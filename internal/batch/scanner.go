package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/imgconv/internal/format"
)

// Source represents a discovered image file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the input directory.
	RelPath string
	// Key is the relative path without extension, with forward slashes.
	Key string
	// Format is the format implied by the extension.
	Format format.Format
	// Size is the file size in bytes.
	Size int64
}

// imageExtensions maps recognized file extensions to their format.
var imageExtensions = map[string]format.Format{
	".avif": format.Avif,
	".bmp":  format.Bmp,
	".dds":  format.Dds,
	".exr":  format.OpenExr,
	".ff":   format.Farbfeld,
	".gif":  format.Gif,
	".hdr":  format.Hdr,
	".ico":  format.Ico,
	".jpg":  format.Jpeg,
	".jpeg": format.Jpeg,
	".png":  format.Png,
	".pbm":  format.Pnm,
	".pgm":  format.Pnm,
	".ppm":  format.Pnm,
	".pnm":  format.Pnm,
	".qoi":  format.Qoi,
	".tga":  format.Tga,
	".tif":  format.Tiff,
	".tiff": format.Tiff,
	".webp": format.WebP,
}

// FormatForPath returns the format implied by path's extension.
func FormatForPath(path string) (format.Format, bool) {
	f, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// ScanImages walks the input directory and returns all image sources.
func ScanImages(inputDir string) ([]Source, error) {
	var sources []Source

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// Skip hidden directories.
			if strings.HasPrefix(info.Name(), ".") && path != inputDir {
				return filepath.SkipDir
			}
			return nil
		}

		f, ok := FormatForPath(path)
		if !ok {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(strings.TrimSuffix(relPath, filepath.Ext(relPath)))

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Key:     key,
			Format:  f,
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
