package input

import (
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rkohler/quadsheet/pkg/errors"
)

// Kind identifies how a source file is turned into a raster image.
type Kind int

const (
	// KindPDF sources rasterize one selected page at a requested DPI.
	KindPDF Kind = iota
	// KindImage sources decode directly.
	KindImage
)

// extKinds maps recognized file extensions (lowercase, with dot) to kinds.
var extKinds = map[string]Kind{
	".pdf":  KindPDF,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".png":  KindImage,
	".gif":  KindImage,
	".bmp":  KindImage,
	".tif":  KindImage,
	".tiff": KindImage,
}

// DetectKind resolves the input kind from the file extension. It returns an
// UNSUPPORTED_FORMAT error for extensions outside the supported set.
func DetectKind(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	kind, ok := extKinds[ext]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnsupportedFormat,
			"unsupported file format %q (supported: %s)", ext, supportedExtensions())
	}
	return kind, nil
}

// supportedExtensions returns the recognized extensions as a sorted,
// comma-separated list for error messages.
func supportedExtensions() string {
	exts := make([]string, 0, len(extKinds))
	for ext := range extKinds {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

// Load resolves a source file into a single raster image. For PDFs it
// rasterizes the page named by pageSpec at the given DPI; for images it
// decodes the file and ignores pageSpec. The file must exist and carry a
// recognized extension.
func Load(path, pageSpec string, dpi int) (image.Image, error) {
	kind, err := DetectKind(path)
	if err != nil {
		return nil, err
	}
	if dpi <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"dpi must be positive, got %d", dpi)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "input file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "stat %s", path)
	}

	switch kind {
	case KindPDF:
		return loadPDFPage(path, pageSpec, dpi)
	default:
		return loadImage(path)
	}
}
