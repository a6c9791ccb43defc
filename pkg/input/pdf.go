package input

import (
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/rkohler/quadsheet/pkg/errors"
)

// loadPDFPage rasterizes the page selected by pageSpec at the given DPI.
// Only the selected page is rendered; large documents stay cheap.
func loadPDFPage(path, pageSpec string, dpi int) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "open PDF %s", path)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return nil, errors.New(errors.ErrCodeDecode, "PDF has no pages: %s", path)
	}

	index, err := ResolvePageIndex(pageSpec, pageCount)
	if err != nil {
		return nil, err
	}

	img, err := doc.ImageDPI(index, float64(dpi))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err,
			"rasterize page %d of %s", index+1, path)
	}
	return img, nil
}
