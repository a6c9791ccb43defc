package input

import (
	"image"
	"os"

	// Decoders for the supported raster formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/disintegration/imaging"

	"github.com/rkohler/quadsheet/pkg/errors"
)

// loadImage decodes a raster image file and normalizes it to an 8-bit NRGBA
// raster so every downstream consumer (rotation, JPEG re-encode, PDF
// embedding) sees one color model regardless of the source format.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "open image %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode image %s", path)
	}
	return imaging.Clone(img), nil
}
