package layout

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Page dimensions for US Letter in points.
const (
	PointsPerInch = 72.0
	PageWidth     = 612.0
	PageHeight    = 792.0

	QuadrantWidth  = PageWidth / 2
	QuadrantHeight = PageHeight / 2
)

// fitToBox scales an image of imgW×imgH to fit entirely within maxW×maxH,
// preserving aspect ratio and touching at least one bound. Small images are
// scaled up to fill the box; there is no upscaling guard.
func fitToBox(imgW, imgH, maxW, maxH float64) (w, h float64) {
	imgAspect := imgW / imgH
	boxAspect := maxW / maxH

	if imgAspect > boxAspect {
		return maxW, maxW / imgAspect
	}
	return maxH * imgAspect, maxH
}

// rotate rotates img counter-clockwise by the given angle in degrees,
// expanding the bounds so no corner is clipped. A zero rotation returns the
// input unchanged. Right-angle rotations avoid resampling entirely;
// arbitrary angles fill the expanded corners with white.
func rotate(img image.Image, degrees int) image.Image {
	switch normalizeAngle(degrees) {
	case 0:
		return img
	case 90:
		return imaging.Rotate90(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate270(img)
	default:
		return imaging.Rotate(img, float64(degrees), color.White)
	}
}

// normalizeAngle reduces an angle in degrees to [0, 360).
func normalizeAngle(degrees int) int {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}
