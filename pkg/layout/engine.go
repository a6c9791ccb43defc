package layout

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/rkohler/quadsheet/pkg/errors"
)

// rasterQuality is the JPEG quality used for the temporary quadrant rasters.
const rasterQuality = 95

// Quadrant holds the resolved content for a single quadrant slot.
type Quadrant struct {
	Image    image.Image
	Rotation int // degrees, counter-clockwise positive
}

// Engine places quadrant images on a Letter page and renders the PDF.
// Options are fixed at construction; an Engine is safe to reuse across
// sequential Render calls.
type Engine struct {
	margin   float64 // points
	showGrid bool
}

// New creates an Engine with the given margin (in inches, applied on all
// four sides of every quadrant) and grid visibility. It returns an
// INVALID_CONFIGURATION error when the margin is negative or large enough
// to leave no positive drawable area.
func New(marginInches float64, showGrid bool) (*Engine, error) {
	if marginInches < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"margin must be non-negative, got %g", marginInches)
	}
	margin := marginInches * PointsPerInch
	if 2*margin >= min(QuadrantWidth, QuadrantHeight) {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"margin %g in leaves no drawable area (must be under %g in)",
			marginInches, min(QuadrantWidth, QuadrantHeight)/(2*PointsPerInch))
	}
	return &Engine{margin: margin, showGrid: showGrid}, nil
}

// quadrantSlot pairs an optional quadrant with its grid position.
// quadX/quadY select the quadrant in bottom-left page coordinates:
// (0,1) top-left, (1,1) top-right, (0,0) bottom-left, (1,0) bottom-right.
type quadrantSlot struct {
	quad         *Quadrant
	quadX, quadY float64
}

// Render draws the occupied quadrants in fixed order (Q1, Q2, Q3, Q4),
// overlays the grid if enabled, and writes a single-page PDF to outputPath.
// Nil quadrants are left blank. The output is written to a temporary file
// and renamed into place, so a failed render never leaves a partial PDF at
// outputPath. Temporary rasters are removed on every exit path.
func (e *Engine) Render(outputPath string, q1, q2, q3, q4 *Quadrant) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	slots := []quadrantSlot{
		{q1, 0, 1},
		{q2, 1, 1},
		{q3, 0, 0},
		{q4, 1, 0},
	}

	var tempFiles []string
	defer func() {
		for _, f := range tempFiles {
			_ = os.Remove(f) // best effort
		}
	}()

	for i, slot := range slots {
		if slot.quad == nil || slot.quad.Image == nil {
			continue
		}
		tempFile, err := e.drawQuadrant(pdf, slot)
		if tempFile != "" {
			tempFiles = append(tempFiles, tempFile)
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "draw quadrant Q%d", i+1)
		}
	}

	if e.showGrid {
		drawGrid(pdf)
	}

	return writePDF(pdf, outputPath)
}

// drawQuadrant rotates, fits, and draws a single quadrant image. It returns
// the path of the temporary raster it created (possibly alongside an error),
// so the caller can clean up regardless of outcome.
func (e *Engine) drawQuadrant(pdf *gofpdf.Fpdf, slot quadrantSlot) (string, error) {
	img := rotate(slot.quad.Image, slot.quad.Rotation)
	bounds := img.Bounds()

	x, y, w, h := e.placement(slot.quadX, slot.quadY,
		float64(bounds.Dx()), float64(bounds.Dy()))

	tempFile := filepath.Join(os.TempDir(),
		fmt.Sprintf("quadsheet-%s.jpg", uuid.NewString()))
	if err := imaging.Save(img, tempFile, imaging.JPEGQuality(rasterQuality)); err != nil {
		return "", fmt.Errorf("encode raster: %w", err)
	}

	// gofpdf measures from the top-left corner; flip the y axis here only.
	top := PageHeight - y - h
	pdf.ImageOptions(tempFile, x, top, w, h, false,
		gofpdf.ImageOptions{ImageType: "JPG"}, 0, "")
	return tempFile, pdf.Error()
}

// placement computes the draw rectangle for an image of imgW×imgH pixels in
// the quadrant selected by quadX/quadY. The returned x/y are the bottom-left
// corner of the image in page coordinates (origin at the page's bottom-left).
func (e *Engine) placement(quadX, quadY, imgW, imgH float64) (x, y, w, h float64) {
	availW := QuadrantWidth - 2*e.margin
	availH := QuadrantHeight - 2*e.margin

	w, h = fitToBox(imgW, imgH, availW, availH)

	x = quadX*QuadrantWidth + e.margin + (availW-w)/2
	y = quadY*QuadrantHeight + e.margin + (availH-h)/2
	return x, y, w, h
}

// drawGrid strokes the quadrant separators: one vertical and one horizontal
// line through the page midpoints, full span, light gray, on top of the
// quadrant images.
func drawGrid(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(1)
	pdf.Line(PageWidth/2, 0, PageWidth/2, PageHeight)
	pdf.Line(0, PageHeight/2, PageWidth, PageHeight/2)
}

// writePDF serializes the document to a temporary file in the destination
// directory and atomically renames it to outputPath.
func writePDF(pdf *gofpdf.Fpdf, outputPath string) error {
	dir := filepath.Dir(outputPath)
	f, err := os.CreateTemp(dir, ".quadsheet-*.pdf")
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "create output file in %s", dir)
	}
	tempPath := f.Name()

	if err := pdf.Output(f); err != nil {
		f.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrCodeRender, err, "write PDF")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrCodeRender, err, "close output file")
	}
	if err := os.Rename(tempPath, outputPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrCodeRender, err, "move output to %s", outputPath)
	}
	return nil
}
