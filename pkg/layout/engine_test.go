package layout

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rkohler/quadsheet/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		margin  float64
		wantErr bool
	}{
		{"zero margin", 0, false},
		{"quarter inch", 0.25, false},
		{"half inch", 0.5, false},
		{"just under the drawable limit", 2.12, false},
		{"negative margin", -0.1, true},
		{"margin consumes quadrant width", 2.125, true},
		{"absurd margin", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.margin, true)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%g, true) error = %v, wantErr %v", tt.margin, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
				t.Errorf("New(%g, true) error code = %q, want %q",
					tt.margin, errors.GetCode(err), errors.ErrCodeInvalidConfiguration)
			}
		})
	}
}

// TestPlacementScenarioA checks the worked example: a 400×300 image in Q1
// with a 0.25in (18pt) margin lands inside x∈[18,306], y∈[414,792] at 4:3.
func TestPlacementScenarioA(t *testing.T) {
	engine, err := New(0.25, false)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	x, y, w, h := engine.placement(0, 1, 400, 300)

	if x < 18 || x+w > 306 {
		t.Errorf("x span [%g, %g], want within [18, 306]", x, x+w)
	}
	if y < 414 || y+h > 792 {
		t.Errorf("y span [%g, %g], want within [414, 792]", y, y+h)
	}
	if math.Abs(w/h-4.0/3.0) > 1e-9 {
		t.Errorf("aspect = %g, want 4:3", w/h)
	}
	// Drawable area is 270×360; a 4:3 image fits the width exactly.
	if w != 270 {
		t.Errorf("w = %g, want 270", w)
	}
}

func TestPlacementQuadrantOrigins(t *testing.T) {
	engine, err := New(0, false)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		name         string
		quadX, quadY float64
		wantX, wantY float64
	}{
		{"Q1 top-left", 0, 1, 0, QuadrantHeight},
		{"Q2 top-right", 1, 1, QuadrantWidth, QuadrantHeight},
		{"Q3 bottom-left", 0, 0, 0, 0},
		{"Q4 bottom-right", 1, 0, QuadrantWidth, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An image with the quadrant's exact aspect fills it fully at
			// zero margin, so the draw origin is the quadrant origin.
			x, y, w, h := engine.placement(tt.quadX, tt.quadY, QuadrantWidth, QuadrantHeight)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("origin = (%g, %g), want (%g, %g)", x, y, tt.wantX, tt.wantY)
			}
			if w != QuadrantWidth || h != QuadrantHeight {
				t.Errorf("size = %gx%g, want %gx%g", w, h, QuadrantWidth, QuadrantHeight)
			}
		})
	}
}

// TestPlacementCentering verifies the leftover space splits evenly around
// the image on the axis that does not touch the box.
func TestPlacementCentering(t *testing.T) {
	engine, err := New(0.25, false)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// 400×300 in Q3: fits width (270), height 202.5, slack 360-202.5=157.5.
	x, y, _, h := engine.placement(0, 0, 400, 300)
	if x != 18 {
		t.Errorf("x = %g, want 18 (width-tight image)", x)
	}
	wantY := 18 + (360-h)/2
	if math.Abs(y-wantY) > 1e-9 {
		t.Errorf("y = %g, want %g (centered vertically)", y, wantY)
	}
}

// TestPlacementIndependence confirms a quadrant's geometry is a pure
// function of its own slot, regardless of what else renders.
func TestPlacementIndependence(t *testing.T) {
	engine, err := New(0.25, true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	x1, y1, w1, h1 := engine.placement(0, 0, 123, 456)
	// Intervening placements must not disturb later ones.
	engine.placement(1, 1, 999, 1)
	engine.placement(0, 1, 1, 999)
	x2, y2, w2, h2 := engine.placement(0, 0, 123, 456)

	if x1 != x2 || y1 != y2 || w1 != w2 || h1 != h2 {
		t.Errorf("placement changed across calls: (%g,%g,%g,%g) vs (%g,%g,%g,%g)",
			x1, y1, w1, h1, x2, y2, w2, h2)
	}
}

func testImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderWritesPDF(t *testing.T) {
	engine, err := New(0.25, true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	out := filepath.Join(t.TempDir(), "sheet.pdf")
	q := &Quadrant{Image: testImage(400, 300, color.NRGBA{R: 255, A: 255})}

	if err := engine.Render(out, q, nil, &Quadrant{Image: testImage(300, 400, color.NRGBA{B: 255, A: 255}), Rotation: -90}, nil); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("output PDF is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header: %q", data[:8])
	}
}

// TestRenderCleansTempRasters verifies the intermediate JPEG rasters are
// removed once the PDF is written.
func TestRenderCleansTempRasters(t *testing.T) {
	engine, err := New(0.25, false)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	before, err := filepath.Glob(filepath.Join(os.TempDir(), "quadsheet-*.jpg"))
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "sheet.pdf")
	q := &Quadrant{Image: testImage(100, 80, color.NRGBA{G: 200, A: 255})}
	if err := engine.Render(out, q, q, nil, nil); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	after, err := filepath.Glob(filepath.Join(os.TempDir(), "quadsheet-*.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if len(after) > len(before) {
		t.Errorf("render left %d temp raster(s) behind", len(after)-len(before))
	}
}

func TestRenderBlankPage(t *testing.T) {
	engine, err := New(0, true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	out := filepath.Join(t.TempDir(), "blank.pdf")
	if err := engine.Render(out, nil, nil, nil, nil); err != nil {
		t.Fatalf("Render() with no quadrants error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("blank render produced no file: %v", err)
	}
}

func TestRenderUnwritablePath(t *testing.T) {
	engine, err := New(0.25, false)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	out := filepath.Join(t.TempDir(), "missing", "deep", "sheet.pdf")
	err = engine.Render(out, &Quadrant{Image: testImage(10, 10, color.White)}, nil, nil, nil)
	if err == nil {
		t.Fatal("Render() to missing directory should fail")
	}
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeRender)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("failed render left a file at %s", out)
	}
}

func TestRenderReusableEngine(t *testing.T) {
	engine, err := New(0.25, false)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	dir := t.TempDir()
	q := &Quadrant{Image: testImage(40, 30, color.Black)}
	for _, name := range []string{"a.pdf", "b.pdf"} {
		if err := engine.Render(filepath.Join(dir, name), nil, nil, q, nil); err != nil {
			t.Fatalf("Render(%s) error: %v", name, err)
		}
	}
}
