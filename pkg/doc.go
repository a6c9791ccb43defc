// Package pkg provides the core libraries for quadsheet label-sheet generation.
//
// # Overview
//
// quadsheet composes PDF pages and raster images into the four quadrants of
// a single letter-size PDF page. The pkg directory is organized by pipeline
// stage:
//
//  1. [preset] / [config] - Resolve what goes where (presets, defaults)
//  2. [input] - Resolve source files into raster images
//  3. [layout] - Place, rotate, and fit images; render the PDF
//  4. [errors] - Structured error codes shared by every stage
//
// # Architecture
//
// The typical data flow through quadsheet:
//
//	Preset / quadrant flags
//	         ↓
//	    [preset] package (quadrant number → source, page, rotation)
//	         ↓
//	    [input] package (rasterize PDF pages, decode images)
//	         ↓
//	    [layout] package (rotate → fit-to-box → place → write PDF)
//	         ↓
//	    single-page letter PDF
//
// Each stage is a pure transform of its declared inputs; no stage reaches
// into another's state. Everything runs synchronously in one goroutine —
// at most four images flow through a render.
package pkg
