// Package layout implements the quadrant layout engine.
//
// # Overview
//
// The engine maps up to four raster images onto the four quadrants of a
// single US-Letter page (612×792 points) and writes the result as a
// one-page PDF. Each quadrant applies, in order:
//
//  1. Rotation (counter-clockwise, expanding bounds; 0° is a no-op)
//  2. Aspect-preserving fit into the quadrant's drawable area
//     (quadrant size minus the margin on all sides)
//  3. Centered placement within the drawable area
//
// Quadrants are addressed Q1 (top-left), Q2 (top-right), Q3 (bottom-left),
// Q4 (bottom-right) and are geometrically independent: the placement of one
// never depends on which others are occupied.
//
// All geometry is computed in points with a bottom-left origin, the
// page-description convention. The single spot where the PDF backend's
// top-left origin matters is the image draw call.
//
// # Usage
//
//	engine, err := layout.New(0.25, true)
//	if err != nil {
//	    return err
//	}
//	err = engine.Render("sheet.pdf",
//	    &layout.Quadrant{Image: label, Rotation: 0},
//	    &layout.Quadrant{Image: label, Rotation: 0},
//	    &layout.Quadrant{Image: notes, Rotation: -90},
//	    nil,
//	)
//
// Rendering with all quadrants nil still succeeds and produces a blank
// (optionally gridded) page; rejecting that case is the caller's job.
package layout
