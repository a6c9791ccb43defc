// Package input resolves source documents into raster images.
//
// A source is either a PDF (one selected page is rasterized at a requested
// DPI) or a plain raster image (decoded directly and normalized to an
// 8-bit RGBA-compatible raster). The kind is decided once from the file
// extension; unrecognized extensions are rejected up front.
//
// Page selectors follow the shipping-label workflow this tool grew out of:
// "last" and "second-last" name pages from the end, positive numbers are
// 1-indexed from the front, and negative numbers count back from the end.
package input
