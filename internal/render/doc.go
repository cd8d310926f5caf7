// Package render turns emitted generations into images.
//
// Every renderer is a [celaut.Sink]:
//
//   - [Gray]: 8-bit grayscale raster, one row per generation
//   - [SVG]: vector image with one rect per cell
//   - [Terminal]: block characters coloured for a terminal preview
//
// Brightness is linear in the cell value, see [Intensity].
package render
