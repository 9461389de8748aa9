// Package preview renders a finished mapcache.Cache to a flattened SVG raster
// for human inspection: one colored rect per
// occupied cell, not tileset rasterization.
//
// Grounded on pkg/export/svg.go's use of github.com/ajstarks/svgo
// (svg.New(buf), canvas.Start/End, canvas.Rect) to build a debug
// visualization as a byte buffer.
package preview
