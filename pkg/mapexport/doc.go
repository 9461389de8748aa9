// Package mapexport serializes a finished mapcache.Cache to the external map
// schema: a JSON document field-for-field compatible with the Tiled map
// editor's TMJ format.
//
// The struct tree (TMJMap/TMJLayer/TMJTileset/TMJProperty) and GID helpers
// mirror the Tiled JSON map format directly, reading cell data from a
// mapcache.Cache instead of any intermediate document.
package mapexport
