// Package mapcache implements the layered tile grid at the heart of the map
// construction pipeline: the collision-safe placement primitives
// every element builds on, and the trial/commit discipline
// (CreateCopy/Assign) that lets a generator attempt a multi-step placement
// and only commit it once every step succeeds.
//
// The grid and layer shape is grounded on pkg/carving/tilemap.go's
// TileMap/Layer (width/height/tilewidth/tileheight, a named-layer map) and
// its bounds-checked Set/Get/Fill helpers; those operated on raw uint32 tile
// ids with no notion of a multi-cell footprint, so this package rebuilds them
// around TileRef and an anchor-tracking cell model instead.
package mapcache
