// Package autotile resolves 8-neighbor adjacency for auto-tiling families
// into the standard blob47 sprite index.
//
// Generators never pick a concrete auto-tile variant themselves; they tag a
// cell as belonging to a family on a layer (pkg/mapcache's DropTilesFromGroup
// does this automatically for AutoTile group members) and this package's
// Resolve runs once over the finished grid, so cells placed in any order
// converge to the same rendering regardless of placement sequence. This
// generalizes the neighbor-counting idiom in
// pkg/carving/tilemap.go's CountNeighbors — same 8-delta iteration and
// out-of-bounds handling, built into a full adjacency bitmask instead of a
// match count.
package autotile
