package mapcache

import "github.com/RPGGO-AI/TiledMaster-OP/pkg/autotile"

// ResolveAutoTiles computes the blob47 index for every auto-tile cell on
// layer and stores it on the cell's TileRef. Out-of-bounds
// neighbors count as occupied; a neighbor counts as occupied only when it
// belongs to the same auto-tile family on the same layer.
func (c *Cache) ResolveAutoTiles(layer int) {
	if !c.validLayer(layer) {
		return
	}
	row := c.grid[layer]

	familyAt := func(x, y int) (string, bool) {
		if !c.inBounds(x, y) {
			return "", false
		}
		cl := row[c.index(x, y)]
		if cl.kind != cellUnit && cl.kind != cellAnchor {
			return "", false
		}
		if !cl.ref.HasAutoTileFamily {
			return "", false
		}
		return cl.ref.AutoTileFamily, true
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			idx := c.index(x, y)
			cl := row[idx]
			if (cl.kind != cellUnit && cl.kind != cellAnchor) || !cl.ref.HasAutoTileFamily {
				continue
			}
			family := cl.ref.AutoTileFamily
			occupied := func(nx, ny int) bool {
				if !c.inBounds(nx, ny) {
					return true
				}
				f, ok := familyAt(nx, ny)
				return ok && f == family
			}
			mask := autotile.Mask(x, y, occupied)
			cl.ref.AutoTileIndex = autotile.Resolve(mask)
			row[idx] = cl
		}
	}
}

// ResolveAllAutoTiles runs ResolveAutoTiles across every layer.
func (c *Cache) ResolveAllAutoTiles() {
	for l := 0; l < c.Layers; l++ {
		c.ResolveAutoTiles(l)
	}
}
