package mapcache

const (
	obstacleResourceID = "__collision_obstacle__"
	coverResourceID    = "__cover_marker__"
)

// footprintCells returns every (x, y) cell covered by the anchor/unit ref at
// (ax, ay) on layer, including the anchor itself.
func (c *Cache) footprintCells(ax, ay, layer int) [][2]int {
	ref := c.grid[layer][c.index(ax, ay)].ref
	w, h := ref.Width, ref.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	cells := make([][2]int, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cells = append(cells, [2]int{ax + dx, ay + dy})
		}
	}
	return cells
}

// markReservedLayer scans every non-reserved layer for anchor/unit cells
// whose flag (Collision or Cover) is set, and drops an obstacle/cover unit
// tile on every footprint cell, at the given reserved layer. Cells already
// occupied on the reserved layer (e.g. two overlapping collision sources on
// different layers) are silently left as-is.
func (c *Cache) markReservedLayer(reservedLayer int, resourceID string, flag func(TileRef) bool) {
	placement := placement{resourceID: resourceID}

	for layer := 0; layer < c.Layers; layer++ {
		if layer == c.CollisionLayer || layer == c.CoverLayer {
			continue
		}
		row := c.grid[layer]
		for idx, cl := range row {
			if cl.kind != cellUnit && cl.kind != cellAnchor {
				continue
			}
			if !flag(cl.ref) {
				continue
			}
			x, y := idx%c.Width, idx/c.Width
			for _, cell := range c.footprintCells(x, y, layer) {
				c.dropUnit(cell[0], cell[1], reservedLayer, placement)
			}
		}
	}
}

// RunCollisionPass is the Collision built-in: every anchor/unit cell across
// user layers with Collision=true gets an obstacle tile on every footprint
// cell of CollisionLayer.
func (c *Cache) RunCollisionPass() {
	c.markReservedLayer(c.CollisionLayer, obstacleResourceID, TileRef.collisionFlag)
}

// RunCoverPass is the Cover built-in: analogous to RunCollisionPass using
// Cover=true and CoverLayer.
func (c *Cache) RunCoverPass() {
	c.markReservedLayer(c.CoverLayer, coverResourceID, TileRef.coverFlag)
}

func (t TileRef) collisionFlag() bool { return t.Collision }
func (t TileRef) coverFlag() bool     { return t.Cover }
