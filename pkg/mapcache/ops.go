package mapcache

import (
	"github.com/RPGGO-AI/TiledMaster-OP/pkg/resources"
	"github.com/RPGGO-AI/TiledMaster-OP/pkg/rng"
)

func placementFromMember(sourceGroupID string, m resources.TileMember) placement {
	p := placement{
		resourceID:    m.ID(),
		sourceGroupID: sourceGroupID,
		collision:     m.HasCollision(),
		cover:         m.HasCover(),
	}
	if m.IsAutoTile() {
		p.hasAutoTileFamily = true
		p.autoTileFamily = m.ID()
	}
	return p
}

func (c *Cache) refFromPlacement(p placement, x, y int) TileRef {
	return TileRef{
		ResourceID:        p.resourceID,
		SourceGroupID:     p.sourceGroupID,
		Width:             1,
		Height:            1,
		AnchorX:           x,
		AnchorY:           y,
		Collision:         p.collision,
		Cover:             p.cover,
		AutoTileFamily:    p.autoTileFamily,
		HasAutoTileFamily: p.hasAutoTileFamily,
	}
}

// dropUnit writes a single-cell placement at (x, y, layer). Returns false
// without any state change if the cell is already occupied or out of range.
func (c *Cache) dropUnit(x, y, layer int, p placement) bool {
	if !c.inBounds(x, y) || !c.validLayer(layer) {
		return false
	}
	idx := c.index(x, y)
	if !c.grid[layer][idx].empty() {
		return false
	}
	c.grid[layer][idx] = cell{
		kind:    cellUnit,
		ref:     c.refFromPlacement(p, x, y),
		anchorX: x,
		anchorY: y,
	}
	c.anchors[layer][idx] = [2]int{x, y}
	return true
}

// DropTile places a single Tile at (x, y, layer). Fails without any state
// change if the cell is already occupied.
func (c *Cache) DropTile(x, y, layer int, t resources.Tile) bool {
	return c.dropUnit(x, y, layer, placementFromMember("", t))
}

// DropTilesFromGroup draws a weighted member from group for each position and
// drops it on layer. A position whose cell is already occupied is silently
// skipped — best effort, no partial failure, for bulk tile scattering; only
// an empty group distribution is
// reported as an error.
func (c *Cache) DropTilesFromGroup(group *resources.TileGroup, positions [][2]int, layer int) (int, error) {
	placed := 0
	for _, pos := range positions {
		member, err := rng.WeightedChoice(c.rnd, group.Members, func(m resources.TileMember) float64 {
			return m.WeightRate()
		})
		if err != nil {
			return placed, err
		}
		if c.dropUnit(pos[0], pos[1], layer, placementFromMember(group.GroupID, member)) {
			placed++
		}
	}
	return placed, nil
}

// footprintFree reports whether every cell of an Width x Height footprint
// anchored at (x, y) on layer is in-bounds and empty, and (if
// requireCollisionFree is set) also empty on the cache's collision layer.
func (c *Cache) footprintFree(x, y, w, h, layer int, requireCollisionFree bool) bool {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cx, cy := x+dx, y+dy
			if !c.inBounds(cx, cy) {
				return false
			}
			if c.CheckExists(cx, cy, layer) {
				return false
			}
			if requireCollisionFree && c.CheckExists(cx, cy, c.CollisionLayer) {
				return false
			}
		}
	}
	return true
}

func (c *Cache) writeFootprint(x, y, layer int, obj resources.Object) {
	anchorRef := TileRef{
		ResourceID: obj.ResourceID,
		Width:      obj.Width,
		Height:     obj.Height,
		AnchorX:    x,
		AnchorY:    y,
		Collision:  obj.Collision,
		Cover:      obj.Cover,
	}

	for dy := 0; dy < obj.Height; dy++ {
		for dx := 0; dx < obj.Width; dx++ {
			cx, cy := x+dx, y+dy
			idx := c.index(cx, cy)
			if dx == 0 && dy == 0 {
				c.grid[layer][idx] = cell{kind: cellAnchor, ref: anchorRef, anchorX: x, anchorY: y}
			} else {
				c.grid[layer][idx] = cell{kind: cellReservation, anchorX: x, anchorY: y}
			}
			c.anchors[layer][idx] = [2]int{x, y}
		}
	}
}

// DropObject places obj's footprint anchored at (x, y, layer). Succeeds iff
// every cell in the footprint rectangle is in-bounds and empty on this layer,
// and (if obj.Collision) empty on the collision layer too. On success it
// writes the anchor cell with the full TileRef and reservation cells for the
// remaining footprint, and registers the anchor in the per-layer anchor map.
// On failure there is no state change.
func (c *Cache) DropObject(x, y, layer int, obj resources.Object) bool {
	if !c.validLayer(layer) || obj.Width <= 0 || obj.Height <= 0 {
		return false
	}
	if !c.footprintFree(x, y, obj.Width, obj.Height, layer, obj.Collision) {
		return false
	}
	c.writeFootprint(x, y, layer, obj)
	return true
}

// DropObjectsFromGroup draws a weighted member from group for each anchor
// position and attempts DropObject on layer. A position whose footprint
// can't fit is silently skipped. Returns the number actually placed.
func (c *Cache) DropObjectsFromGroup(group *resources.ObjectGroup, positions [][2]int, layer int) (int, error) {
	placed := 0
	for _, pos := range positions {
		member, err := rng.WeightedChoice(c.rnd, group.Members, func(o resources.Object) float64 {
			return o.Rate
		})
		if err != nil {
			return placed, err
		}
		if c.DropObject(pos[0], pos[1], layer, member) {
			c.grid[layer][c.index(pos[0], pos[1])].ref.SourceGroupID = group.GroupID
			placed++
		}
	}
	return placed, nil
}

// RemoveTile clears whatever occupies (x, y, layer): a unit tile, or the
// entire footprint of the object anchored there (or owning a reservation
// cell there). Returns false if the cell was already empty. This is an
// atomic, all-or-nothing removal: a partially-cleared footprint never
// results.
func (c *Cache) RemoveTile(x, y, layer int) bool {
	if !c.inBounds(x, y) || !c.validLayer(layer) {
		return false
	}
	idx := c.index(x, y)
	cl := c.grid[layer][idx]
	if cl.empty() {
		return false
	}

	if cl.kind == cellUnit {
		c.grid[layer][idx] = cell{}
		delete(c.anchors[layer], idx)
		return true
	}

	// cellAnchor or cellReservation: clear the whole footprint, located via
	// the anchor coordinate every footprint cell carries.
	ax, ay := cl.anchorX, cl.anchorY
	anchorIdx := c.index(ax, ay)
	anchorRef := c.grid[layer][anchorIdx].ref
	w, h := anchorRef.Width, anchorRef.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cx, cy := ax+dx, ay+dy
			if !c.inBounds(cx, cy) {
				continue
			}
			fIdx := c.index(cx, cy)
			c.grid[layer][fIdx] = cell{}
			delete(c.anchors[layer], fIdx)
		}
	}
	return true
}
