package mapcache

import (
	"testing"

	"github.com/RPGGO-AI/TiledMaster-OP/pkg/resources"
	"pgregory.net/rapid"
)

func newTestCache() *Cache {
	return NewCache(10, 10, 4, 42)
}

func TestNewCache_ReservesTopTwoLayers(t *testing.T) {
	c := newTestCache()
	if c.CollisionLayer != 2 || c.CoverLayer != 3 {
		t.Fatalf("collision/cover layers = %d/%d, want 2/3", c.CollisionLayer, c.CoverLayer)
	}
	w, h, l := c.Dimensions()
	if w != 10 || h != 10 || l != 4 {
		t.Fatalf("Dimensions() = (%d,%d,%d), want (10,10,4)", w, h, l)
	}
}

func TestDropTile_SucceedsOnceThenFailsOnOccupiedCell(t *testing.T) {
	c := newTestCache()
	tile := resources.Tile{ResourceID: "grass", ImagePath: "grass.png"}

	if !c.DropTile(3, 3, 0, tile) {
		t.Fatal("expected first DropTile to succeed on an empty cell")
	}
	if c.DropTile(3, 3, 0, tile) {
		t.Fatal("expected second DropTile on the same cell to fail")
	}
	if !c.CheckExists(3, 3, 0) {
		t.Fatal("expected CheckExists to report the placed tile")
	}
}

func TestDropTile_OutOfBoundsFails(t *testing.T) {
	c := newTestCache()
	tile := resources.Tile{ResourceID: "grass"}
	if c.DropTile(-1, 0, 0, tile) {
		t.Fatal("expected out-of-bounds drop to fail")
	}
	if c.DropTile(0, 0, 99, tile) {
		t.Fatal("expected invalid layer drop to fail")
	}
}

func TestDropObject_FootprintAllOrNothing(t *testing.T) {
	c := newTestCache()
	obj := resources.Object{ResourceID: "house", Width: 2, Height: 2}

	if !c.DropObject(4, 4, 0, obj) {
		t.Fatal("expected object to fit in an empty 2x2 footprint")
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			if !c.CheckExists(4+dx, 4+dy, 0) {
				t.Fatalf("footprint cell (%d,%d) not occupied after DropObject", 4+dx, 4+dy)
			}
		}
	}

	// Overlapping placement must fail and leave state untouched.
	other := resources.Object{ResourceID: "rock", Width: 2, Height: 2}
	if c.DropObject(5, 5, 0, other) {
		t.Fatal("expected overlapping object placement to fail")
	}
}

func TestDropObject_RespectsCollisionLayerWhenRequired(t *testing.T) {
	c := newTestCache()
	// Occupy the collision layer under the intended footprint.
	blocker := resources.Tile{ResourceID: "wall"}
	c.DropTile(1, 1, c.CollisionLayer, blocker)

	solid := resources.Object{ResourceID: "statue", Width: 1, Height: 1, Collision: true}
	if c.DropObject(1, 1, 0, solid) {
		t.Fatal("expected collision-requiring object to fail when collision layer occupied")
	}

	nonSolid := resources.Object{ResourceID: "decal", Width: 1, Height: 1, Collision: false}
	if !c.DropObject(1, 1, 0, nonSolid) {
		t.Fatal("expected non-colliding object to ignore the collision layer")
	}
}

func TestGetLayer_RowMajorOrderExcludesReservations(t *testing.T) {
	c := newTestCache()
	obj := resources.Object{ResourceID: "table", Width: 2, Height: 1}
	c.DropObject(0, 0, 0, obj)
	c.DropTile(5, 5, 0, resources.Tile{ResourceID: "grass"})

	refs := c.GetLayer(0)
	if len(refs) != 2 {
		t.Fatalf("expected 2 visible refs (1 anchor + 1 unit tile), got %d", len(refs))
	}
	if refs[0].AnchorX != 0 || refs[0].AnchorY != 0 {
		t.Fatalf("expected row-major order to yield the anchor at (0,0) first, got %+v", refs[0])
	}
}

func TestCreateCopy_IsIndependentOfOriginal(t *testing.T) {
	c := newTestCache()
	c.DropTile(1, 1, 0, resources.Tile{ResourceID: "grass"})

	cp := c.CreateCopy(7)
	cp.DropTile(2, 2, 0, resources.Tile{ResourceID: "sand"})

	if c.CheckExists(2, 2, 0) {
		t.Fatal("mutation on the copy leaked back into the original cache")
	}
	if !cp.CheckExists(1, 1, 0) {
		t.Fatal("copy should have inherited the original's existing placements")
	}
}

func TestCreateCopy_DeterministicSeedDerivation(t *testing.T) {
	c1 := newTestCache()
	c2 := newTestCache()

	cp1 := c1.CreateCopy(99)
	cp2 := c2.CreateCopy(99)

	tile := resources.Tile{ResourceID: "a"}
	group := resources.NewTileGroup("g").AddTile("a", "a.png", 1, false, false).AddTile("b", "b.png", 1, false, false)
	if group.Err() != nil {
		t.Fatalf("unexpected group construction error: %v", group.Err())
	}

	pos := [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	n1, err1 := cp1.DropTilesFromGroup(group, pos, 0)
	n2, err2 := cp2.DropTilesFromGroup(group, pos, 0)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v / %v", err1, err2)
	}
	if n1 != n2 {
		t.Fatalf("placed counts diverged: %d vs %d", n1, n2)
	}
	_ = tile
	for _, p := range pos {
		r1 := cp1.grid[0][cp1.index(p[0], p[1])].ref.ResourceID
		r2 := cp2.grid[0][cp2.index(p[0], p[1])].ref.ResourceID
		if r1 != r2 {
			t.Fatalf("two CreateCopy(99) caches from identically-seeded originals diverged at %v: %q vs %q", p, r1, r2)
		}
	}
}

func TestAssign_CopiesStateAndRejectsShapeMismatch(t *testing.T) {
	c := newTestCache()
	trial := c.CreateCopy(1)
	trial.DropTile(0, 0, 0, resources.Tile{ResourceID: "grass"})

	if err := c.Assign(trial); err != nil {
		t.Fatalf("unexpected Assign error: %v", err)
	}
	if !c.CheckExists(0, 0, 0) {
		t.Fatal("expected Assign to commit the trial cache's placements")
	}

	other := NewCache(5, 5, 4, 1)
	if err := c.Assign(other); err == nil {
		t.Fatal("expected Assign to reject a shape mismatch")
	}
}

func TestRemoveTile_ClearsWholeFootprintAtomically(t *testing.T) {
	c := newTestCache()
	obj := resources.Object{ResourceID: "house", Width: 2, Height: 2}
	c.DropObject(2, 2, 0, obj)

	if !c.RemoveTile(3, 3, 0) {
		t.Fatal("expected RemoveTile on a reservation cell to succeed")
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			if c.CheckExists(2+dx, 2+dy, 0) {
				t.Fatalf("footprint cell (%d,%d) still occupied after RemoveTile", 2+dx, 2+dy)
			}
		}
	}
	if c.RemoveTile(3, 3, 0) {
		t.Fatal("expected RemoveTile on an already-empty cell to fail")
	}
}

// TestFootprintInvariant_NoReservationWithoutLiveAnchor is a property-based
// check that DropObject never leaves a reservation cell whose anchor is not a
// live anchor cell, across random sequences of object placements.
func TestFootprintInvariant_NoReservationWithoutLiveAnchor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := NewCache(8, 8, 3, 1)
		n := rapid.IntRange(1, 20).Draw(t, "ops")
		for i := 0; i < n; i++ {
			x := rapid.IntRange(0, 7).Draw(t, "x")
			y := rapid.IntRange(0, 7).Draw(t, "y")
			w := rapid.IntRange(1, 3).Draw(t, "w")
			h := rapid.IntRange(1, 3).Draw(t, "h")
			obj := resources.Object{ResourceID: "o", Width: w, Height: h}
			c.DropObject(x, y, 0, obj)
		}

		for idx, cl := range c.grid[0] {
			if cl.kind != cellReservation {
				continue
			}
			ax, ay := cl.anchorX, cl.anchorY
			anchorCell := c.grid[0][c.index(ax, ay)]
			if anchorCell.kind != cellAnchor {
				t.Fatalf("reservation at grid index %d points to anchor (%d,%d) which is not a live cellAnchor", idx, ax, ay)
			}
		}
	})
}
