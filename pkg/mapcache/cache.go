package mapcache

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/RPGGO-AI/TiledMaster-OP/pkg/rng"
	"github.com/RPGGO-AI/TiledMaster-OP/pkg/tmerrors"
)

// Cache is the in-memory multi-layer grid built during a single build cycle
// It is owned exclusively by the build in progress; once a
// Builder finishes, the cache is conceptually frozen.
type Cache struct {
	Width, Height, Layers int
	Seed                  uint64

	// CollisionLayer and CoverLayer are the two reserved layer indices
	// (typically Layers-2 and Layers-1): the two highest layer indices.
	CollisionLayer, CoverLayer int

	rnd *rng.RNG

	// grid[layer] is a row-major Width*Height slice of cells.
	grid [][]cell

	// anchors[layer][idx(x,y)] records the owning object's anchor coordinate
	// for every footprint cell (including the anchor itself) — the
	// auxiliary fast-lookup index kept alongside the
	// cells themselves rather than replacing them.
	anchors []map[int][2]int
}

// NewCache creates an empty Cache of the given dimensions and layer count,
// seeded deterministically. CollisionLayer and CoverLayer default to the two
// highest layer indices (layers-2, layers-1).
func NewCache(width, height, layers int, seed uint64) *Cache {
	if width <= 0 || height <= 0 || layers <= 0 {
		panic("mapcache: width, height, and layers must be positive")
	}

	grid := make([][]cell, layers)
	anchors := make([]map[int][2]int, layers)
	for l := 0; l < layers; l++ {
		grid[l] = make([]cell, width*height)
		anchors[l] = make(map[int][2]int)
	}

	return &Cache{
		Width:          width,
		Height:         height,
		Layers:         layers,
		Seed:           seed,
		CollisionLayer: layers - 2,
		CoverLayer:     layers - 1,
		rnd:            rng.NewRNG(seed, "mapcache", nil),
		grid:           grid,
		anchors:        anchors,
	}
}

// Dimensions returns (width, height, layer count).
func (c *Cache) Dimensions() (int, int, int) {
	return c.Width, c.Height, c.Layers
}

// LayerCount returns the number of layers.
func (c *Cache) LayerCount() int {
	return c.Layers
}

// RNG returns the cache's own deterministic RNG stream, for weighted
// placement draws. All cache randomness flows through this single stream so
// replaying the same operation sequence on a fresh cache with the same seed
// reproduces it exactly (spec invariant 4).
func (c *Cache) RNG() *rng.RNG {
	return c.rnd
}

func (c *Cache) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

func (c *Cache) validLayer(layer int) bool {
	return layer >= 0 && layer < c.Layers
}

func (c *Cache) index(x, y int) int {
	return y*c.Width + x
}

// CheckExists reports whether (x, y, layer) is occupied — by an anchor, a
// unit tile, or a footprint reservation.
func (c *Cache) CheckExists(x, y, layer int) bool {
	if !c.inBounds(x, y) || !c.validLayer(layer) {
		return false
	}
	return !c.grid[layer][c.index(x, y)].empty()
}

// GetLayer returns every anchor/unit cell on layer, in row-major order.
// Footprint reservation cells are never yielded.
func (c *Cache) GetLayer(layer int) []TileRef {
	if !c.validLayer(layer) {
		return nil
	}
	row := c.grid[layer]
	out := make([]TileRef, 0, len(row))
	for _, cl := range row {
		if cl.kind == cellUnit || cl.kind == cellAnchor {
			out = append(out, cl.ref)
		}
	}
	return out
}

// RefAt returns the TileRef occupying (x, y, layer) and true, if that cell is
// an anchor or unit cell. Footprint reservation cells and empty cells report
// (TileRef{}, false) — the exporter treats both the same way: emit gid 0.
func (c *Cache) RefAt(x, y, layer int) (TileRef, bool) {
	if !c.inBounds(x, y) || !c.validLayer(layer) {
		return TileRef{}, false
	}
	cl := c.grid[layer][c.index(x, y)]
	if cl.kind != cellUnit && cl.kind != cellAnchor {
		return TileRef{}, false
	}
	return cl.ref, true
}

// CreateCopy returns a deep copy of the cache (grid, anchors, rng state),
// suitable for trial placement. The copy's RNG is reseeded as a deterministic
// function of (seed, seedOffset) so independent speculative branches don't
// collide, while remaining fully reproducible.
func (c *Cache) CreateCopy(seedOffset uint64) *Cache {
	grid := make([][]cell, c.Layers)
	anchors := make([]map[int][2]int, c.Layers)
	for l := 0; l < c.Layers; l++ {
		grid[l] = make([]cell, len(c.grid[l]))
		copy(grid[l], c.grid[l])

		anchors[l] = make(map[int][2]int, len(c.anchors[l]))
		for k, v := range c.anchors[l] {
			anchors[l][k] = v
		}
	}

	var offsetBuf [8]byte
	binary.BigEndian.PutUint64(offsetBuf[:], seedOffset)
	copySeed := deriveCopySeed(c.Seed, offsetBuf[:])

	return &Cache{
		Width:          c.Width,
		Height:         c.Height,
		Layers:         c.Layers,
		Seed:           c.Seed,
		CollisionLayer: c.CollisionLayer,
		CoverLayer:     c.CoverLayer,
		rnd:            rng.NewRNG(copySeed, "mapcache_copy", offsetBuf[:]),
		grid:           grid,
		anchors:        anchors,
	}
}

// deriveCopySeed folds a seed offset into the master seed using the same
// SHA-256 scheme rng.NewRNG uses to isolate build stages, so copies get an
// independent, reproducible RNG stream without duplicating NewRNG's
// internals.
func deriveCopySeed(seed uint64, offset []byte) uint64 {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	h.Write(buf[:])
	h.Write(offset)
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

// Assign overwrites this cache's grid, anchors, and rng state from other.
// Dimensions and layer count must match. This is the "commit" half of the
// trial/commit idiom: mutations on a CreateCopy()'d cache are invisible here
// until Assign runs.
func (c *Cache) Assign(other *Cache) error {
	if other == nil {
		return tmerrors.New(tmerrors.ShapeMismatch, "assign: other cache is nil")
	}
	if c.Width != other.Width || c.Height != other.Height || c.Layers != other.Layers {
		return tmerrors.Newf(tmerrors.ShapeMismatch,
			"assign: shape (%d,%d,%d) does not match (%d,%d,%d)",
			c.Width, c.Height, c.Layers, other.Width, other.Height, other.Layers)
	}

	for l := 0; l < c.Layers; l++ {
		copy(c.grid[l], other.grid[l])
		c.anchors[l] = make(map[int][2]int, len(other.anchors[l]))
		for k, v := range other.anchors[l] {
			c.anchors[l][k] = v
		}
	}
	c.rnd = other.rnd
	return nil
}
