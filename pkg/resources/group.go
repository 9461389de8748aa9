package resources

import "github.com/RPGGO-AI/TiledMaster-OP/pkg/tmerrors"

// TileGroup is a weighted union of Tile or AutoTile members (never mixed —
// groups must be homogeneous). A weighted draw over the group's members
// selects which one paints a given cell.
type TileGroup struct {
	GroupID  string
	Members  []TileMember
	autoTile bool // kind of the first member added; later adds must match
	err      error
}

// NewTileGroup creates an empty, homogeneous tile group identified by id.
func NewTileGroup(id string) *TileGroup {
	return &TileGroup{GroupID: id}
}

// Err returns the first construction error recorded on the group (duplicate
// resource id, or a member kind mismatch), or nil if every Add call so far
// succeeded. Check it once after chaining Add calls.
func (g *TileGroup) Err() error {
	return g.err
}

func (g *TileGroup) hasID(id string) bool {
	for _, m := range g.Members {
		if m.ID() == id {
			return true
		}
	}
	return false
}

// AddTile appends a Tile member. Returns g for chaining; records
// DuplicateResource if id is already present, or HeterogeneousGroup if the
// group already holds AutoTile members.
func (g *TileGroup) AddTile(resourceID, imagePath string, rate float64, collision, cover bool) *TileGroup {
	if g.err != nil {
		return g
	}
	if g.hasID(resourceID) {
		g.err = tmerrors.Newf(tmerrors.DuplicateResource, "tile group %q: duplicate resource id %q", g.GroupID, resourceID)
		return g
	}
	if len(g.Members) > 0 && g.autoTile {
		g.err = tmerrors.Newf(tmerrors.HeterogeneousGroup, "tile group %q: cannot mix Tile into an AutoTile group", g.GroupID)
		return g
	}
	g.autoTile = false
	g.Members = append(g.Members, Tile{
		ResourceID: resourceID,
		ImagePath:  imagePath,
		Rate:       rate,
		Collision:  collision,
		Cover:      cover,
	})
	return g
}

// AddAutoTile appends an AutoTile member using method "blob47". Rate of 0
// defaults to 1.0 (see AutoTile's doc comment). Returns g for chaining;
// records DuplicateResource or HeterogeneousGroup as AddTile does.
func (g *TileGroup) AddAutoTile(resourceID, imagePath string, rate float64, collision, cover bool) *TileGroup {
	if g.err != nil {
		return g
	}
	if g.hasID(resourceID) {
		g.err = tmerrors.Newf(tmerrors.DuplicateResource, "tile group %q: duplicate resource id %q", g.GroupID, resourceID)
		return g
	}
	if len(g.Members) > 0 && !g.autoTile {
		g.err = tmerrors.Newf(tmerrors.HeterogeneousGroup, "tile group %q: cannot mix AutoTile into a Tile group", g.GroupID)
		return g
	}
	if rate == 0 {
		rate = 1.0
	}
	g.autoTile = true
	g.Members = append(g.Members, AutoTile{
		ResourceID: resourceID,
		ImagePath:  imagePath,
		Method:     "blob47",
		Rate:       rate,
		Collision:  collision,
		Cover:      cover,
	})
	return g
}

// IsAutoTileGroup reports whether the group's members are AutoTile (vs Tile).
// Meaningless on an empty group.
func (g *TileGroup) IsAutoTileGroup() bool {
	return g.autoTile
}

// ObjectGroup is a weighted union of Object members.
type ObjectGroup struct {
	GroupID string
	Members []Object
	err     error
}

// NewObjectGroup creates an empty object group identified by id.
func NewObjectGroup(id string) *ObjectGroup {
	return &ObjectGroup{GroupID: id}
}

// Err returns the first construction error recorded on the group, or nil.
func (g *ObjectGroup) Err() error {
	return g.err
}

func (g *ObjectGroup) hasID(id string) bool {
	for _, m := range g.Members {
		if m.ResourceID == id {
			return true
		}
	}
	return false
}

// AddObject appends an Object member. Returns g for chaining; records
// DuplicateResource if resourceID is already present in the group.
func (g *ObjectGroup) AddObject(resourceID, imagePath string, w, h int, rate float64, collision, cover bool, functions ...Function) *ObjectGroup {
	if g.err != nil {
		return g
	}
	if g.hasID(resourceID) {
		g.err = tmerrors.Newf(tmerrors.DuplicateResource, "object group %q: duplicate resource id %q", g.GroupID, resourceID)
		return g
	}
	g.Members = append(g.Members, Object{
		ResourceID: resourceID,
		ImagePath:  imagePath,
		Width:      w,
		Height:     h,
		Rate:       rate,
		Collision:  collision,
		Cover:      cover,
		Functions:  functions,
	})
	return g
}
