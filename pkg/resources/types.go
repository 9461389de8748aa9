package resources

// Function pairs a verb and a noun describing an interaction an Object
// supports (e.g. ("open", "chest")). Purely descriptive metadata for
// elements/content systems built on top of the core; the core never
// interprets Functions itself.
type Function struct {
	Verb string
	Noun string
}

// Tile is a single-cell renderable resource.
type Tile struct {
	ResourceID string
	ImagePath  string
	Rate       float64 // selection weight within a TileGroup
	Collision  bool
	Cover      bool
}

func (t Tile) sealedTileMember()   {}
func (t Tile) sealedDescriptor()   {}
func (t Tile) ID() string          { return t.ResourceID }
func (t Tile) WeightRate() float64 { return t.Rate }
func (t Tile) IsAutoTile() bool    { return false }
func (t Tile) Image() string       { return t.ImagePath }
func (t Tile) HasCollision() bool  { return t.Collision }
func (t Tile) HasCover() bool      { return t.Cover }

// AutoTile is a resource whose rendered variant is resolved from 8-neighbor
// adjacency at export time rather than chosen up front. Its
// ResourceID doubles as the auto-tile family id: all cells sharing a family
// on the same layer participate in the same neighborhood resolution.
//
// Rate is not part of the distilled spec's AutoTile descriptor, but a
// TileGroup is defined as a weighted union over its members — so an
// AutoTile needs a selection weight to take part in one. AddAutoTile treats
// an unset (zero) Rate as 1.0, so single-family auto-tile groups (the common
// case) need not specify it.
type AutoTile struct {
	ResourceID string
	ImagePath  string
	Method     string // always "blob47" in this core
	Rate       float64
	Collision  bool
	Cover      bool
}

func (a AutoTile) sealedTileMember()   {}
func (a AutoTile) sealedDescriptor()   {}
func (a AutoTile) ID() string          { return a.ResourceID }
func (a AutoTile) WeightRate() float64 { return a.Rate }
func (a AutoTile) IsAutoTile() bool    { return true }
func (a AutoTile) Image() string       { return a.ImagePath }
func (a AutoTile) HasCollision() bool  { return a.Collision }
func (a AutoTile) HasCover() bool      { return a.Cover }

// Object is a multi-cell renderable anchored at its top-left cell.
type Object struct {
	ResourceID string
	ImagePath  string
	Width      int
	Height     int
	Rate       float64 // selection weight within an ObjectGroup
	Collision  bool
	Cover      bool
	Functions  []Function
}

func (o Object) sealedDescriptor()   {}
func (o Object) ID() string          { return o.ResourceID }
func (o Object) WeightRate() float64 { return o.Rate }
func (o Object) Image() string       { return o.ImagePath }
func (o Object) HasCollision() bool  { return o.Collision }
func (o Object) HasCover() bool      { return o.Cover }

// TileMember is satisfied by Tile and AutoTile: the member kinds a TileGroup
// may contain. The unexported sealedTileMember method keeps this a closed
// (sum-type-like) set: descriptors are a sum type over {Tile, AutoTile,
// Object}.
type TileMember interface {
	sealedTileMember()
	ID() string
	WeightRate() float64
	IsAutoTile() bool
	Image() string
	HasCollision() bool
	HasCover() bool
}

// Descriptor is satisfied by every resource kind an element can register
// under a resource group id: Tile, AutoTile, Object, *TileGroup, *ObjectGroup.
type Descriptor interface {
	sealedDescriptor()
}

func (g *TileGroup) sealedDescriptor()   {}
func (g *ObjectGroup) sealedDescriptor() {}
