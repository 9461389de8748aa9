// Package resources implements the declarative resource descriptors elements
// use to describe what they can paint onto the map cache: single tiles,
// auto-tiling families, and multi-cell objects, plus weighted groupings of
// each.
//
// Construction follows a builder style: NewTileGroup/NewObjectGroup return a
// group that AddTile/AddAutoTile/AddObject mutate and return (self, for
// chaining). Mutation errors (duplicate resource ids, mixing tile and
// auto-tile members in one group) are recorded on the group rather than
// returned from each call, so a chain reads top to bottom; call Err() once
// after chaining to check whether it succeeded. This mirrors the sticky-error
// builder convention used across the Go ecosystem's query and request
// builders, since nothing group-shaped exists to copy in the donor
// codebase's own YAML-driven ThemePack construction.
//
// Descriptors are immutable once Load has resolved them: Load walks a
// set of descriptors, stats each referenced image path, and returns a
// LoadedResource per resource id. Decoding the image is explicitly out of
// scope; existence is the loader's whole contract.
package resources
