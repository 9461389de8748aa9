package element

import (
	"context"

	"github.com/RPGGO-AI/TiledMaster-OP/pkg/mapcache"
	"github.com/RPGGO-AI/TiledMaster-OP/pkg/resources"
)

// Element is a named contributor with a fixed set of descriptors keyed by
// resource group id (a map, so the pairs carry no order), and a Build
// procedure.
//
// Name identifies the element instance for duplicate-rejection in a
// Builder's element list. Resources returns the descriptor groups this
// element needs, keyed by the same resource group ids its Build method will
// look up in loaded. The element's Factory installs its descriptors when it
// constructs the element; Build performs placement once every descriptor has
// been resolved.
type Element interface {
	// Name identifies this element instance (not necessarily its registry
	// factory name — two instances of the same factory may carry distinct
	// names to appear twice in one build).
	Name() string

	// Resources returns this element's descriptor groups, keyed by resource
	// group id. Called by the Builder before asset loading.
	Resources() map[string]resources.Descriptor

	// Build performs placement against cache. It may assume every resource
	// id referenced by Resources() has a corresponding entry in loaded.
	// build must leave cache in an invariant-satisfying state; on failure it
	// should return a BuildAborted error rather than leave partial state that
	// cannot be explained by the returned error.
	Build(ctx context.Context, cache *mapcache.Cache, loaded map[string]resources.LoadedResource) error
}

// Factory constructs a fresh Element instance, filling in default resource
// descriptors internally unless the caller provides overrides.
type Factory func(overrides map[string]resources.Descriptor) Element
