package resources

import (
	"context"
	"os"
	"sync"

	"github.com/RPGGO-AI/TiledMaster-OP/pkg/tmerrors"
)

// LoadedResource is the result of resolving one descriptor's image path. It
// is keyed by the same resource id the owning element used to register the
// descriptor, so an element's build step can look up `loaded[id]` directly.
type LoadedResource struct {
	ResourceID string
	ImagePath  string
}

// Lookup fetches id from loaded, returning MissingResource if an element
// references a resource id its own Resources() never declared (or that
// failed to load).
func Lookup(loaded map[string]LoadedResource, id string) (LoadedResource, error) {
	r, ok := loaded[id]
	if !ok {
		return LoadedResource{}, tmerrors.Newf(tmerrors.MissingResource, "resource id %q not present in loaded resources", id)
	}
	return r, nil
}

// leaves flattens a set of descriptors (which may include TileGroup and
// ObjectGroup wrappers) into individual (id, imagePath) resources to load.
func leaves(descriptors map[string]Descriptor) map[string]string {
	paths := make(map[string]string)
	for _, d := range descriptors {
		switch v := d.(type) {
		case Tile:
			paths[v.ResourceID] = v.ImagePath
		case AutoTile:
			paths[v.ResourceID] = v.ImagePath
		case Object:
			paths[v.ResourceID] = v.ImagePath
		case *TileGroup:
			for _, m := range v.Members {
				paths[m.ID()] = m.Image()
			}
		case *ObjectGroup:
			for _, m := range v.Members {
				paths[m.ResourceID] = m.ImagePath
			}
		}
	}
	return paths
}

// maxConcurrentLoads bounds the asset-loading worker pool: a
// fixed-size semaphore rather than one goroutine per resource, since a large
// template can reference hundreds of tiles and objects.
const maxConcurrentLoads = 16

// Load resolves every descriptor's image path, in parallel up to
// maxConcurrentLoads at a time, and returns a LoadedResource per resource id.
// All loads are awaited before Load returns: loads are independent and their
// completion is awaited before any element's build runs. The first
// unresolvable path aborts the whole load with
// AssetLoadFailed; ctx cancellation aborts it with ctx.Err().
func Load(ctx context.Context, descriptors map[string]Descriptor) (map[string]LoadedResource, error) {
	paths := leaves(descriptors)

	type result struct {
		id   string
		path string
		err  error
	}

	results := make(chan result, len(paths))
	sem := make(chan struct{}, maxConcurrentLoads)
	var wg sync.WaitGroup

	for id, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(id, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if _, err := os.Stat(path); err != nil {
				results <- result{id: id, path: path, err: tmerrors.Wrap(tmerrors.AssetLoadFailed, "resolving image path "+path, err)}
				return
			}
			results <- result{id: id, path: path}
		}(id, path)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	loaded := make(map[string]LoadedResource, len(paths))
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		loaded[r.id] = LoadedResource{ResourceID: r.id, ImagePath: r.path}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return loaded, nil
}
