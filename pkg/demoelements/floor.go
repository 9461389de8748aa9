package demoelements

import (
	"context"

	"github.com/RPGGO-AI/TiledMaster-OP/pkg/element"
	"github.com/RPGGO-AI/TiledMaster-OP/pkg/mapcache"
	"github.com/RPGGO-AI/TiledMaster-OP/pkg/resources"
)

const floorFactoryName = "demo.floor"

func init() {
	element.Register(floorFactoryName, newFloor)
}

// floor is a minimal Element that scatters a weighted TileGroup of two Tile
// variants across every cell of layer 0. It demonstrates the Resources /
// Build split of the Element protocol with the simplest
// possible placement: every cell, one group, one layer.
type floor struct {
	name      string
	resources map[string]resources.Descriptor
}

func newFloor(overrides map[string]resources.Descriptor) element.Element {
	defaults := map[string]resources.Descriptor{
		"floor": resources.NewTileGroup("floor").
			AddTile("grass", "assets/grass.png", 3, false, false).
			AddTile("dirt", "assets/dirt.png", 1, false, false),
	}
	for id, d := range overrides {
		defaults[id] = d
	}
	return &floor{name: floorFactoryName, resources: defaults}
}

func (f *floor) Name() string { return f.name }

func (f *floor) Resources() map[string]resources.Descriptor {
	return f.resources
}

func (f *floor) Build(ctx context.Context, cache *mapcache.Cache, loaded map[string]resources.LoadedResource) error {
	group, ok := f.resources["floor"].(*resources.TileGroup)
	if !ok {
		return nil
	}
	for _, m := range group.Members {
		if _, err := resources.Lookup(loaded, m.ID()); err != nil {
			return err
		}
	}

	w, h, _ := cache.Dimensions()
	positions := make([][2]int, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			positions = append(positions, [2]int{x, y})
		}
	}

	_, err := cache.DropTilesFromGroup(group, positions, 0)
	return err
}
