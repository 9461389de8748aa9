package demoelements

import (
	"context"

	"github.com/RPGGO-AI/TiledMaster-OP/pkg/element"
	"github.com/RPGGO-AI/TiledMaster-OP/pkg/mapcache"
	"github.com/RPGGO-AI/TiledMaster-OP/pkg/resources"
)

const propsFactoryName = "demo.props"

func init() {
	element.Register(propsFactoryName, newProps)
}

// props scatters a weighted ObjectGroup of collidable props at random
// anchor positions on layer 1, drawn from the cache's own deterministic RNG
// stream. It demonstrates Object placement (vs. the floor element's unit
// Tile placement) and the interaction with the Collision built-in pass.
type props struct {
	name      string
	count     int
	resources map[string]resources.Descriptor
}

func newProps(overrides map[string]resources.Descriptor) element.Element {
	defaults := map[string]resources.Descriptor{
		"props": resources.NewObjectGroup("props").
			AddObject("crate", "assets/crate.png", 1, 1, 2, true, false).
			AddObject("barrel", "assets/barrel.png", 1, 1, 1, true, false).
			AddObject("shelf", "assets/shelf.png", 2, 1, 1, true, false),
	}
	for id, d := range overrides {
		defaults[id] = d
	}
	return &props{name: propsFactoryName, count: 12, resources: defaults}
}

func (p *props) Name() string { return p.name }

func (p *props) Resources() map[string]resources.Descriptor {
	return p.resources
}

func (p *props) Build(ctx context.Context, cache *mapcache.Cache, loaded map[string]resources.LoadedResource) error {
	group, ok := p.resources["props"].(*resources.ObjectGroup)
	if !ok {
		return nil
	}
	for _, m := range group.Members {
		if _, err := resources.Lookup(loaded, m.ID()); err != nil {
			return err
		}
	}

	w, h, _ := cache.Dimensions()
	if w == 0 || h == 0 {
		return nil
	}

	r := cache.RNG()
	positions := make([][2]int, p.count)
	for i := range positions {
		positions[i] = [2]int{r.Intn(w), r.Intn(h)}
	}

	_, err := cache.DropObjectsFromGroup(group, positions, 1)
	return err
}
