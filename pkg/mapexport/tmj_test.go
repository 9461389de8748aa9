package mapexport

import (
	"encoding/json"
	"testing"

	"github.com/RPGGO-AI/TiledMaster-OP/pkg/mapcache"
	"github.com/RPGGO-AI/TiledMaster-OP/pkg/resources"
)

func TestExport_LayerDataLengthMatchesDimensions(t *testing.T) {
	cache := mapcache.NewCache(4, 3, 4, 1)
	cache.DropTile(0, 0, 0, resources.Tile{ResourceID: "grass"})

	tmj, err := Export(cache, ExportOptions{})
	if err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}

	if len(tmj.Layers) != 4 {
		t.Fatalf("expected 4 layers, got %d", len(tmj.Layers))
	}
	for _, l := range tmj.Layers {
		data, ok := l.Data.([]uint32)
		if !ok {
			t.Fatalf("layer %q data is not []uint32", l.Name)
		}
		if len(data) != 4*3 {
			t.Fatalf("layer %q data length = %d, want %d", l.Name, len(data), 12)
		}
	}
}

func TestExport_EveryNonZeroGIDResolvesToTilesetEntry(t *testing.T) {
	cache := mapcache.NewCache(3, 3, 2, 1)
	cache.DropTile(1, 1, 0, resources.Tile{ResourceID: "grass"})

	tmj, err := Export(cache, ExportOptions{})
	if err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}
	if len(tmj.Tilesets) != 1 {
		t.Fatalf("expected 1 tileset, got %d", len(tmj.Tilesets))
	}
	ts := tmj.Tilesets[0]

	for _, l := range tmj.Layers {
		data := l.Data.([]uint32)
		for _, gid := range data {
			if gid == 0 {
				continue
			}
			local := gid - ts.FirstGID
			if int(local) >= ts.TileCount {
				t.Fatalf("gid %d resolves to local index %d, outside tileset tilecount %d", gid, local, ts.TileCount)
			}
		}
	}
}

func TestExport_AutoTileFamilyReservesContiguousBlock(t *testing.T) {
	cache := mapcache.NewCache(3, 1, 1, 1)
	group := resources.NewTileGroup("walls").AddAutoTile("F", "f.png", 1, false, false)
	if _, err := cache.DropTilesFromGroup(group, [][2]int{{0, 0}, {1, 0}}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache.ResolveAutoTiles(0)

	tmj, err := Export(cache, ExportOptions{})
	if err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}
	if tmj.Tilesets[0].TileCount != 47 {
		t.Fatalf("expected a single auto-tile family to reserve exactly 47 slots, got %d", tmj.Tilesets[0].TileCount)
	}
}

func TestExport_ObjectFootprintCellsEmitZero(t *testing.T) {
	cache := mapcache.NewCache(3, 3, 1, 1)
	obj := resources.Object{ResourceID: "house", Width: 2, Height: 2}
	cache.DropObject(0, 0, 0, obj)

	tmj, err := Export(cache, ExportOptions{})
	if err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}
	data := tmj.Layers[0].Data.([]uint32)
	w := 3
	if data[0*w+0] == 0 {
		t.Fatal("expected the object's anchor cell to emit a non-zero gid")
	}
	for _, pos := range [][2]int{{1, 0}, {0, 1}, {1, 1}} {
		if data[pos[1]*w+pos[0]] != 0 {
			t.Fatalf("expected footprint cell %v to emit gid 0, got %d", pos, data[pos[1]*w+pos[0]])
		}
	}
}

func TestExport_Determinism(t *testing.T) {
	build := func() *mapcache.Cache {
		c := mapcache.NewCache(5, 5, 3, 99)
		group := resources.NewTileGroup("g").
			AddTile("a", "a.png", 1, false, false).
			AddTile("b", "b.png", 1, false, false)
		var positions [][2]int
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				positions = append(positions, [2]int{x, y})
			}
		}
		c.DropTilesFromGroup(group, positions, 0)
		return c
	}

	tmj1, err1 := Export(build(), ExportOptions{})
	tmj2, err2 := Export(build(), ExportOptions{})
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v / %v", err1, err2)
	}

	b1, _ := json.Marshal(tmj1)
	b2, _ := json.Marshal(tmj2)
	if string(b1) != string(b2) {
		t.Fatal("expected two exports of identically-seeded, identically-built caches to be byte-identical")
	}
}

func TestExport_CompressionRoundTripsEncoding(t *testing.T) {
	cache := mapcache.NewCache(4, 4, 2, 1)
	cache.DropTile(0, 0, 0, resources.Tile{ResourceID: "grass"})

	tmj, err := Export(cache, ExportOptions{Compress: true})
	if err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}
	for _, l := range tmj.Layers {
		if l.Encoding != "base64" || l.Compression != "gzip" {
			t.Fatalf("layer %q: expected base64/gzip encoding, got %s/%s", l.Name, l.Encoding, l.Compression)
		}
		if _, ok := l.Data.(string); !ok {
			t.Fatalf("layer %q: expected compressed data to be a base64 string", l.Name)
		}
	}
}
