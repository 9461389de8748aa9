package mapexport

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/RPGGO-AI/TiledMaster-OP/pkg/mapcache"
)

// TMJMap is the root TMJ map structure (Tiled JSON map format 1.10).
// https://doc.mapeditor.org/en/stable/reference/json-map-format/
type TMJMap struct {
	Type             string        `json:"type"`
	Version          string        `json:"version"`
	TiledVersion     string        `json:"tiledversion"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	TileWidth        int           `json:"tilewidth"`
	TileHeight       int           `json:"tileheight"`
	Orientation      string        `json:"orientation"`
	RenderOrder      string        `json:"renderorder"`
	Infinite         bool          `json:"infinite"`
	NextLayerID      int           `json:"nextlayerid"`
	NextObjectID     int           `json:"nextobjectid"`
	CompressionLevel int           `json:"compressionlevel"`
	Layers           []TMJLayer    `json:"layers"`
	Tilesets         []TMJTileset  `json:"tilesets"`
	Properties       []TMJProperty `json:"properties,omitempty"`
}

// TMJLayer is a single tile layer. mapexport only ever emits "tilelayer"
// layers: objects are rendered through their anchor cell's gid on the same
// tile grid, not a separate object layer.
type TMJLayer struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	Visible     bool          `json:"visible"`
	Opacity     float64       `json:"opacity"`
	X           int           `json:"x"`
	Y           int           `json:"y"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Data        interface{}   `json:"data"`
	Encoding    string        `json:"encoding"`
	Compression string        `json:"compression,omitempty"`
	Properties  []TMJProperty `json:"properties,omitempty"`
}

// TMJTileset references a single composite tile image.
type TMJTileset struct {
	FirstGID   uint32 `json:"firstgid"`
	Name       string `json:"name"`
	TileWidth  int    `json:"tilewidth"`
	TileHeight int    `json:"tileheight"`
	TileCount  int    `json:"tilecount"`
	Columns    int    `json:"columns"`
	Image      string `json:"image"`
}

// TMJProperty is a custom key/value property attached to the map or a layer.
type TMJProperty struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// GID flip flags, unused by this core (no flipped placements) but kept for
// schema compatibility with readers that check them.
const (
	FlippedHorizontallyFlag = 0x80000000
	FlippedVerticallyFlag   = 0x40000000
	FlippedDiagonallyFlag   = 0x20000000
	TileIDMask              = 0x1FFFFFFF
)

// defaultTileSize is used when the caller doesn't override it.
const defaultTileSize = 32

// CalculateGID converts a tileset-local index to a global tile id.
func CalculateGID(tilesetFirstGID uint32, localIndex int) uint32 {
	return tilesetFirstGID + uint32(localIndex)
}

// ParseGID extracts the local tile id and flip flags from a GID.
func ParseGID(gid uint32) (tileID uint32, flipH, flipV, flipD bool) {
	flipH = gid&FlippedHorizontallyFlag != 0
	flipV = gid&FlippedVerticallyFlag != 0
	flipD = gid&FlippedDiagonallyFlag != 0
	tileID = gid & TileIDMask
	return
}

// indexAssigner deterministically assigns tileset-local indices to resources
// as it encounters them scanning the cache in row-major, layer-ascending
// order. Auto-tile families reserve a contiguous 47-slot block (one per
// blob47 index); every other resource id gets a single slot. Assignment
// order depends only on cache contents, never on map iteration order, so the
// same cache always yields the same tileset layout (spec invariant 1).
type indexAssigner struct {
	familyBase map[string]int
	plainIndex map[string]int
	next       int
}

func newIndexAssigner() *indexAssigner {
	return &indexAssigner{
		familyBase: make(map[string]int),
		plainIndex: make(map[string]int),
	}
}

func (a *indexAssigner) localIndex(ref mapcache.TileRef) int {
	if ref.HasAutoTileFamily {
		base, ok := a.familyBase[ref.AutoTileFamily]
		if !ok {
			base = a.next
			a.familyBase[ref.AutoTileFamily] = base
			a.next += 47
		}
		return base + ref.AutoTileIndex
	}

	idx, ok := a.plainIndex[ref.ResourceID]
	if !ok {
		idx = a.next
		a.plainIndex[ref.ResourceID] = idx
		a.next++
	}
	return idx
}

// ExportOptions configures Export.
type ExportOptions struct {
	TileWidth, TileHeight int // defaults to 32x32 if zero
	TilesetImage          string
	Compress              bool
	Properties            map[string]interface{} // additive build metadata (generator, seed, elements)
}

// Export serializes cache to a TMJMap: one tile layer per cache layer, a
// single composite tileset sized to cover every resource/auto-tile family
// encountered.
func Export(cache *mapcache.Cache, opts ExportOptions) (*TMJMap, error) {
	if cache == nil {
		return nil, fmt.Errorf("mapexport: cache is nil")
	}

	tw, th := opts.TileWidth, opts.TileHeight
	if tw <= 0 {
		tw = defaultTileSize
	}
	if th <= 0 {
		th = defaultTileSize
	}

	w, h, layers := cache.Dimensions()
	tmj := &TMJMap{
		Type:             "map",
		Version:          "1.10",
		TiledVersion:     "1.10.2",
		Width:            w,
		Height:           h,
		TileWidth:        tw,
		TileHeight:       th,
		Orientation:      "orthogonal",
		RenderOrder:      "right-down",
		Infinite:         false,
		NextLayerID:      1,
		NextObjectID:     1,
		CompressionLevel: -1,
		Layers:           make([]TMJLayer, 0, layers),
		Tilesets:         []TMJTileset{},
		Properties:       []TMJProperty{},
	}

	assigner := newIndexAssigner()
	layerData := make([][]uint32, layers)
	for l := 0; l < layers; l++ {
		data := make([]uint32, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				ref, ok := cache.RefAt(x, y, l)
				if !ok {
					continue
				}
				localIndex := assigner.localIndex(ref)
				data[y*w+x] = CalculateGID(1, localIndex)
			}
		}
		layerData[l] = data
	}

	for l := 0; l < layers; l++ {
		layer := TMJLayer{
			ID:       tmj.NextLayerID,
			Name:     layerName(cache, l),
			Type:     "tilelayer",
			Visible:  true,
			Opacity:  1.0,
			Width:    w,
			Height:   h,
			Data:     layerData[l],
			Encoding: "csv",
		}
		tmj.NextLayerID++

		if opts.Compress {
			if err := compressLayer(&layer); err != nil {
				return nil, fmt.Errorf("mapexport: compressing layer %q: %w", layer.Name, err)
			}
		}
		tmj.Layers = append(tmj.Layers, layer)
	}

	image := opts.TilesetImage
	if image == "" {
		image = "tileset.png"
	}
	tmj.Tilesets = append(tmj.Tilesets, TMJTileset{
		FirstGID:   1,
		Name:       "composite",
		TileWidth:  tw,
		TileHeight: th,
		TileCount:  assigner.next,
		Columns:    assigner.next,
		Image:      image,
	})

	tmj.Properties = append(tmj.Properties, TMJProperty{Name: "generator", Type: "string", Value: "tiledmaster-op"})
	for name, value := range opts.Properties {
		tmj.Properties = append(tmj.Properties, propertyFor(name, value))
	}

	return tmj, nil
}

func layerName(cache *mapcache.Cache, l int) string {
	switch l {
	case cache.CollisionLayer:
		return "collision"
	case cache.CoverLayer:
		return "cover"
	default:
		return fmt.Sprintf("layer_%d", l)
	}
}

func propertyFor(name string, value interface{}) TMJProperty {
	p := TMJProperty{Name: name, Value: value}
	switch value.(type) {
	case bool:
		p.Type = "bool"
	case int, int32, int64, uint, uint32, uint64:
		p.Type = "int"
	case float32, float64:
		p.Type = "float"
	default:
		p.Type = "string"
	}
	return p
}

// compressLayer gzip-compresses and base64-encodes a tile layer's data array
// in place, an optional compressed layer encoding.
func compressLayer(l *TMJLayer) error {
	data, ok := l.Data.([]uint32)
	if !ok {
		return fmt.Errorf("layer data is not []uint32")
	}

	buf := new(bytes.Buffer)
	for _, gid := range data {
		buf.WriteByte(byte(gid))
		buf.WriteByte(byte(gid >> 8))
		buf.WriteByte(byte(gid >> 16))
		buf.WriteByte(byte(gid >> 24))
	}

	var compressed bytes.Buffer
	gw := gzip.NewWriter(&compressed)
	if _, err := gw.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := gw.Close(); err != nil {
		return err
	}

	l.Data = base64.StdEncoding.EncodeToString(compressed.Bytes())
	l.Encoding = "base64"
	l.Compression = "gzip"
	return nil
}

// Marshal serializes m to indented JSON.
func Marshal(m *TMJMap) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// SaveToFile exports m to path as indented JSON.
func SaveToFile(m *TMJMap, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Encode writes m to w as indented JSON.
func Encode(m *TMJMap, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
