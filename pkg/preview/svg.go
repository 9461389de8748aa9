package preview

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/RPGGO-AI/TiledMaster-OP/pkg/mapcache"
)

// Options configures the debug raster.
type Options struct {
	CellSize int // pixels per grid cell; defaults to 16
	Title    string
}

// palette assigns a deterministic color per layer index so the same cache
// always renders identically (spec invariant 1 extends to this debug aid).
var palette = []string{
	"#6b8e23", "#8b4513", "#4682b4", "#cd5c5c",
	"#daa520", "#9370db", "#20b2aa", "#ff69b4",
}

func colorFor(layer int) string {
	return palette[layer%len(palette)]
}

// Render flattens cache into an SVG byte buffer: one rect per occupied cell,
// layers drawn in ascending order so higher layers paint over lower ones,
// collision/cover layers skipped (they carry no renderable artwork of their
// own, only obstacle/cover markers derived from other layers).
func Render(cache *mapcache.Cache, opts Options) ([]byte, error) {
	if cache == nil {
		return nil, fmt.Errorf("preview: cache is nil")
	}
	cellSize := opts.CellSize
	if cellSize <= 0 {
		cellSize = 16
	}

	w, h, layers := cache.Dimensions()
	canvasW := w * cellSize
	canvasH := h * cellSize

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(canvasW, canvasH)
	canvas.Rect(0, 0, canvasW, canvasH, "fill:#101014")

	if opts.Title != "" {
		canvas.Text(10, 20, opts.Title, "fill:#ffffff;font-size:16px")
	}

	for l := 0; l < layers; l++ {
		if l == cache.CollisionLayer || l == cache.CoverLayer {
			continue
		}
		color := colorFor(l)
		for _, ref := range cache.GetLayer(l) {
			style := fmt.Sprintf("fill:%s;stroke:#000000;stroke-width:1", color)
			canvas.Rect(ref.AnchorX*cellSize, ref.AnchorY*cellSize, ref.Width*cellSize, ref.Height*cellSize, style)
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders cache and writes the SVG to path.
func SaveToFile(cache *mapcache.Cache, path string, opts Options) error {
	data, err := Render(cache, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
