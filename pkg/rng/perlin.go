package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand"
)

// deriveFieldSeed derives a noise-field sub-seed from a base seed and a label,
// using the same SHA-256 scheme NewRNG uses to isolate pipeline stages. It
// lets DoublePerlin produce two independent-looking fields from one seed
// without taking a second seed parameter.
func deriveFieldSeed(seed uint64, label string) uint64 {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	h.Write(buf[:])
	h.Write([]byte(label))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

// permutation is a doubled 0..255 permutation table, shuffled deterministically
// from seed, used to avoid index-wrapping checks in grad lookups.
type permutation [512]int

func newPermutation(seed uint64) permutation {
	var base [256]int
	for i := range base {
		base[i] = i
	}
	src := rand.New(rand.NewSource(int64(seed)))
	src.Shuffle(len(base), func(i, j int) { base[i], base[j] = base[j], base[i] })

	var p permutation
	for i := 0; i < 512; i++ {
		p[i] = base[i%256]
	}
	return p
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad maps the low 3 bits of hash to one of 8 gradient directions and
// returns its dot product with (x, y).
func grad(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}

// sample2D evaluates classic Perlin noise at (x, y) using fade interpolation
// and bilinear blending of the four corner gradients, returning a value in
// roughly [-1, 1].
func (p permutation) sample2D(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := p[p[xi]+yi]
	ab := p[p[xi]+yi+1]
	ba := p[p[xi+1]+yi]
	bb := p[p[xi+1]+yi+1]

	x1 := lerp(u, grad(aa, xf, yf), grad(ba, xf-1, yf))
	x2 := lerp(u, grad(ab, xf, yf-1), grad(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// normalize rescales a grid of values in place so its min maps to 0.0 and its
// max maps to 1.0. A flat field (min == max) maps entirely to 0.5.
func normalize(field [][]float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range field {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	spread := max - min
	for _, row := range field {
		for x, v := range row {
			if spread == 0 {
				row[x] = 0.5
				continue
			}
			row[x] = (v - min) / spread
		}
	}
}

// Perlin generates an h x w grid (row-major: field[y][x]) of fractal Perlin
// noise, normalized to [0, 1]. scale controls feature size (larger = smoother);
// octaves sums that many noise layers with frequency doubling and amplitude
// halving per octave. Reproducible: identical (w, h, seed, scale, octaves)
// always yields a bit-identical grid.
func Perlin(w, h int, seed uint64, scale float64, octaves int) [][]float64 {
	if scale <= 0 {
		scale = 1
	}
	if octaves < 1 {
		octaves = 1
	}

	perm := newPermutation(seed)
	field := make([][]float64, h)
	for y := 0; y < h; y++ {
		field[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			var sum, amp, freq, ampSum float64
			amp, freq = 1, 1
			for o := 0; o < octaves; o++ {
				nx := float64(x) / scale * freq
				ny := float64(y) / scale * freq
				sum += perm.sample2D(nx, ny) * amp
				ampSum += amp
				amp *= 0.5
				freq *= 2
			}
			field[y][x] = sum / ampSum
		}
	}

	normalize(field)
	return field
}

// DoublePerlin returns the pointwise mean of two independent Perlin fields
// sampled at scale1 and scale2, renormalized to [0, 1]. The second field is
// derived from seed via a fixed label so callers need supply only one seed.
func DoublePerlin(w, h int, seed uint64, scale1, scale2 float64) [][]float64 {
	a := Perlin(w, h, seed, scale1, 1)
	b := Perlin(w, h, deriveFieldSeed(seed, "double_perlin_b"), scale2, 1)

	field := make([][]float64, h)
	for y := 0; y < h; y++ {
		field[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			field[y][x] = (a[y][x] + b[y][x]) / 2
		}
	}

	normalize(field)
	return field
}
