// Package rng provides deterministic random number generation for map builds.
//
// # Overview
//
// The RNG type ensures reproducible map generation by deriving stage-specific
// seeds from a master seed. In a build this gives the map cache ("mapcache")
// and each cache copy ("mapcache_copy") independent random sequences while
// maintaining overall determinism; elements draw from the cache's stream and
// auto-tile resolution draws nothing.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for entire generation
//   - stageName: Pipeline stage identifier (e.g., "graph_synthesis")
//   - configHash: Hash of configuration parameters
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG for each build stage:
//
//	configHash := sha256.Sum256([]byte(configJSON))
//	elementRNG := rng.NewRNG(masterSeed, "demo.floor", configHash[:])
//	copyRNG := rng.NewRNG(masterSeed, "mapcache_copy", configHash[:])
//
// Use the RNG for all random decisions in that stage:
//
//	count := elementRNG.IntRange(10, 50)
//	density := elementRNG.Float64Range(0.3, 0.8)
//	if elementRNG.Bool() {
//	    // place an optional variant
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. Create stage-specific RNGs before spawning goroutines and pass
// them explicitly.
//
// # Performance
//
// The underlying math/rand.Rand is highly efficient:
//   - Uint64(): ~2ns per call
//   - Intn():   ~3ns per call
//   - Float64(): ~2ns per call
//
// Creating a new RNG costs ~8µs due to SHA-256 computation.
// Reuse RNG instances within a stage for best performance.
//
// # Weighted choice and noise fields
//
// WeightedChoice draws an item from a slice using a caller-supplied weight
// function, returning ErrEmptyDistribution when every weight is zero. Perlin
// and DoublePerlin generate deterministic, normalized gradient-noise grids for
// generators that want smooth randomness (water placement, density fields)
// instead of independent per-cell draws.
package rng
