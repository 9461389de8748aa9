// Package builder orchestrates a single map build: resolving every element's
// descriptors, loading assets, instantiating the cache, running elements in
// insertion order, then the Collision and Cover built-in passes and the
// auto-tile resolution pass.
//
// All placement randomness comes from the cache's single RNG stream, seeded
// from the Builder's master seed; no stage gets a separately derived stream.
// context.Context cancellation is checked before asset loading, after it, and
// before each element runs; the Collision, Cover and auto-tile passes run
// without further checks.
package builder
