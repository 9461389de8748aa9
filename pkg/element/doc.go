// Package element defines the Element protocol: a named contributor that
// declares its resource descriptors up front, then mutates a mapcache.Cache
// once all elements' assets have loaded.
//
// The package-level Registry (Register/Get/List) is grounded on
// pkg/synthesis/synthesizer.go's synthesizer registry: a sync.RWMutex-guarded
// map keyed by name, panicking on duplicate registration, letting a
// BuildConfig name elements without the Builder importing generator packages
// directly.
package element
