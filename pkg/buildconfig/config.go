package buildconfig

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ElementConfig names a registered element factory. Overrides maps resource
// ids to image paths; it is parsed but not applied: cmd/tiledmaster builds
// every element with its default descriptors.
type ElementConfig struct {
	Name      string            `yaml:"name"`
	Overrides map[string]string `yaml:"overrides,omitempty"` // resource id -> image path override
}

// BuildConfig is the fully-resolved map template: dimensions, layer count,
// seed, and the ordered element list a Builder will run.
type BuildConfig struct {
	MapID    string          `yaml:"mapId"`
	Width    int             `yaml:"width"`
	Height   int             `yaml:"height"`
	Layers   int             `yaml:"layers"`
	Seed     uint64          `yaml:"seed"`
	Elements []ElementConfig `yaml:"elements"`
}

// Load reads and validates a BuildConfig from path. A zero Seed is replaced
// with one drawn from crypto/rand before validation, so the returned config
// always carries a concrete, reproducible seed the caller can log.
func Load(path string) (*BuildConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("buildconfig: reading %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a BuildConfig from a YAML byte slice.
func LoadFromBytes(data []byte) (*BuildConfig, error) {
	var cfg BuildConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("buildconfig: parsing YAML: %w", err)
	}

	if cfg.Seed == 0 {
		seed, err := randomSeed()
		if err != nil {
			return nil, fmt.Errorf("buildconfig: generating seed: %w", err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("buildconfig: validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks field ranges and element-name uniqueness.
func (c *BuildConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Layers <= 0 {
		return errors.New("layers must be positive")
	}
	if len(c.Elements) == 0 {
		return errors.New("at least one element must be specified")
	}

	seen := make(map[string]bool, len(c.Elements))
	for i, e := range c.Elements {
		if e.Name == "" {
			return fmt.Errorf("elements[%d]: name must not be empty", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("elements[%d]: duplicate element name %q", i, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// ToYAML serializes the config back to YAML; Hash digests this output.
func (c *BuildConfig) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic SHA-256 digest of the configuration's YAML
// form (of the seed alone if marshaling fails), usable as the configHash
// argument of rng.NewRNG. The builder and the CLI do not call it.
func (c *BuildConfig) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// randomSeed draws a non-zero seed from crypto/rand when the config omits
// one, so the build always has a concrete, loggable seed.
func randomSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	seed := binary.BigEndian.Uint64(buf[:])
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}
