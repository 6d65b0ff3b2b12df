package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/amulet"
	"github.com/katalvlaran/amulet/digest"
	"github.com/katalvlaran/amulet/pattern"
	"github.com/katalvlaran/amulet/sigil"
	"github.com/katalvlaran/amulet/vocab"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Accepted enumeration values.
const (
	BoundsStrict    = "strict"
	BoundsInclusive = "inclusive"

	VariantsRotations = "rotations"
	VariantsMirrors   = "mirrors"

	DedupFlat  = "flat"
	DedupShape = "shape"
)

// Config mirrors the YAML document.
type Config struct {
	Vocabulary   string          `yaml:"vocabulary"`
	Mask         []int           `yaml:"mask"`
	Magic        string          `yaml:"magic"`
	MinSigilSize int             `yaml:"min_sigil_size"`
	Connectivity int             `yaml:"connectivity"`
	Bounds       string          `yaml:"bounds"`
	Variants     string          `yaml:"variants"`
	Dedup        string          `yaml:"dedup"`
	Patterns     []pattern.Shape `yaml:"patterns"`
}

// Default returns the built-in constants.
func Default() *Config {
	shapes := make([]pattern.Shape, len(pattern.DefaultShapes))
	copy(shapes, pattern.DefaultShapes)

	return &Config{
		Vocabulary:   vocab.DefaultAlphabet,
		Mask:         digest.DefaultMask.Slice(),
		Magic:        string(sigil.DefaultMagic),
		MinSigilSize: sigil.DefaultMinSize,
		Connectivity: 4,
		Bounds:       BoundsStrict,
		Variants:     VariantsRotations,
		Dedup:        DedupFlat,
		Patterns:     shapes,
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates YAML bytes.
func Parse(data []byte) (*Config, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads YAML from r over the defaults and validates the result.
// An empty document yields Default().
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field that does not depend on the hash function.
func (c *Config) Validate() error {
	if _, err := vocab.New(c.Vocabulary); err != nil {
		return invalid("vocabulary", err)
	}
	if _, err := digest.NewMask(c.Mask); err != nil {
		return invalid("mask", err)
	}
	if len(c.Magic) != 1 {
		return invalid("magic", fmt.Errorf("want one character, got %q", c.Magic))
	}
	if m := c.Magic[0]; !(m >= '0' && m <= '9') && !(m >= 'a' && m <= 'f') {
		return invalid("magic", amulet.ErrMagicNotHex)
	}
	if c.MinSigilSize < 0 {
		return invalid("min_sigil_size", fmt.Errorf("must be >= 0, got %d", c.MinSigilSize))
	}
	if _, err := c.connectivity(); err != nil {
		return invalid("connectivity", err)
	}
	if _, err := c.bounds(); err != nil {
		return invalid("bounds", err)
	}
	if _, err := c.Library(); err != nil {
		return invalid("patterns", err)
	}

	return nil
}

func invalid(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, field, err)
}

func (c *Config) connectivity() (sigil.Connectivity, error) {
	switch c.Connectivity {
	case 4:
		return sigil.Conn4, nil
	case 8:
		return sigil.Conn8, nil
	}
	return 0, fmt.Errorf("want 4 or 8, got %d", c.Connectivity)
}

func (c *Config) bounds() (pattern.Bounds, error) {
	switch c.Bounds {
	case BoundsStrict:
		return pattern.BoundsStrict, nil
	case BoundsInclusive:
		return pattern.BoundsInclusive, nil
	}
	return 0, fmt.Errorf("want %q or %q, got %q", BoundsStrict, BoundsInclusive, c.Bounds)
}

// Library builds the pattern library described by the config.
func (c *Config) Library() (*pattern.Library, error) {
	var opts []pattern.BuildOption
	switch c.Variants {
	case VariantsRotations:
	case VariantsMirrors:
		opts = append(opts, pattern.WithMirrors())
	default:
		return nil, fmt.Errorf("variants: want %q or %q, got %q", VariantsRotations, VariantsMirrors, c.Variants)
	}
	switch c.Dedup {
	case DedupFlat:
	case DedupShape:
		opts = append(opts, pattern.WithShapeKeys())
	default:
		return nil, fmt.Errorf("dedup: want %q or %q, got %q", DedupFlat, DedupShape, c.Dedup)
	}

	return pattern.Build(c.Patterns, opts...)
}

// Options converts a validated config into deriver options.
func (c *Config) Options() ([]amulet.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	v, _ := vocab.New(c.Vocabulary)
	mask, _ := digest.NewMask(c.Mask)
	conn, _ := c.connectivity()
	bounds, _ := c.bounds()
	lib, _ := c.Library()

	return []amulet.Option{
		amulet.WithVocabulary(v),
		amulet.WithMask(mask),
		amulet.WithMagic(c.Magic[0]),
		amulet.WithMinSigilSize(c.MinSigilSize),
		amulet.WithConnectivity(conn),
		amulet.WithBounds(bounds),
		amulet.WithLibrary(lib),
	}, nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
