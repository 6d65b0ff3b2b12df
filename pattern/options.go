// SPDX-License-Identifier: MIT
// Package: amulet/pattern
//
// options.go — functional options for Build and NewMatcher.
//
// Option constructors validate and panic on meaningless inputs; Build and
// Match themselves return errors or never fail.

package pattern

import "fmt"

// KeyMode selects how variants are compared during de-duplication.
type KeyMode int

const (
	// KeyFlat compares concatenated cells only.
	KeyFlat KeyMode = iota
	// KeyShape compares dimensions and cells.
	KeyShape
)

// Bounds selects which top-left offsets the matcher attempts.
type Bounds int

const (
	// BoundsStrict attempts (y,x) only while y+h < 5 and x+w < 5.
	BoundsStrict Bounds = iota
	// BoundsInclusive attempts every offset where the template fits.
	BoundsInclusive
)

// String returns "strict" or "inclusive".
func (b Bounds) String() string {
	if b == BoundsInclusive {
		return "inclusive"
	}
	return "strict"
}

// buildConfig aggregates Build knobs.
type buildConfig struct {
	mark     byte
	keys     KeyMode
	variants []Transform // each seeds a rotation sequence
}

// BuildOption customizes Build.
type BuildOption func(*buildConfig)

func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		mark:     DefaultMark,
		keys:     KeyFlat,
		variants: []Transform{Identity},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMark sets the significance marker used when parsing art.
func WithMark(mark byte) BuildOption {
	if mark == ' ' {
		panic("pattern: WithMark(' ')")
	}
	return func(c *buildConfig) {
		c.mark = mark
	}
}

// WithShapeKeys makes de-duplication dimension aware.
func WithShapeKeys() BuildOption {
	return func(c *buildConfig) {
		c.keys = KeyShape
	}
}

// WithVariants replaces the seed transforms. Each transform yields a base
// variant that is added together with its three rotations.
func WithVariants(ts ...Transform) BuildOption {
	if len(ts) == 0 {
		panic("pattern: WithVariants()")
	}
	for i, t := range ts {
		if t == nil {
			panic(fmt.Sprintf("pattern: WithVariants: transform %d is nil", i))
		}
	}
	return func(c *buildConfig) {
		c.variants = append([]Transform(nil), ts...)
	}
}

// WithMirrors adds mirrored variants after the plain rotations.
func WithMirrors() BuildOption {
	return WithVariants(Identity, Mirror)
}

// MatchOption customizes a Matcher.
type MatchOption func(*Matcher)

// WithTarget sets the grid character significant cells must land on.
func WithTarget(ch byte) MatchOption {
	return func(m *Matcher) {
		m.target = ch
	}
}

// WithBounds selects the offset scan policy.
func WithBounds(b Bounds) MatchOption {
	if b != BoundsStrict && b != BoundsInclusive {
		panic(fmt.Sprintf("pattern: WithBounds(%d)", int(b)))
	}
	return func(m *Matcher) {
		m.bounds = b
	}
}
