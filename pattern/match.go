// SPDX-License-Identifier: MIT
// Package: amulet/pattern
//
// match.go — template sliding over a grid.

package pattern

import (
	"fmt"

	"github.com/katalvlaran/amulet/grid"
)

// Match records a template whose significant cells all equal the target
// when its top-left corner sits at (Row, Col).
type Match struct {
	Template *Template
	Row, Col int
}

// String formats the match as "name@(row,col)".
func (m Match) String() string {
	return fmt.Sprintf("%s@(%d,%d)", m.Template.Name, m.Row, m.Col)
}

// Matcher slides a Library over grids. Immutable and safe for concurrent use.
type Matcher struct {
	lib    *Library
	target byte
	bounds Bounds
}

// NewMatcher returns a Matcher over lib with target DefaultMark and
// BoundsStrict, then applies opts.
func NewMatcher(lib *Library, opts ...MatchOption) *Matcher {
	m := &Matcher{lib: lib, target: DefaultMark, bounds: BoundsStrict}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Library returns the matcher's library.
func (m *Matcher) Library() *Library { return m.lib }

// Target returns the character significant cells must land on.
func (m *Matcher) Target() byte { return m.target }

// Bounds returns the offset scan policy.
func (m *Matcher) Bounds() Bounds { return m.bounds }

// limit returns the exclusive upper bound for a top-left offset along one
// axis for a template extent n.
func (m *Matcher) limit(n int) int {
	if m.bounds == BoundsInclusive {
		return grid.Side - n + 1
	}
	return grid.Side - n
}

// Match returns every match in library order, then row-major offset order.
// Distinct templates may produce overlapping matches; none are filtered.
func (m *Matcher) Match(g grid.Grid) []Match {
	var out []Match
	for _, t := range m.lib.templates {
		maxRow, maxCol := m.limit(t.Rows), m.limit(t.Cols)
		for y := 0; y < maxRow; y++ {
			for x := 0; x < maxCol; x++ {
				if m.fits(g, t, y, x) {
					out = append(out, Match{Template: t, Row: y, Col: x})
				}
			}
		}
	}

	return out
}

// fits reports whether every significant cell of t lands on the target.
func (m *Matcher) fits(g grid.Grid, t *Template, y, x int) bool {
	for _, c := range t.sig {
		if g.At(y+c.Row, x+c.Col) != m.target {
			return false
		}
	}

	return true
}
