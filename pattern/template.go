// SPDX-License-Identifier: MIT
// Package: amulet/pattern
//
// template.go — parsed shape grids.

package pattern

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/amulet/grid"
)

// Template is an immutable rectangular mask. Cells equal to the mark are
// significant; all others are wildcards.
type Template struct {
	Name       string
	Rows, Cols int

	cells []byte       // row-major, as authored
	mark  byte         // significance marker
	sig   []grid.Coord // significant cells, row-major
}

// ParseShape turns art into a Template, padding short rows with spaces.
// One leading and one trailing newline are stripped first.
func ParseShape(s Shape, mark byte) (*Template, error) {
	art := strings.TrimPrefix(s.Art, "\n")
	art = strings.TrimSuffix(art, "\n")
	if art == "" {
		return nil, patternErrorf("ParseShape", s.Name, ErrEmptyShape)
	}
	lines := strings.Split(art, "\n")
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", width-len(l))
	}

	return NewTemplate(s.Name, lines, mark)
}

// NewTemplate builds a Template from rows that must all share one length.
func NewTemplate(name string, rows []string, mark byte) (*Template, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, patternErrorf("NewTemplate", name, ErrEmptyShape)
	}
	cols := len(rows[0])
	cells := make([]byte, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewTemplate(%q): row %d has %d cells, want %d: %w",
				name, i, len(row), cols, ErrRaggedTemplate)
		}
		cells = append(cells, row...)
	}

	return newTemplate(name, len(rows), cols, cells, mark)
}

func newTemplate(name string, rows, cols int, cells []byte, mark byte) (*Template, error) {
	t := &Template{Name: name, Rows: rows, Cols: cols, cells: cells, mark: mark}
	for i, c := range cells {
		if c == mark {
			t.sig = append(t.sig, grid.Coord{Row: i / cols, Col: i % cols})
		}
	}
	if len(t.sig) == 0 {
		return nil, patternErrorf("NewTemplate", name, ErrNoSignificantCells)
	}

	return t, nil
}

// At returns the authored character at (row, col).
func (t *Template) At(row, col int) byte {
	return t.cells[row*t.Cols+col]
}

// Significant reports whether (row, col) must match the target.
func (t *Template) Significant(row, col int) bool {
	return t.At(row, col) == t.mark
}

// SignificantCells returns a copy of the significant coordinates.
func (t *Template) SignificantCells() []grid.Coord {
	out := make([]grid.Coord, len(t.sig))
	copy(out, t.sig)
	return out
}

// Lines returns the template rows as strings.
func (t *Template) Lines() []string {
	lines := make([]string, t.Rows)
	for r := range lines {
		lines[r] = string(t.cells[r*t.Cols : (r+1)*t.Cols])
	}

	return lines
}

// Flat returns the cells concatenated row by row.
func (t *Template) Flat() string {
	return string(t.cells)
}

// String renders the template as "name RxC" followed by its rows.
func (t *Template) String() string {
	return fmt.Sprintf("%s %dx%d\n%s", t.Name, t.Rows, t.Cols, strings.Join(t.Lines(), "\n"))
}

func (t *Template) flatKey() string {
	return t.Flat()
}

func (t *Template) shapeKey() string {
	return fmt.Sprintf("%dx%d:%s", t.Rows, t.Cols, t.cells)
}
