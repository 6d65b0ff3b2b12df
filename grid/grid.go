package grid

import (
	"strings"

	"github.com/katalvlaran/amulet/digest"
)

const (
	// Side is the grid width and height.
	Side = 5
	// Cells is the number of cells in a grid.
	Cells = Side * Side
)

// Coord addresses one cell. Both fields are in [0, Side).
type Coord struct {
	Row, Col int
}

// Grid is an immutable 5×5 matrix of digest characters.
type Grid [Cells]byte

// FromDigest reshapes d so that g[row][col] = d[row*Side+col].
func FromDigest(d digest.Digest) Grid {
	return Grid(d)
}

// FromRows builds a grid from Side strings of Side bytes each.
// It returns false when the shape is wrong. Meant for fixtures and tests.
func FromRows(rows ...string) (Grid, bool) {
	var g Grid
	if len(rows) != Side {
		return g, false
	}
	for r, row := range rows {
		if len(row) != Side {
			return g, false
		}
		copy(g[r*Side:], row)
	}

	return g, true
}

// Fill returns a grid where every cell holds ch.
func Fill(ch byte) Grid {
	var g Grid
	for i := range g {
		g[i] = ch
	}

	return g
}

// InBounds reports whether (row, col) lies inside the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Side && col >= 0 && col < Side
}

// Index maps c to its row-major index.
func Index(c Coord) int {
	return c.Row*Side + c.Col
}

// CoordOf converts a row-major index back to a Coord.
func CoordOf(i int) Coord {
	return Coord{Row: i / Side, Col: i % Side}
}

// At returns the character at (row, col). The caller guarantees bounds.
func (g Grid) At(row, col int) byte {
	return g[row*Side+col]
}

// Count returns how many cells equal ch.
func (g Grid) Count(ch byte) int {
	n := 0
	for _, c := range g {
		if c == ch {
			n++
		}
	}

	return n
}

// Rows returns the grid as Side strings, top to bottom.
func (g Grid) Rows() []string {
	rows := make([]string, Side)
	for r := 0; r < Side; r++ {
		rows[r] = string(g[r*Side : (r+1)*Side])
	}

	return rows
}

// String renders the grid as rows separated by newlines, no trailing newline.
func (g Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Square renders a digest as five 5-character rows, each ending in "\n".
func Square(d digest.Digest) string {
	var b strings.Builder
	b.Grow(Cells + Side)
	for i := 0; i < digest.Size; i += Side {
		b.Write(d[i : i+Side])
		b.WriteByte('\n')
	}

	return b.String()
}
