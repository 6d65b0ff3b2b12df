package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amulet/digest"
	"github.com/katalvlaran/amulet/grid"
)

const fixture = "88371588ae28e47dbd55fed00"

func mustDigest(t *testing.T, s string) digest.Digest {
	t.Helper()
	d, err := digest.Parse(s)
	require.NoError(t, err)
	return d
}

// TestFromDigest_RowMajor checks grid[y][x] == digest[y*5+x] for every cell.
func TestFromDigest_RowMajor(t *testing.T) {
	d := mustDigest(t, fixture)
	g := grid.FromDigest(d)
	for y := 0; y < grid.Side; y++ {
		for x := 0; x < grid.Side; x++ {
			assert.Equal(t, fixture[y*grid.Side+x], g.At(y, x), "cell (%d,%d)", y, x)
		}
	}
	assert.Equal(t, []string{"88371", "588ae", "28e47", "dbd55", "fed00"}, g.Rows())
	assert.Equal(t, "88371\n588ae\n28e47\ndbd55\nfed00", g.String())
	assert.Equal(t, 6, g.Count('8'))
}

// TestSquare renders five rows, each newline terminated.
func TestSquare(t *testing.T) {
	d := mustDigest(t, fixture)
	assert.Equal(t, "88371\n588ae\n28e47\ndbd55\nfed00\n", grid.Square(d))
}

// TestFromRows covers the fixture constructor and its shape checks.
func TestFromRows(t *testing.T) {
	g, ok := grid.FromRows("88371", "588ae", "28e47", "dbd55", "fed00")
	require.True(t, ok)
	assert.Equal(t, grid.FromDigest(mustDigest(t, fixture)), g)

	_, ok = grid.FromRows("88371", "588ae")
	assert.False(t, ok)
	_, ok = grid.FromRows("8837", "588ae", "28e47", "dbd55", "fed00")
	assert.False(t, ok)
}

// TestIndexCoordRoundTrip maps every index to a coordinate and back.
func TestIndexCoordRoundTrip(t *testing.T) {
	for i := 0; i < grid.Cells; i++ {
		c := grid.CoordOf(i)
		require.True(t, grid.InBounds(c.Row, c.Col))
		assert.Equal(t, i, grid.Index(c))
	}
	assert.Equal(t, grid.Coord{Row: 4, Col: 2}, grid.CoordOf(22))
}

func TestInBounds(t *testing.T) {
	assert.True(t, grid.InBounds(0, 0))
	assert.True(t, grid.InBounds(4, 4))
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		assert.False(t, grid.InBounds(c[0], c[1]), "(%d,%d)", c[0], c[1])
	}
}

func TestFill(t *testing.T) {
	g := grid.Fill('8')
	assert.Equal(t, grid.Cells, g.Count('8'))
}
