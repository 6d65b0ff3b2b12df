package sigil

import "github.com/katalvlaran/amulet/grid"

// Neighbour offsets as (dRow, dCol), in visiting order.
var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Detector finds sigils on a grid. It is immutable once built and safe for
// concurrent use; all scratch state lives on the stack of Detect.
type Detector struct {
	magic   byte
	minSize int
	conn    Connectivity
	offsets [][2]int
}

// NewDetector returns a Detector with defaults '8', 4 and Conn4, then
// applies opts in order.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		magic:   DefaultMagic,
		minSize: DefaultMinSize,
		conn:    Conn4,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.offsets = offsets4
	if d.conn == Conn8 {
		d.offsets = offsets8
	}

	return d
}

// Magic returns the sigil character.
func (d *Detector) Magic() byte { return d.magic }

// MinSize returns the exclusive size threshold.
func (d *Detector) MinSize() int { return d.minSize }

// Connectivity returns the neighbourhood in use.
func (d *Detector) Connectivity() Connectivity { return d.conn }

// Seeds returns every cell equal to magic in row-major order.
func Seeds(g grid.Grid, magic byte) []grid.Coord {
	var seeds []grid.Coord
	for i, c := range g {
		if c == magic {
			seeds = append(seeds, grid.CoordOf(i))
		}
	}

	return seeds
}

// Detect returns the sigils of g ordered by their first seed.
// Each maximal region is reported at most once.
func (d *Detector) Detect(g grid.Grid) []Sigil {
	var (
		visited [grid.Cells]bool
		members [grid.Cells]grid.Coord
		// every visited cell pushes at most len(offsets) entries
		stack [1 + 8*grid.Cells]int
		out   []Sigil
	)

	for seed, c := range g {
		if c != d.magic {
			continue
		}
		// A seed already absorbed by an earlier hunt yields size 0.
		size := 0
		top := 0
		stack[top] = seed
		top++
		for top > 0 {
			top--
			i := stack[top]
			if visited[i] || g[i] != d.magic {
				continue
			}
			visited[i] = true
			at := grid.CoordOf(i)
			members[size] = at
			size++
			// Push in reverse so the first offset is popped first.
			for k := len(d.offsets) - 1; k >= 0; k-- {
				r, col := at.Row+d.offsets[k][0], at.Col+d.offsets[k][1]
				if !grid.InBounds(r, col) {
					continue
				}
				n := r*grid.Side + col
				if !visited[n] && g[n] == d.magic {
					stack[top] = n
					top++
				}
			}
		}

		if size > d.minSize {
			coords := make([]grid.Coord, size)
			copy(coords, members[:size])
			out = append(out, Sigil{Size: size, Coords: coords})
		}
	}

	return out
}
