package sigil

import (
	"fmt"

	"github.com/katalvlaran/amulet/grid"
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals after the orthogonal neighbours.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

const (
	// DefaultMagic is the character whose regions form sigils.
	DefaultMagic byte = '8'
	// DefaultMinSize is the exclusive lower bound on sigil size.
	DefaultMinSize = 4
)

// Sigil is one connected region of magic cells.
type Sigil struct {
	Size   int
	Coords []grid.Coord // discovery order
}

// String formats the sigil as "size=N [(r,c) ...]".
func (s Sigil) String() string {
	return fmt.Sprintf("size=%d %v", s.Size, s.Coords)
}

// Option customizes a Detector.
type Option func(*Detector)

// WithMagic sets the sigil character.
func WithMagic(ch byte) Option {
	return func(d *Detector) {
		d.magic = ch
	}
}

// WithMinSize sets the exclusive size threshold. Panics on negative n.
func WithMinSize(n int) Option {
	if n < 0 {
		panic("sigil: WithMinSize(n<0)")
	}
	return func(d *Detector) {
		d.minSize = n
	}
}

// WithConnectivity selects Conn4 or Conn8. Panics on any other value.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic(fmt.Sprintf("sigil: WithConnectivity(%d)", int(c)))
	}
	return func(d *Detector) {
		d.conn = c
	}
}
