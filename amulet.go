package amulet

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/amulet/digest"
	"github.com/katalvlaran/amulet/grid"
	"github.com/katalvlaran/amulet/pattern"
	"github.com/katalvlaran/amulet/sigil"
)

// Amulet is the derivation result for one poem. Every Derive call builds a
// fresh value; nothing is shared with other results except the read-only
// templates referenced by Matches.
type Amulet struct {
	Poem       string
	Normalized string
	Digest     digest.Digest
	Grid       grid.Grid
	Sigils     []sigil.Sigil
	Matches    []pattern.Match
}

// Square renders the digest as five newline-terminated rows.
func (a *Amulet) Square() string {
	return grid.Square(a.Digest)
}

// HasSigils reports whether at least one sigil was found.
func (a *Amulet) HasSigils() bool {
	return len(a.Sigils) > 0
}

// HasMatches reports whether at least one pattern matched.
func (a *Amulet) HasMatches() bool {
	return len(a.Matches) > 0
}

// String renders the square followed by one line per sigil and match.
func (a *Amulet) String() string {
	var b strings.Builder
	b.WriteString(a.Square())
	for _, s := range a.Sigils {
		fmt.Fprintf(&b, "sigil %s\n", s)
	}
	for _, m := range a.Matches {
		fmt.Fprintf(&b, "pattern %s\n", m)
	}

	return b.String()
}
