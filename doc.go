// Package amulet turns arbitrary text ("poems") into deterministic 5×5
// symbolic amulets.
//
// What:
//
//   - Normalize the poem (vocab), derive a 25-character digest from two
//     SHA3-512 passes and an index mask (digest), lay it out as a 5×5 grid
//     (grid), find connected regions of the magic character '8' (sigil) and
//     slide a small library of hand-authored shapes over it (pattern).
//   - Deriver wires those stages together; Derive returns one immutable
//     Amulet per poem.
//   - DeriveAll fans a batch of poems out over a bounded worker pool.
//
// Why:
//
//   - Reproducible: the same poem always yields the same amulet, across
//     processes and machines.
//   - Cheap: every stage works on fixed-size data, a derivation is two hash
//     passes plus a few hundred byte comparisons.
//
// Packages:
//
//	vocab/  : text normalization
//	digest/ : two-stage hash and index mask
//	grid/   : 5×5 layout and rendering
//	sigil/  : flood-fill region detection
//	pattern/: shape library and template matching
//	config/ : YAML configuration of every constant
//	cmd/amulet: batch driver
//
// Quick example:
//
//	a := amulet.Derive("Once upon a midnight dreary")
//	fmt.Print(a.Square())
//	fmt.Println(len(a.Sigils), len(a.Matches))
//
// Errors:
//
//   - ErrMagicNotHex: the magic character can never occur in a digest.
//   - digest.ErrShortHash, digest.ErrMaskIndex: mask and hash disagree.
package amulet
