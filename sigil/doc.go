// Package sigil finds connected regions of the magic character on an amulet
// grid.
//
// What:
//
//   - Seeds are all magic cells in row-major order.
//   - Each seed starts a depth-first flood fill (up, down, left, right).
//   - One visited set spans the whole pass, so a region reached from an
//     earlier seed is never reported again by a later one.
//   - A region is a Sigil only when its size is strictly greater than the
//     minimum size (default 4).
//
// Coordinates inside a Sigil are in discovery order. The fill uses a fixed
// array stack and reproduces the order of the recursive formulation exactly.
//
// Options:
//
//   - WithMagic(ch):        character forming sigils (default '8').
//   - WithMinSize(n):       exclusive lower bound on size (default 4).
//   - WithConnectivity(c):  Conn4 (default) or Conn8 (adds diagonals).
//
// Complexity:
//
//   - Detect: O(W·H·d) time, d = 4 or 8; no allocation besides results.
package sigil
