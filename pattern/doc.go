// SPDX-License-Identifier: MIT
// Package: amulet/pattern
//
// Package pattern builds the library of hand-authored shapes and slides it
// over amulet grids.
//
// What:
//
//   - Shape is a named piece of ASCII art; the mark character ('8') makes a
//     cell significant, anything else is a wildcard.
//   - Build parses every shape, adds it to the Library, then adds its three
//     successive 90° clockwise rotations. A variant is skipped when its key
//     is already present anywhere in the library.
//   - Matcher tests every template at every allowed top-left offset and
//     records a Match when all significant cells land on the target.
//
// Keys:
//
//   - Flat keys (default) are the cells concatenated row by row with no
//     dimensions. They reproduce historical output: the vertical triple and
//     quad collapse onto their horizontal forms and "shield" (88/88) collides
//     with "quad" (8888), so the default library holds 8 templates.
//   - WithShapeKeys prefixes the dimensions, giving 11 templates.
//
// Bounds:
//
//   - BoundsStrict (default) attempts offset (y,x) only while y+h < 5 and
//     x+w < 5, so a template never touches the last row or column.
//   - BoundsInclusive uses <= and also scans the bottom row and right column.
//
// Mirror is available as a transform; WithMirrors adds mirrored variants and
// their rotations after the plain rotations.
package pattern
