// SPDX-License-Identifier: MIT
// Package: amulet/pattern
//
// shapes.go — the built-in shape table (data only).
//
// Art is written between a leading and a trailing newline; short rows are
// padded with spaces to the widest row. Order matters: it is library order.

package pattern

// DefaultMark is the character that makes a template cell significant.
const DefaultMark byte = '8'

// Shape is a named piece of ASCII art.
type Shape struct {
	Name string `yaml:"name"`
	Art  string `yaml:"art"`
}

// DefaultShapes is the shipped shape table.
var DefaultShapes = []Shape{
	{Name: "triple", Art: `
888
`},
	{Name: "quad", Art: `
8888
`},
	{Name: "sword", Art: `
 8
888
 8
`},
	{Name: "shield", Art: `
88
88
`},
	{Name: "staff", Art: `
88
 8
 8
`},
	{Name: "mirror", Art: `
888
8 8
888
`},
}
