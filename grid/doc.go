// Package grid lays a digest out as a 5×5 row-major character grid.
//
// Grid is a flat [25]byte value, so it copies cheaply and can never alias
// another grid. Cell (row, col) lives at index row*Side+col.
package grid
