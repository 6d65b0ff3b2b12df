// SPDX-License-Identifier: MIT
// Package: amulet/pattern
//
// transform.go — symmetry transforms over templates.
//
// Transforms return new templates and never touch their input.

package pattern

// Transform maps a template to a variant of the same shape.
type Transform func(*Template) *Template

// Rotate turns t 90° clockwise: out[r][c] = t[Rows-1-c][r].
func Rotate(t *Template) *Template {
	rows, cols := t.Cols, t.Rows
	cells := make([]byte, 0, len(t.cells))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, t.At(t.Rows-1-c, r))
		}
	}

	return mustTemplate(t.Name, rows, cols, cells, t.mark)
}

// Mirror flips t horizontally: out[r][c] = t[r][Cols-1-c].
func Mirror(t *Template) *Template {
	cells := make([]byte, 0, len(t.cells))
	for r := 0; r < t.Rows; r++ {
		for c := 0; c < t.Cols; c++ {
			cells = append(cells, t.At(r, t.Cols-1-c))
		}
	}

	return mustTemplate(t.Name, t.Rows, t.Cols, cells, t.mark)
}

// variants returns base followed by its successive rotations.
func variants(base *Template) []*Template {
	out := []*Template{base}
	v := base
	for i := 0; i < 3; i++ {
		v = Rotate(v)
		out = append(out, v)
	}

	return out
}

// mustTemplate rebuilds a template from permuted cells. A permutation keeps
// the significant cell count, so the error path is unreachable.
func mustTemplate(name string, rows, cols int, cells []byte, mark byte) *Template {
	t, err := newTemplate(name, rows, cols, cells, mark)
	if err != nil {
		panic(err)
	}

	return t
}

// Identity returns t unchanged.
func Identity(t *Template) *Template {
	return t
}
