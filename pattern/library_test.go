package pattern_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amulet/pattern"
)

type entry struct {
	name  string
	lines []string
}

func entries(lib *pattern.Library) []entry {
	out := make([]entry, 0, lib.Len())
	for _, t := range lib.Templates() {
		out = append(out, entry{t.Name, t.Lines()})
	}
	return out
}

// TestDefault_Contents pins the shipped library: flat keys drop the vertical
// triple and quad, and shield collides with quad.
func TestDefault_Contents(t *testing.T) {
	want := []entry{
		{"triple", []string{"888"}},
		{"quad", []string{"8888"}},
		{"sword", []string{" 8 ", "888", " 8 "}},
		{"staff", []string{"88", " 8", " 8"}},
		{"staff", []string{"  8", "888"}},
		{"staff", []string{"8 ", "8 ", "88"}},
		{"staff", []string{"888", "8  "}},
		{"mirror", []string{"888", "8 8", "888"}},
	}
	assert.Equal(t, want, entries(pattern.Default()))
	assert.Equal(t, []string{"triple", "quad", "sword", "staff", "mirror"}, pattern.Default().Names())
	assert.Same(t, pattern.Default(), pattern.Default())
}

// TestBuild_ShapeKeys keeps every structurally distinct rotation.
func TestBuild_ShapeKeys(t *testing.T) {
	lib, err := pattern.Build(pattern.DefaultShapes, pattern.WithShapeKeys())
	require.NoError(t, err)
	want := []entry{
		{"triple", []string{"888"}},
		{"triple", []string{"8", "8", "8"}},
		{"quad", []string{"8888"}},
		{"quad", []string{"8", "8", "8", "8"}},
		{"sword", []string{" 8 ", "888", " 8 "}},
		{"shield", []string{"88", "88"}},
		{"staff", []string{"88", " 8", " 8"}},
		{"staff", []string{"  8", "888"}},
		{"staff", []string{"8 ", "8 ", "88"}},
		{"staff", []string{"888", "8  "}},
		{"mirror", []string{"888", "8 8", "888"}},
	}
	assert.Equal(t, want, entries(lib))
}

// TestBuild_Mirrors appends the mirrored staff and its rotations.
func TestBuild_Mirrors(t *testing.T) {
	lib, err := pattern.Build(pattern.DefaultShapes, pattern.WithMirrors())
	require.NoError(t, err)
	require.Equal(t, 12, lib.Len())
	mirrored := entries(lib)[7:11]
	assert.Equal(t, []entry{
		{"staff", []string{"88", "8 ", "8 "}},
		{"staff", []string{"888", "  8"}},
		{"staff", []string{" 8", " 8", "88"}},
		{"staff", []string{"8  ", "888"}},
	}, mirrored)

	both, err := pattern.Build(pattern.DefaultShapes, pattern.WithMirrors(), pattern.WithShapeKeys())
	require.NoError(t, err)
	assert.Equal(t, 15, both.Len())
}

// TestBuild_NoDuplicateKeys checks the de-duplication property for every policy.
func TestBuild_NoDuplicateKeys(t *testing.T) {
	policies := []struct {
		name  string
		shape bool
		opts  []pattern.BuildOption
	}{
		{"flat", false, nil},
		{"shape", true, []pattern.BuildOption{pattern.WithShapeKeys()}},
		{"flat+mirrors", false, []pattern.BuildOption{pattern.WithMirrors()}},
		{"shape+mirrors", true, []pattern.BuildOption{pattern.WithShapeKeys(), pattern.WithMirrors()}},
	}
	for _, p := range policies {
		t.Run(p.name, func(t *testing.T) {
			lib, err := pattern.Build(pattern.DefaultShapes, p.opts...)
			require.NoError(t, err)
			seen := make(map[string]bool)
			for _, tpl := range lib.Templates() {
				key := tpl.Flat()
				if p.shape {
					key = fmt.Sprintf("%dx%d:%s", tpl.Rows, tpl.Cols, key)
				}
				require.False(t, seen[key], "duplicate %s", tpl)
				seen[key] = true
			}
		})
	}
}

// TestBuild_SymmetricShape contributes a single entry.
func TestBuild_SymmetricShape(t *testing.T) {
	lib, err := pattern.Build([]pattern.Shape{{Name: "plus", Art: "\n 8\n888\n 8\n"}})
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())
}

// TestBuild_Errors covers the fail-fast configuration checks.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name   string
		shapes []pattern.Shape
		err    error
	}{
		{"Empty", []pattern.Shape{{Name: "e", Art: "\n\n"}}, pattern.ErrEmptyShape},
		{"NoMark", []pattern.Shape{{Name: "blank", Art: "\n   \n"}}, pattern.ErrNoSignificantCells},
		{"Duplicate", []pattern.Shape{{Name: "a", Art: "8"}, {Name: "a", Art: "88"}}, pattern.ErrDuplicateName},
		{"TooWide", []pattern.Shape{{Name: "long", Art: "888888"}}, pattern.ErrTooLarge},
		{"TooTall", []pattern.Shape{{Name: "tall", Art: "8\n8\n8\n8\n8\n8"}}, pattern.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pattern.Build(tc.shapes)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { pattern.WithMark(' ') })
	assert.Panics(t, func() { pattern.WithVariants() })
	assert.Panics(t, func() { pattern.WithVariants(pattern.Identity, nil) })
	assert.Panics(t, func() { pattern.WithBounds(pattern.Bounds(7)) })
}
