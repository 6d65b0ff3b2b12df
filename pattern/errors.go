// SPDX-License-Identifier: MIT
// Package: amulet/pattern
//
// errors.go — sentinel errors for the pattern package.
//
// Callers branch with errors.Is; constructors add context with %w.

package pattern

import (
	"errors"
	"fmt"
)

// ErrEmptyShape indicates art with no rows or no columns.
var ErrEmptyShape = errors.New("pattern: shape art is empty")

// ErrRaggedTemplate indicates template rows of differing lengths.
var ErrRaggedTemplate = errors.New("pattern: all template rows must have the same length")

// ErrNoSignificantCells indicates a template without any mark cell; it would
// match everywhere.
var ErrNoSignificantCells = errors.New("pattern: template has no significant cells")

// ErrDuplicateName indicates two shapes sharing a name.
var ErrDuplicateName = errors.New("pattern: duplicate shape name")

// ErrTooLarge indicates a template that cannot fit inside the grid.
var ErrTooLarge = errors.New("pattern: template larger than the grid")

// patternErrorf prefixes a wrapped sentinel with the method and shape name.
func patternErrorf(method, name string, err error) error {
	return fmt.Errorf("%s(%q): %w", method, name, err)
}
