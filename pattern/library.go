// SPDX-License-Identifier: MIT
// Package: amulet/pattern
//
// library.go — de-duplicated template library.

package pattern

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/amulet/grid"
)

// Library is the ordered, de-duplicated set of templates. It is read-only
// after Build and safe to share between goroutines.
type Library struct {
	templates []*Template
	keys      KeyMode
}

var defaultLibrary = sync.OnceValue(func() *Library {
	lib, err := Build(DefaultShapes)
	if err != nil {
		panic(fmt.Sprintf("pattern: default library: %v", err))
	}
	return lib
})

// Default returns the library built once from DefaultShapes.
func Default() *Library {
	return defaultLibrary()
}

// Build parses shapes in order and adds each variant whose key is new.
//
// Errors: ErrDuplicateName, ErrEmptyShape, ErrRaggedTemplate,
// ErrNoSignificantCells, ErrTooLarge.
func Build(shapes []Shape, opts ...BuildOption) (*Library, error) {
	cfg := newBuildConfig(opts...)
	lib := &Library{keys: cfg.keys}
	names := make(map[string]struct{}, len(shapes))
	seen := make(map[string]struct{})

	for _, s := range shapes {
		if _, dup := names[s.Name]; dup {
			return nil, patternErrorf("Build", s.Name, ErrDuplicateName)
		}
		names[s.Name] = struct{}{}

		base, err := ParseShape(s, cfg.mark)
		if err != nil {
			return nil, err
		}
		if base.Rows > grid.Side || base.Cols > grid.Side {
			return nil, patternErrorf("Build", s.Name, ErrTooLarge)
		}

		for _, seed := range cfg.variants {
			for _, v := range variants(seed(base)) {
				key := lib.key(v)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				lib.templates = append(lib.templates, v)
			}
		}
	}

	return lib, nil
}

func (l *Library) key(t *Template) string {
	if l.keys == KeyShape {
		return t.shapeKey()
	}
	return t.flatKey()
}

// Len returns the number of templates.
func (l *Library) Len() int {
	return len(l.templates)
}

// At returns the i-th template in library order.
func (l *Library) At(i int) *Template {
	return l.templates[i]
}

// Templates returns the templates in library order. The slice is a copy;
// the templates themselves are shared and immutable.
func (l *Library) Templates() []*Template {
	out := make([]*Template, len(l.templates))
	copy(out, l.templates)
	return out
}

// Names returns the distinct shape names in library order.
func (l *Library) Names() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, t := range l.templates {
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		names = append(names, t.Name)
	}

	return names
}
