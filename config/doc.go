// Package config loads every amulet constant from YAML.
//
// A zero-knowledge caller uses Default(); files only need the keys they
// change, everything else keeps its default:
//
//	vocabulary: "ABCDEFGHIJKLMNOPQRSTUVWXYZ,:—'? \n"
//	mask: [0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
//	       15, 16, 17, 18, 19, 20, 12, 22, 23, 24]
//	magic: "8"
//	min_sigil_size: 4
//	connectivity: 4          # 4 or 8
//	bounds: strict           # strict | inclusive
//	variants: rotations      # rotations | mirrors
//	dedup: flat              # flat | shape
//	patterns:
//	  - name: triple
//	    art: "888"
//
// Unknown keys are rejected. Every validation failure wraps ErrInvalidConfig.
package config
