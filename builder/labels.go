// SPDX-License-Identifier: MIT
// Package: homalg/builder
//
// labels.go: vertex label schemes. A LabelFn maps a vertex id to its display
// name; it must be pure so that rendered complexes are reproducible.

package builder

import (
	"fmt"
	"strconv"
)

// LabelFn renders vertex id idx.
type LabelFn func(idx int) string

// DefaultLabelFn renders the decimal id: 0→"0", 42→"42".
func DefaultLabelFn(idx int) string { return strconv.Itoa(idx) }

// SymbolLabelFn renders ids 0..25 as "A".."Z"; larger ids fall back to
// spreadsheet-style names ("AA", "AB", …). Panics on a negative id.
func SymbolLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("SymbolLabelFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixLabelFn renders prefix + decimal id, e.g. "v0", "v1".
func PrefixLabelFn(prefix string) LabelFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbolLabels is WithLabelScheme(SymbolLabelFn).
func WithSymbolLabels() BuilderOption { return WithLabelScheme(SymbolLabelFn) }

// WithPrefixLabels is WithLabelScheme(PrefixLabelFn(prefix)).
func WithPrefixLabels(prefix string) BuilderOption {
	return WithLabelScheme(PrefixLabelFn(prefix))
}
