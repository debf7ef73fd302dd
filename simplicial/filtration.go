// SPDX-License-Identifier: MIT

package simplicial

import "fmt"

// Filtration is a nested sequence of complexes K₀ ⊆ K₁ ⊆ … ⊆ Kₙ.
type Filtration struct {
	stages []*Complex
	birth  map[string]int
}

// NewFiltration validates nesting and records birth times.
// Errors: ErrEmptyFiltration, ErrNotNested (wrapped with the offending index).
func NewFiltration(stages ...*Complex) (*Filtration, error) {
	if len(stages) == 0 {
		return nil, ErrEmptyFiltration
	}
	for i := 1; i < len(stages); i++ {
		if !stages[i-1].IsSubcomplexOf(stages[i]) {
			return nil, fmt.Errorf("simplicial: stage %d ⊄ stage %d: %w", i-1, i, ErrNotNested)
		}
	}

	f := &Filtration{stages: make([]*Complex, len(stages)), birth: make(map[string]int)}
	copy(f.stages, stages)
	for t := len(stages) - 1; t >= 0; t-- {
		for key := range stages[t].index {
			f.birth[key] = t
		}
	}

	return f, nil
}

// FromStages builds a filtration whose t-th stage is the closure of every simplex
// listed in additions[0..t]. Nesting holds by construction.
func FromStages(additions ...[]Simplex) (*Filtration, error) {
	if len(additions) == 0 {
		return nil, ErrEmptyFiltration
	}
	stages := make([]*Complex, len(additions))
	var acc []Simplex
	for t, add := range additions {
		acc = append(acc, add...)
		stages[t] = NewComplex(acc)
	}

	return NewFiltration(stages...)
}

// Len returns the number of stages.
func (f *Filtration) Len() int { return len(f.stages) }

// At returns stage t; it panics when t is out of range.
func (f *Filtration) At(t int) *Complex { return f.stages[t] }

// Final returns the last (largest) stage.
func (f *Filtration) Final() *Complex { return f.stages[len(f.stages)-1] }

// BirthTime returns the first stage index containing s.
func (f *Filtration) BirthTime(s Simplex) (int, error) {
	t, ok := f.birth[s.Key()]
	if !ok {
		return 0, fmt.Errorf("simplicial: BirthTime(%s): %w", s, ErrUnknownSimplex)
	}

	return t, nil
}
