// Package sorting orders filtered collections for display. Sorting always
// returns a fresh slice so the original load order stays recoverable, is
// stable for equal keys, and compares strings with French collation so
// accented names order correctly.
package sorting

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction int

// Directions.
const (
	Ascending Direction = iota
	Descending
)

var collator = collate.New(language.French)

// CompareStrings compares two strings with French collation.
func CompareStrings(a, b string) int {
	return collator.CompareString(a, b)
}

// Field is a sortable field of T: a name, the field's default direction
// (descending for amount/recency style fields, ascending for alphabetic
// ones) and an ascending comparison.
type Field[T any] struct {
	Name    string
	Default Direction
	Cmp     func(a, b T) int
}

// Set is the sortable fields of an entity, keyed by field name.
type Set[T any] map[string]Field[T]

// NewSet builds a Set from fields.
func NewSet[T any](fields ...Field[T]) Set[T] {
	s := make(Set[T], len(fields))
	for _, f := range fields {
		s[f.Name] = f
	}
	return s
}

// Sort returns a new slice ordered by the named field in the given
// direction. Unknown fields return an unchanged copy. The sort is stable:
// equal keys keep their original relative order in either direction.
func (s Set[T]) Sort(items []T, field string, dir Direction) []T {
	out := slices.Clone(items)
	f, ok := s[field]
	if !ok {
		return out
	}
	cmp := f.Cmp
	if dir == Descending {
		cmp = func(a, b T) int { return -f.Cmp(a, b) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// State tracks the active sort selection of one list view.
type State struct {
	Field     string
	Direction Direction
}

// Toggle applies the selection rule: choosing a new field resets the
// direction to that field's default; re-selecting the current field flips
// the direction.
func (s Set[T]) Toggle(state State, field string) State {
	if state.Field == field {
		if state.Direction == Ascending {
			state.Direction = Descending
		} else {
			state.Direction = Ascending
		}
		return state
	}
	next := State{Field: field}
	if f, ok := s[field]; ok {
		next.Direction = f.Default
	}
	return next
}
