// Package filter narrows already-loaded entity collections. Every screen
// works against the full collection fetched from the API; criteria records
// with all-optional fields select the subset to display. Omitted criteria
// match everything and all supplied criteria are AND-ed.
package filter

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Sodamareme/gestion-loyer-cli/internal/domain"
)

// Apply returns the elements of items matching every predicate. The input
// slice is never mutated; an empty or fully-filtered collection yields an
// empty result, never an error.
func Apply[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// containsFold reports whether any of the fields contains term,
// case-insensitively. An empty term matches everything.
func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// inDecimalRange checks inclusive bounds; a nil bound is ignored. Bounds
// are independent, so min > max legally yields no matches.
func inDecimalRange(v decimal.Decimal, min, max *decimal.Decimal) bool {
	if min != nil && v.LessThan(*min) {
		return false
	}
	if max != nil && v.GreaterThan(*max) {
		return false
	}
	return true
}

// inFloatRange checks inclusive bounds; a nil bound is ignored.
func inFloatRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// inIntRange checks inclusive bounds; a nil bound is ignored.
func inIntRange(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// inDateRange checks inclusive calendar-date bounds; zero bounds are
// ignored. Time of day never participates (domain.Date is day-granular).
func inDateRange(d domain.Date, from, to domain.Date) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}
