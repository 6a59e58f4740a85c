package product

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort returns a copy of items ordered by state.Field, reversed when the
// direction is descending. Equal keys keep their input order before the reversal.
func Sort(items []EnrichedProduct, state SortState, locale language.Tag) []EnrichedProduct {
	out := slices.Clone(items)
	if out == nil {
		out = []EnrichedProduct{}
	}
	if !state.IsSorted() {
		return out
	}

	// A Collator keeps internal buffers, so each call gets its own.
	col := collate.New(locale)

	var compare func(a, b EnrichedProduct) int
	switch state.Field {
	case SortFieldID:
		compare = func(a, b EnrichedProduct) int { return cmp.Compare(a.ID, b.ID) }
	case SortFieldProduct:
		compare = func(a, b EnrichedProduct) int { return col.CompareString(a.Name, b.Name) }
	case SortFieldCategory:
		compare = func(a, b EnrichedProduct) int { return col.CompareString(a.Category.Title, b.Category.Title) }
	case SortFieldUser:
		compare = func(a, b EnrichedProduct) int { return col.CompareString(a.User.Name, b.User.Name) }
	default:
		return out
	}

	slices.SortStableFunc(out, compare)

	if state.Direction == SortDirectionDesc {
		slices.Reverse(out)
	}

	return out
}
