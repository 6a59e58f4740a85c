package product

import "strings"

// Filter keeps the items that pass every active predicate of state.
// The result is never nil.
func Filter(items []EnrichedProduct, state FilterState) []EnrichedProduct {
	query := state.normalizedQuery()

	var titles map[string]struct{}
	if len(state.SelectedCategories) > 0 {
		titles = make(map[string]struct{}, len(state.SelectedCategories))
		for _, t := range state.SelectedCategories {
			titles[t] = struct{}{}
		}
	}

	out := make([]EnrichedProduct, 0, len(items))
	for _, item := range items {
		// Owners are matched by name, not id.
		if state.SelectedUser != nil && item.User.Name != state.SelectedUser.Name {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		if titles != nil {
			if _, ok := titles[item.Category.Title]; !ok {
				continue
			}
		}
		out = append(out, item)
	}

	return out
}
