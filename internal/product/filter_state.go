package product

import (
	"slices"
	"strings"

	"product-categories/internal/user"
)

// FilterState is everything the viewer lets a user choose. Transitions return
// a new state; SelectedCategories is never modified in place.
type FilterState struct {
	SelectedUser       *user.User
	Query              string
	SelectedCategories []string
	Sort               SortState
}

func (s FilterState) WithUser(u *user.User) FilterState {
	if u != nil {
		cp := *u
		u = &cp
	}
	s.SelectedUser = u
	return s
}

func (s FilterState) WithQuery(q string) FilterState {
	s.Query = q
	return s
}

func (s FilterState) ClearQuery() FilterState {
	return s.WithQuery("")
}

// HasQuery reports whether the search box holds any text.
func (s FilterState) HasQuery() bool {
	return s.Query != ""
}

// ToggleCategory adds title to the selection, or removes it when already selected.
func (s FilterState) ToggleCategory(title string) FilterState {
	selected := slices.Clone(s.SelectedCategories)
	if i := slices.Index(selected, title); i >= 0 {
		selected = slices.Delete(selected, i, i+1)
	} else {
		selected = append(selected, title)
	}
	s.SelectedCategories = selected
	return s
}

func (s FilterState) ClearCategories() FilterState {
	s.SelectedCategories = nil
	return s
}

func (s FilterState) IsCategorySelected(title string) bool {
	return slices.Contains(s.SelectedCategories, title)
}

func (s FilterState) IsUserSelected(u user.User) bool {
	return s.SelectedUser != nil && s.SelectedUser.Name == u.Name
}

func (s FilterState) ToggleSort(f SortField) FilterState {
	s.Sort = s.Sort.Toggle(f)
	return s
}

// Reset clears every filter and the sort.
func (s FilterState) Reset() FilterState {
	return FilterState{}
}

func (s FilterState) normalizedQuery() string {
	return strings.ToLower(strings.TrimSpace(s.Query))
}
