package web

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"product-categories/internal/product"
	"product-categories/internal/user"
)

var ErrInvalidFilter = errors.New("invalid filter")

// Query parameters carrying the filter state.
const (
	paramUser     = "user"
	paramQuery    = "query"
	paramCategory = "category"
	paramSort     = "sort"
	paramOrder    = "order"
)

// UserFinder resolves the user id carried in the URL.
type UserFinder interface {
	FindUser(ctx context.Context, id int) (*user.User, error)
}

// ParseState decodes a FilterState from URL query parameters.
func ParseState(ctx context.Context, q url.Values, users UserFinder) (product.FilterState, error) {
	var state product.FilterState

	if raw := q.Get(paramUser); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return product.FilterState{}, fmt.Errorf("%w: user must be an integer id, got %q", ErrInvalidFilter, raw)
		}
		u, err := users.FindUser(ctx, id)
		if err != nil {
			return product.FilterState{}, err
		}
		state = state.WithUser(u)
	}

	state = state.WithQuery(q.Get(paramQuery))

	for _, title := range q[paramCategory] {
		if title == "" || state.IsCategorySelected(title) {
			continue
		}
		state = state.ToggleCategory(title)
	}

	field, err := product.ParseSortField(q.Get(paramSort))
	if err != nil {
		return product.FilterState{}, err
	}
	direction, err := product.ParseSortDirection(q.Get(paramOrder))
	if err != nil {
		return product.FilterState{}, err
	}
	if field != product.SortFieldNone {
		if direction == product.SortDirectionNone {
			direction = product.SortDirectionAsc
		}
		state.Sort = product.SortState{Field: field, Direction: direction}
	}

	return state, nil
}

// EncodeState is the inverse of ParseState.
func EncodeState(s product.FilterState) url.Values {
	q := url.Values{}
	if s.SelectedUser != nil {
		q.Set(paramUser, strconv.Itoa(s.SelectedUser.ID))
	}
	if s.Query != "" {
		q.Set(paramQuery, s.Query)
	}
	if len(s.SelectedCategories) > 0 {
		q[paramCategory] = slices.Clone(s.SelectedCategories)
	}
	if s.Sort.IsSorted() {
		q.Set(paramSort, string(s.Sort.Field))
		q.Set(paramOrder, string(s.Sort.Direction))
	}
	return q
}

// href links to the page showing s.
func href(s product.FilterState) string {
	q := EncodeState(s)
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
