package product

import (
	"golang.org/x/text/language"

	"product-categories/internal/category"
	"product-categories/internal/user"
)

// Prepare runs the join, filter and sort steps over the full dataset.
// An empty, non-nil slice means nothing matched.
func Prepare(
	products []Product,
	categories []category.Category,
	users []user.User,
	state FilterState,
	locale language.Tag,
) ([]EnrichedProduct, error) {
	enriched, err := Resolve(products, categories, users)
	if err != nil {
		return nil, err
	}

	return Sort(Filter(enriched, state), state.Sort, locale), nil
}
