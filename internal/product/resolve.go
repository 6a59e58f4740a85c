package product

import (
	"product-categories/internal/category"
	"product-categories/internal/user"
)

// Resolve joins every product with its category and that category's owner.
// The result has one entry per product, in product order.
func Resolve(products []Product, categories []category.Category, users []user.User) ([]EnrichedProduct, error) {
	categoryByID := make(map[int]category.Category, len(categories))
	for _, c := range categories {
		if _, ok := categoryByID[c.ID]; !ok {
			categoryByID[c.ID] = c
		}
	}

	userByID := make(map[int]user.User, len(users))
	for _, u := range users {
		if _, ok := userByID[u.ID]; !ok {
			userByID[u.ID] = u
		}
	}

	enriched := make([]EnrichedProduct, 0, len(products))
	for _, p := range products {
		c, ok := categoryByID[p.CategoryID]
		if !ok {
			return nil, &IntegrityError{Entity: "product", EntityID: p.ID, Ref: "category", RefID: p.CategoryID}
		}

		u, ok := userByID[c.OwnerID]
		if !ok {
			return nil, &IntegrityError{Entity: "category", EntityID: c.ID, Ref: "user", RefID: c.OwnerID}
		}

		enriched = append(enriched, EnrichedProduct{Product: p, Category: c, User: u})
	}

	return enriched, nil
}
