// Package dataset holds the three read-only collections the catalog is built from.
package dataset

import (
	"fmt"
	"slices"

	"product-categories/internal/category"
	"product-categories/internal/product"
	"product-categories/internal/user"
)

// Dataset is immutable once built. Accessors return copies, so it can be
// shared between goroutines without locking.
type Dataset struct {
	users      []user.User
	categories []category.Category
	products   []product.Product
	userByID   map[int]int
}

// New validates the collections and returns a Dataset that owns copies of them.
// Every product must reach a category and every category an owner.
func New(users []user.User, categories []category.Category, products []product.Product) (*Dataset, error) {
	userByID := make(map[int]int, len(users))
	for i, u := range users {
		if _, ok := userByID[u.ID]; ok {
			return nil, fmt.Errorf("user %d: %w", u.ID, ErrDuplicateID)
		}
		if !u.Sex.Valid() {
			return nil, fmt.Errorf("user %d: %w %q", u.ID, ErrInvalidSex, u.Sex)
		}
		userByID[u.ID] = i
	}

	seen := make(map[int]struct{}, len(categories))
	for _, c := range categories {
		if _, ok := seen[c.ID]; ok {
			return nil, fmt.Errorf("category %d: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
		if _, ok := userByID[c.OwnerID]; !ok {
			return nil, &product.IntegrityError{Entity: "category", EntityID: c.ID, Ref: "user", RefID: c.OwnerID}
		}
	}

	clear(seen)
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("product %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}

	if _, err := product.Resolve(products, categories, users); err != nil {
		return nil, err
	}

	return &Dataset{
		users:      slices.Clone(users),
		categories: slices.Clone(categories),
		products:   slices.Clone(products),
		userByID:   userByID,
	}, nil
}

func (d *Dataset) Users() []user.User {
	return slices.Clone(d.users)
}

func (d *Dataset) Categories() []category.Category {
	return slices.Clone(d.categories)
}

func (d *Dataset) Products() []product.Product {
	return slices.Clone(d.products)
}

// User looks a user up by id.
func (d *Dataset) User(id int) (user.User, bool) {
	i, ok := d.userByID[id]
	if !ok {
		return user.User{}, false
	}
	return d.users[i], true
}
