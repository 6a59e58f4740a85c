package product

import (
	"product-categories/internal/category"
	"product-categories/internal/user"
)

type Product struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	CategoryID int    `json:"categoryId" yaml:"categoryId"`
}

// EnrichedProduct is a product joined with its category and the category's owner.
type EnrichedProduct struct {
	Product
	Category category.Category `json:"category"`
	User     user.User         `json:"user"`
}
