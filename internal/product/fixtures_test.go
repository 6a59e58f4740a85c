package product

import (
	"product-categories/internal/category"
	"product-categories/internal/user"
)

var (
	testUsers = []user.User{
		{ID: 100, Name: "Max", Sex: user.SexMale},
		{ID: 101, Name: "Roma", Sex: user.SexMale},
		{ID: 102, Name: "Anna", Sex: user.SexFemale},
	}

	testCategories = []category.Category{
		{ID: 10, Title: "Fruits", Icon: "🍏", OwnerID: 100},
		{ID: 11, Title: "Fruits2", Icon: "🍌", OwnerID: 101},
		{ID: 12, Title: "Drinks", Icon: "🍺", OwnerID: 102},
	}

	testProducts = []Product{
		{ID: 1, Name: "Apple", CategoryID: 10},
		{ID: 2, Name: "Banana", CategoryID: 11},
		{ID: 3, Name: "water", CategoryID: 12},
		{ID: 4, Name: "Mango", CategoryID: 10},
		{ID: 5, Name: "Cola", CategoryID: 12},
	}
)

func mustResolve(products []Product) []EnrichedProduct {
	items, err := Resolve(products, testCategories, testUsers)
	if err != nil {
		panic(err)
	}
	return items
}

func ids(items []EnrichedProduct) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func names(items []EnrichedProduct) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}
