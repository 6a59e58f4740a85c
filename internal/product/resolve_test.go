package product

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-categories/internal/category"
)

func TestResolve(t *testing.T) {
	t.Run("JoinsCategoryAndOwner", func(t *testing.T) {
		items, err := Resolve(testProducts, testCategories, testUsers)
		require.NoError(t, err)

		assert.Len(t, items, len(testProducts))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(items))

		assert.Equal(t, "Fruits", items[0].Category.Title)
		assert.Equal(t, "Max", items[0].User.Name)
		assert.Equal(t, "Fruits2", items[1].Category.Title)
		assert.Equal(t, "Roma", items[1].User.Name)
		assert.Equal(t, "Anna", items[2].User.Name)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		items, err := Resolve(nil, testCategories, testUsers)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("MissingCategory", func(t *testing.T) {
		_, err := Resolve([]Product{{ID: 9, Name: "Ghost", CategoryID: 99}}, testCategories, testUsers)

		assert.True(t, errors.Is(err, ErrDataIntegrity))

		var ie *IntegrityError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, &IntegrityError{Entity: "product", EntityID: 9, Ref: "category", RefID: 99}, ie)
		assert.Equal(t, "data integrity violation: product 9 references missing category 99", err.Error())
	})

	t.Run("MissingOwner", func(t *testing.T) {
		categories := append([]category.Category{}, testCategories...)
		categories = append(categories, category.Category{ID: 13, Title: "Orphan", OwnerID: 404})

		_, err := Resolve([]Product{{ID: 1, Name: "Thing", CategoryID: 13}}, categories, testUsers)

		var ie *IntegrityError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "category", ie.Entity)
		assert.Equal(t, 13, ie.EntityID)
		assert.Equal(t, "user", ie.Ref)
		assert.Equal(t, 404, ie.RefID)
	})

	t.Run("FirstMatchWinsOnDuplicateIDs", func(t *testing.T) {
		categories := []category.Category{
			{ID: 10, Title: "First", OwnerID: 100},
			{ID: 10, Title: "Second", OwnerID: 101},
		}

		items, err := Resolve([]Product{{ID: 1, Name: "Apple", CategoryID: 10}}, categories, testUsers)
		require.NoError(t, err)
		assert.Equal(t, "First", items[0].Category.Title)
	})
}
