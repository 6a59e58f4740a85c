package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"product-categories/internal/category"
	"product-categories/internal/user"
)

func TestPrepare(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "Apple", CategoryID: 10},
		{ID: 2, Name: "Banana", CategoryID: 11},
	}
	categories := []category.Category{
		{ID: 10, Title: "Fruits", OwnerID: 100},
		{ID: 11, Title: "Fruits2", OwnerID: 101},
	}
	users := []user.User{
		{ID: 100, Name: "Max"},
		{ID: 101, Name: "Roma"},
	}

	prepare := func(state FilterState) []EnrichedProduct {
		items, err := Prepare(products, categories, users, state, language.English)
		require.NoError(t, err)
		return items
	}

	t.Run("ByOwner", func(t *testing.T) {
		got := prepare(FilterState{SelectedUser: &user.User{Name: "Max"}})
		assert.Equal(t, []int{1}, ids(got))
	})

	t.Run("ByQuery", func(t *testing.T) {
		got := prepare(FilterState{Query: "an"})
		assert.Equal(t, []string{"Banana"}, names(got))
	})

	t.Run("SortToggleCycle", func(t *testing.T) {
		state := FilterState{}.ToggleSort(SortFieldProduct)
		assert.Equal(t, []string{"Apple", "Banana"}, names(prepare(state)))

		state = state.ToggleSort(SortFieldProduct)
		assert.Equal(t, []string{"Banana", "Apple"}, names(prepare(state)))

		state = state.ToggleSort(SortFieldProduct)
		assert.Equal(t, FilterState{}, state)
		assert.Equal(t, []string{"Apple", "Banana"}, names(prepare(state)))
	})

	t.Run("NoMatchIsEmptyNotNil", func(t *testing.T) {
		got := prepare(FilterState{SelectedCategories: []string{"Vegetables"}})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("IntegrityErrorPropagates", func(t *testing.T) {
		_, err := Prepare([]Product{{ID: 3, CategoryID: 12}}, categories, users, FilterState{}, language.English)
		assert.ErrorIs(t, err, ErrDataIntegrity)
	})
}
