package category

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "icon", "owner_id"}).
			AddRow(1, "Grocery", "🍞", 2).
			AddRow(2, "Drinks", "🍺", 1)

		mock.ExpectQuery("SELECT .* FROM categories c ORDER BY c.id ASC").WillReturnRows(rows)

		res, err := repo.GetCategories(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
		}, res)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM categories c").WillReturnError(errors.New("db error"))

		_, err := repo.GetCategories(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
	})

	t.Run("RowsError", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "icon", "owner_id"}).
			AddRow(1, "Grocery", "🍞", 2).
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery("SELECT .* FROM categories c").WillReturnRows(rows)

		_, err := repo.GetCategories(context.Background())
		assert.ErrorContains(t, err, "iterate categories")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategory_Label(t *testing.T) {
	c := Category{Title: "Fruits", Icon: "🍏"}
	assert.Equal(t, "🍏 - Fruits", c.Label())
}
