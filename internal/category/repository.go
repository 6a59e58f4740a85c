package category

import (
	"context"
	"database/sql"
	"fmt"

	"product-categories/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetCategories(ctx context.Context) ([]Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCategories(ctx context.Context) ([]Category, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"), zap.String("method", "GetCategories"))

	query := `
		SELECT
			c.id,
			c.title,
			c.icon,
			c.owner_id
		FROM categories c
		ORDER BY c.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("DB query failed GetCategories", zap.Error(err))
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Icon, &c.OwnerID); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	log.Debug("GetCategories success", zap.Int("count", len(categories)))
	return categories, nil
}
