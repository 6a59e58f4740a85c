package product

import (
	"context"
	"database/sql"
	"fmt"

	"product-categories/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetProducts(ctx context.Context) ([]Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProducts(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"), zap.String("method", "GetProducts"))

	query := `
		SELECT
			p.id,
			p.name,
			p.category_id
		FROM products p
		ORDER BY p.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("DB query failed GetProducts", zap.Error(err))
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	log.Debug("GetProducts success", zap.Int("count", len(products)))
	return products, nil
}
