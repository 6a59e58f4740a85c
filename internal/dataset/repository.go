package dataset

import (
	"context"
	"fmt"

	"product-categories/internal/category"
	"product-categories/internal/logger"
	"product-categories/internal/product"
	"product-categories/internal/user"

	"go.uber.org/zap"
)

// Load reads all three collections through the given repositories and validates them.
func Load(
	ctx context.Context,
	users user.Repository,
	categories category.Repository,
	products product.Repository,
) (*Dataset, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "dataset"), zap.String("method", "Load"))

	u, err := users.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	c, err := categories.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	p, err := products.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	ds, err := New(u, c, p)
	if err != nil {
		log.Error("dataset validation failed", zap.Error(err))
		return nil, err
	}

	log.Info("dataset loaded",
		zap.Int("users", len(u)),
		zap.Int("categories", len(c)),
		zap.Int("products", len(p)),
	)
	return ds, nil
}
