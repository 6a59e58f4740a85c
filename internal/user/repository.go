package user

import (
	"context"
	"database/sql"
	"fmt"

	"product-categories/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetUsers(ctx context.Context) ([]User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUsers(ctx context.Context) ([]User, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"), zap.String("method", "GetUsers"))

	query := `SELECT id, name, sex FROM users ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("DB query failed GetUsers", zap.Error(err))
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Sex); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	log.Debug("GetUsers success", zap.Int("count", len(users)))
	return users, nil
}
