package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"product-categories/internal/config"
	"product-categories/internal/db"
	"product-categories/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	mode := flag.String("mode", "up", "migration mode: up or down")
	dir := flag.String("dir", "./migrations", "directory holding the *.sql migrations")
	flag.Parse()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect db", zap.Error(err))
	}
	defer database.Close()

	if err := run(context.Background(), database, *mode, *dir); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}
}

func run(ctx context.Context, db *sql.DB, mode, migrationsDir string) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	// Versions are timestamp-prefixed file names.
	slices.Sort(files)

	switch mode {
	case "up":
		return runMigrationsUp(ctx, db, files)
	case "down":
		return runMigrationsDown(ctx, db, files)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}

func runMigrationsUp(ctx context.Context, db *sql.DB, files []string) error {
	log := logger.FromCtx(ctx)

	for _, file := range files {
		version := filepath.Base(file)

		var exists bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			log.Info("skipping applied migration", zap.String("version", version))
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		log.Info("applying migration", zap.String("version", version))
		if err := applyInTx(ctx, db, extractMigrationPart(string(content), "Up"),
			`INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("migration failed (%s): %w", version, err)
		}
	}

	log.Info("all new migrations applied")
	return nil
}

func runMigrationsDown(ctx context.Context, db *sql.DB, files []string) error {
	log := logger.FromCtx(ctx)

	var lastVersion string
	err := db.QueryRowContext(ctx,
		`SELECT version FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1`,
	).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("no migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	i := slices.IndexFunc(files, func(f string) bool { return filepath.Base(f) == lastVersion })
	if i < 0 {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}

	content, err := os.ReadFile(files[i])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", files[i], err)
	}

	log.Info("rolling back migration", zap.String("version", lastVersion))
	if err := applyInTx(ctx, db, extractMigrationPart(string(content), "Down"),
		`DELETE FROM schema_migrations WHERE version = $1`, lastVersion); err != nil {
		return fmt.Errorf("rollback failed (%s): %w", lastVersion, err)
	}

	log.Info("rollback successful", zap.String("version", lastVersion))
	return nil
}

// applyInTx runs the migration body and the bookkeeping statement atomically.
func applyInTx(ctx context.Context, db *sql.DB, body, record, version string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, body); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, record, version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to record migration version: %w", err)
	}

	return tx.Commit()
}

func extractMigrationPart(content string, section string) string {
	var part strings.Builder
	var inPart bool

	for line := range strings.Lines(content) {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line)
		}
	}
	return part.String()
}
