package migrations

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"github.com/pressly/goose/v3"
)

// Dir is where `migrate create` writes new Go migrations, relative to the repository root.
const Dir = "internal/migrations"

// Open returns a database/sql handle for goose. The pgx pool is not used for migrations.
func Open(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	return db, nil
}

// NewProvider returns a goose provider backed by the Go migrations registered in this package.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	return goose.NewProvider(goose.DialectPostgres, db, nil)
}

// Up applies all pending migrations.
func Up(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	db, err := Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := NewProvider(db)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		log.Info("Migration applied", "version", r.Source.Version, "duration", r.Duration.String())
	}
	return nil
}
