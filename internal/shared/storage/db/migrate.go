package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"jobhunt-backend/internal/shared/telemetry"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies the embedded profile and application schema via
// goose. A nil database (memory-repo mode) is a no-op.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, database, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if version, err := goose.GetDBVersionContext(ctx, database); err == nil {
		telemetry.Info("db.migrated", map[string]any{"version": version})
	}
	return nil
}
