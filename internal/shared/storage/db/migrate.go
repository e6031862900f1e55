package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFiles embed.FS

// RunMigrations applies the embedded SQL migrations for dialect via goose. Already applied
// versions are skipped, so it is safe on every startup. If database is nil, it's a no-op.
func RunMigrations(ctx context.Context, database *sql.DB, dialect string) error {
	if database == nil {
		return nil
	}
	var dir string
	switch dialect {
	case DialectSQLite:
		dir = "migrations/sqlite"
	case DialectPostgres:
		dir = "migrations/postgres"
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, dir)
}
