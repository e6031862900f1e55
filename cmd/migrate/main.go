package main

// Run database migrations:
//   go run ./cmd/migrate
// Migrates Postgres when DATABASE_URL is set, the SQLite file at DATABASE_PATH otherwise.

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"cardrequest-backend/internal/shared/config"
	"cardrequest-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())

	var (
		sqlDB   *sql.DB
		dialect string
		err     error
	)
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		dialect = db.DialectPostgres
		sqlDB, err = db.ConnectPostgres(ctx, cfg.DatabaseURL, opts)
	} else {
		dialect = db.DialectSQLite
		sqlDB, err = db.OpenSQLite(ctx, cfg.DatabasePath, opts)
	}
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB, dialect); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
	log.Printf("migrations applied (%s)", dialect)
}
