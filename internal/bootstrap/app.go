package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cardrequest-backend/internal/documents"
	"cardrequest-backend/internal/queue"
	"cardrequest-backend/internal/services/health"
	"cardrequest-backend/internal/shared/config"
	"cardrequest-backend/internal/shared/server"
	"cardrequest-backend/internal/shared/server/middleware"
	"cardrequest-backend/internal/shared/storage/db"
	"cardrequest-backend/internal/shared/storage/object"
	localstore "cardrequest-backend/internal/shared/storage/object/local"
	s3store "cardrequest-backend/internal/shared/storage/object/s3"
	"cardrequest-backend/internal/submissions"
)

// App holds shared dependencies and the router built from them.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Dialect            string
	Store              object.ObjectStore
	Queue              queue.Client
	SubmissionsRepo    submissions.Repo
	SubmissionsService *submissions.Service
	DocumentsService   *documents.Service
	SubmissionsHandler *submissions.Handler
	DocumentsHandler   *documents.Handler
	Health             *health.Service
}

// Options overrides pieces of the wiring, mainly for tests.
type Options struct {
	Now   func() time.Time
	Repo  submissions.Repo
	Queue queue.Client
}

// Build connects storage, runs migrations and wires services, handlers and routes.
func Build(cfg config.Config) (*App, error) {
	return BuildWith(context.Background(), cfg, Options{})
}

// BuildWith is Build with explicit overrides.
func BuildWith(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if strings.TrimSpace(cfg.UploadDir) == "" {
		cfg.UploadDir = "uploads"
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	app := &App{Config: cfg}

	repo := opts.Repo
	if repo == nil {
		sqlDB, dialect, err := buildDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.DB = sqlDB
		app.Dialect = dialect
		repo = buildRepo(sqlDB, dialect)
	}
	app.SubmissionsRepo = repo

	store, err := buildStore(ctx, cfg, now)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Store = store

	queueClient := opts.Queue
	if queueClient == nil {
		queueClient, err = buildQueue(ctx, cfg)
		if err != nil {
			app.Close()
			return nil, err
		}
	}
	app.Queue = queueClient

	app.SubmissionsService = &submissions.Service{
		Repo:    repo,
		Queue:   queueClient,
		Now:     now,
		Version: cfg.AppVersion,
	}
	app.DocumentsService = &documents.Service{Store: store}
	app.SubmissionsHandler = submissions.NewHandler(app.SubmissionsService)
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
	app.Health = health.NewService(app.DB, app.Dialect, cfg.AppVersion)

	if app.SubmissionsHandler == nil || app.DocumentsHandler == nil {
		app.Close()
		return nil, errors.New("failed to initialize handlers")
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		Health:            app.Health,
		SubmissionHandler: app.SubmissionsHandler,
		DocumentHandler:   app.DocumentsHandler,
		RateLimiter:       middleware.NewRateLimiter(now),
	})

	return app, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// buildDB opens exactly one database: Postgres when DATABASE_URL is set, the SQLite file otherwise.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, string, error) {
	var (
		sqlDB   *sql.DB
		dialect string
		err     error
	)
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		dialect = db.DialectPostgres
		sqlDB, err = db.ConnectPostgres(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	} else {
		dialect = db.DialectSQLite
		sqlDB, err = db.OpenSQLite(ctx, cfg.DatabasePath, db.OptionsFromEnv(db.DefaultSQLiteOptions()))
	}
	if err != nil {
		return nil, "", fmt.Errorf("connect %s: %w", dialect, err)
	}
	log.Printf("bootstrap: using %s database", dialect)
	if err := db.RunMigrations(ctx, sqlDB, dialect); err != nil {
		sqlDB.Close()
		return nil, "", fmt.Errorf("migrate %s: %w", dialect, err)
	}
	return sqlDB, dialect, nil
}

func buildRepo(sqlDB *sql.DB, dialect string) submissions.Repo {
	if dialect == db.DialectPostgres {
		return &submissions.PGRepo{DB: sqlDB}
	}
	return &submissions.SQLiteRepo{DB: sqlDB}
}

func buildStore(ctx context.Context, cfg config.Config, now func() time.Time) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID, now)
	default:
		return localstore.New(cfg.UploadDir, now)
	}
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if strings.TrimSpace(cfg.QueueURL) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx, cfg.QueueURL, cfg.AWSRegion)
}
