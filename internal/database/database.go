package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

//go:embed migrations
var migrationsFS embed.FS

func init() {
	sqlx.BindDriver(config.DriverLibSQL, sqlx.QUESTION)
}

// InitDB opens the configured database, verifies the connection and applies
// all pending migrations. The returned teardown closes the handle.
func InitDB(cfg config.DatabaseConfig) (*sqlx.DB, func(), error) {
	dsn, dialect, migrationsDir, err := connectionParams(cfg)
	if err != nil {
		return nil, nil, err
	}

	log.Info("Initializing database", "driver", cfg.Driver)
	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}
	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}

	if cfg.Driver != config.DriverPostgres {
		// SQLite keeps PRAGMAs and :memory: databases per connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		teardown()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver != config.DriverPostgres {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			log.Error("Error enabling foreign keys:", "error", err)
			teardown()
			return nil, nil, err
		}
	}

	if err := migrate(ctx, db, dialect, migrationsDir); err != nil {
		teardown()
		return nil, nil, err
	}

	log.Info("Database initialized successfully")
	return db, teardown, nil
}

func connectionParams(cfg config.DatabaseConfig) (dsn string, dialect goose.Dialect, dir string, err error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return "file:" + cfg.Name + "?_foreign_keys=on", goose.DialectSQLite3, "migrations/sqlite", nil
	case config.DriverLibSQL:
		dsn = cfg.URL
		if cfg.AuthToken != "" {
			dsn += "?authToken=" + cfg.AuthToken
		}
		return dsn, goose.DialectSQLite3, "migrations/sqlite", nil
	case config.DriverPostgres:
		return cfg.URL, goose.DialectPostgres, "migrations/postgres", nil
	default:
		return "", "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func migrate(ctx context.Context, db *sqlx.DB, dialect goose.Dialect, dir string) error {
	fsys, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, res := range results {
		log.Info("Applied migration", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}
