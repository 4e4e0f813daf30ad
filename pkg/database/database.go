// Package database opens and owns the service's *sql.DB connection pool.
// It supports the pure-Go SQLite driver for file databases and the
// pgx driver for PostgreSQL.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/agent-registry/pkg/lifecycle"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// System provides access to the connection pool and its dialect.
type System interface {
	Connection() *sql.DB
	Dialect() Dialect
	Start(lc *lifecycle.Coordinator) error
	Close() error
}

type database struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

// New opens the connection pool described by cfg and verifies it with a ping
// bounded by the configured connection timeout.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open(string(cfg.Driver), cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.InMemory() {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger = logger.With("system", "database", "driver", cfg.Driver)
	logger.Info("database connection established")

	return &database{
		db:      db,
		dialect: cfg.Driver.Dialect(),
		logger:  logger,
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.db
}

func (d *database) Dialect() Dialect {
	return d.dialect
}

// Start registers the pool close as lifecycle cleanup, so it runs only after
// shutdown hooks such as the HTTP drain have returned.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	lc.OnCleanup(func() {
		if err := d.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})
	return nil
}

func (d *database) Close() error {
	return d.db.Close()
}
