// Package store implements the repository ports on a relational database
// through uptrace/bun. The same code runs on PostgreSQL (bun pgdriver or
// jackc/pgx) and on SQLite (modernc.org/sqlite) for development and tests.
//
// Construction:
//
//	st, err := store.Open(ctx, &cfg.Database, logger)
//	defer st.Close()
//
// Every method accepts a context; when the context carries a transaction
// started by [Store.WithinTx], the call joins it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/jsamuelsen11/recipebox/internal/platform/config"
	"github.com/jsamuelsen11/recipebox/internal/platform/telemetry"
	"github.com/jsamuelsen11/recipebox/internal/ports"
)

// Compile-time checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// sqlitePragmas enables foreign keys (required for cascade deletes) and waits
// on a locked database instead of failing immediately.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Store is the bun-backed repository. It is safe for concurrent use.
type Store struct {
	db     *bun.DB
	logger *slog.Logger
}

type txKey struct{}

// Option customizes a Store at construction.
type Option func(*queryHook)

// WithMetrics records the duration of every statement on m.DBQueryDuration.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(h *queryHook) { h.metrics = m }
}

// Open connects to the database selected by cfg.Driver, installs the query
// hook and, when cfg.AutoMigrate is set, creates the schema.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	st := New(db, logger, opts...)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", cfg.Driver, err)
	}

	if cfg.AutoMigrate {
		if err := st.CreateSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	logger.InfoContext(ctx, "database connected",
		slog.String("driver", cfg.Driver),
		slog.Bool("auto_migrate", cfg.AutoMigrate),
	)

	return st, nil
}

// New wraps an existing bun.DB. Used by Open and by tests that bring their
// own connection (e.g. sqlmock).
func New(db *bun.DB, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	hook := newQueryHook(logger)
	for _, opt := range opts {
		opt(hook)
	}
	db.AddQueryHook(hook)
	return &Store{db: db, logger: logger}
}

func openDB(cfg *config.DatabaseConfig) (*bun.DB, error) {
	var db *bun.DB

	switch cfg.Driver {
	case "postgres":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
		db = bun.NewDB(sqldb, pgdialect.New())
	case "pgx":
		pgxCfg, err := pgx.ParseConfig(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("parsing pgx dsn: %w", err)
		}
		sqldb := stdlib.OpenDB(*pgxCfg)
		db = bun.NewDB(sqldb, pgdialect.New())
	case "sqlite":
		sqldb, err := sql.Open("sqlite", sqliteDSN(cfg.DSN))
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		// A single connection serializes writers and keeps ":memory:" databases alive.
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// sqliteDSN appends the pragmas unless the caller already supplied query options.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + sqlitePragmas
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying bun handle for schema tooling.
func (s *Store) DB() *bun.DB {
	return s.db
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// WithinTx runs fn in a transaction. If ctx already carries one, fn joins it
// and the outermost caller decides commit or rollback.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(bun.Tx); ok {
		return fn(ctx)
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction carried by ctx, or the pool.
func (s *Store) conn(ctx context.Context) bun.IDB {
	if tx, ok := ctx.Value(txKey{}).(bun.Tx); ok {
		return tx
	}
	return s.db
}
