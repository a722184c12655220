// Package repository persists listing runs and drafts through ent, over a
// pgx pool for the server or a SQLite file for local one-shot use.
package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/homescribe/listinggen/gen/ent"
)

type Config struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// Open creates a pgx pool, wraps it for ent, and returns both.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "listinggen"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, nil, err
	}

	// wrap the pool as *sql.DB for ent
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("successfully connected to database")
	return client, pool, nil
}

// OpenSQLite opens a file-backed or in-memory SQLite database. The one-shot
// and batch CLIs use this so listing history works without a Postgres.
func OpenSQLite(path string, logger *slog.Logger) (*ent.Client, error) {
	dsn := sqliteDSN(path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "dsn", dsn, "error", err)
		return nil, err
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	logger.Info("opened sqlite database", "dsn", dsn)
	return ent.NewClient(ent.Driver(drv)), nil
}

// sqliteDSN appends the pragmas every pooled connection needs: foreign keys
// for the run->draft edge, and a busy timeout so concurrent batch workers
// retry instead of failing on SQLITE_BUSY. An empty path means a shared
// in-memory database.
func sqliteDSN(path string) string {
	dsn := path
	if dsn == "" || dsn == ":memory:" {
		dsn = "file:listinggen?mode=memory&cache=shared"
	} else if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Close closes the database connections gracefully.
func Close(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("closing database connections")
	if pool != nil {
		pool.Close()
	}
	if entc != nil {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}
	logger.Info("database connections closed")
}

// InitResult bundles an opened client with the matching cleanup.
type InitResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens whichever backend the config names: the Postgres pool
// when DSN is set, otherwise SQLite at sqlitePath. Fresh SQLite databases
// get the schema created in place; Postgres is assumed provisioned.
func InitDatabase(ctx context.Context, cfg Config, sqlitePath string, logger *slog.Logger) (*InitResult, error) {
	if cfg.DSN != "" {
		client, pool, err := Open(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return &InitResult{
			Client:  client,
			Pool:    pool,
			Cleanup: func() { Close(client, pool, logger) },
		}, nil
	}

	client, err := OpenSQLite(sqlitePath, logger)
	if err != nil {
		return nil, err
	}
	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to create sqlite schema", "error", err)
		_ = client.Close()
		return nil, err
	}
	return &InitResult{
		Client:  client,
		Cleanup: func() { Close(client, nil, logger) },
	}, nil
}

// HealthCheck pings using database/sql to catch DSN issues early.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Error("database ping failed", "error", err)
		return err
	}
	logger.Debug("database ping successful")
	return nil
}
