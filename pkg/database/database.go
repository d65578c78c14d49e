// Package database wraps database/sql over the pgx driver with the small
// surface the services need: pooled access, health checks, and transactions.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/labelpress/pkg/logger"
)

// Database is the shared PostgreSQL handle. database/sql (not the native pgx
// pool) so Watermill's SQL transport and repositories can share transactions.
type Database struct {
	db *sql.DB
}

// NewPool opens a connection pool against url and verifies connectivity.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	log.Info("database pool ready", "max_open_conns", 20)
	return &Database{db: db}, nil
}

// DB returns the underlying *sql.DB for query execution.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Ping checks database connectivity; satisfies httpx.HealthChecker.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// WithTx runs fn inside a transaction, committing on nil and rolling back on
// error or panic.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("database: rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("database: commit: %w", err)
	}
	return nil
}

// Close shuts down the pool.
func (d *Database) Close() {
	_ = d.db.Close()
}
