// Package db holds the connection contract shared by the persistence adapters,
// plus helpers to open a database and bootstrap its schema.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"magazine-press/internal/observability/metrics"
)

// Conn is one acquired connection. *sql.Conn satisfies it.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Close() error
}

// Connector hands out a fresh connection per call. Callers must Close it.
type Connector interface {
	Conn(ctx context.Context) (Conn, error)
}

// SQLConnector acquires connections from a *sql.DB.
type SQLConnector struct {
	DB *sql.DB
}

// NewSQLConnector wraps db.
func NewSQLConnector(db *sql.DB) *SQLConnector {
	return &SQLConnector{DB: db}
}

// Conn acquires a dedicated connection.
func (c *SQLConnector) Conn(ctx context.Context) (Conn, error) {
	conn, err := c.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// WithConn acquires a connection, runs fn on it and releases it on every exit path.
// The elapsed time is recorded under operation. A release error is returned
// only when fn itself succeeded.
func WithConn(ctx context.Context, c Connector, operation string, fn func(Conn) error) (err error) {
	start := time.Now()
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.RecordDBQuery(operation, status, time.Since(start))
	}()

	conn, err := c.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("release connection: %w", cerr)
		}
	}()

	return fn(conn)
}
