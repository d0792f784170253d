// Package clickhouse reads mirrored block documents from a ClickHouse table.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Close() error
	}
)

// Store is a read-only block store backed by the explorer_blocks table.
type Store struct {
	conn    Conn
	metrics Metrics
}

// NewStore opens a ClickHouse connection from dsn.
func NewStore(dsn string, metrics Metrics) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Store{conn: conn, metrics: metrics}, nil
}

// Close releases the connection.
func (r *Store) Close() error {
	return r.conn.Close()
}
