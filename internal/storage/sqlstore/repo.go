package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Dialect selects placeholders and migrations.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DBTX is the subset of database/sql used by the repository.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is a storage.Store backed by the kv_store table.
type Store struct {
	db       DBTX
	getQuery string
	setQuery string
}

func New(db DBTX, d Dialect) *Store {
	p1, p2 := "?", "?"
	if d == DialectPostgres {
		p1, p2 = "$1", "$2"
	}
	return &Store{
		db:       db,
		getQuery: `SELECT value FROM kv_store WHERE key = ` + p1,
		setQuery: `INSERT INTO kv_store (key, value) VALUES (` + p1 + `, ` + p2 + `)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, s.getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.setQuery, key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
