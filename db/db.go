// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeRedis    = "redis"
)

var (
	ErrNotFound        = errors.New("key not found")
	ErrUnsupportedType = errors.New("unsupported database type")
)

// KV is the durable key/value backend behind the session store.
// Get returns ErrNotFound for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open connects to the backend named by dbType and makes sure it is usable.
// SQL backends get their schema created.
func Open(ctx context.Context, dbType, url string) (KV, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
		conn, err := sql.Open(dbType, url)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", dbType, err)
		}
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to ping %s: %w", dbType, err)
		}
		if dbType == TypeSQLite {
			// SQLite allows a single writer; serve mode shares this handle.
			conn.SetMaxOpenConns(1)
		}
		if err := CreateSchema(conn); err != nil {
			conn.Close()
			return nil, err
		}
		return NewSQLStore(conn, dbType), nil

	case TypeRedis:
		return NewRedisStore(ctx, url)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, dbType)
}

// SQLStore keeps keys in the session_kv table.
type SQLStore struct {
	db     *sql.DB
	dbType string
}

func NewSQLStore(db *sql.DB, dbType string) *SQLStore {
	return &SQLStore{db: db, dbType: dbType}
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.rebind("SELECT v FROM session_kv WHERE k = $1"), key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO session_kv (k, v, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (k) DO UPDATE SET v = excluded.v, updated_at = CURRENT_TIMESTAMP
	`), key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM session_kv WHERE k = $1"), key)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

var dollarParam = regexp.MustCompile(`\$(\d+)`)

// rebind rewrites $N placeholders to SQLite's ?N form.
func (s *SQLStore) rebind(query string) string {
	if s.dbType != TypeSQLite {
		return query
	}
	return dollarParam.ReplaceAllString(query, "?$1")
}
