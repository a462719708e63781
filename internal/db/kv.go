package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/saadjs/nutrilog/internal/kv"
)

// KV is a kv.Store over the kv_entries table.
type KV struct {
	db *sql.DB
}

// OpenKV opens the SQLite file at path, applies migrations and returns a
// store that owns the connection.
func OpenKV(path string) (*KV, error) {
	sqldb, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyMigrations(sqldb); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return &KV{db: sqldb}, nil
}

func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO kv_entries(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *KV) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries`); err != nil {
		return fmt.Errorf("clear kv entries: %w", err)
	}
	return nil
}

func (s *KV) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv_entries ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list kv keys: %w", err)
	}
	defer rows.Close()
	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan kv key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kv keys: %w", err)
	}
	return keys, nil
}

func (s *KV) Close() error {
	return s.db.Close()
}

var (
	_ kv.Store  = (*KV)(nil)
	_ kv.Lister = (*KV)(nil)
)
