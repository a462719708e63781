// Package bolt provides a bbolt-backed kv.Store.
package bolt

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/saadjs/nutrilog/internal/kv"
	"go.etcd.io/bbolt"
)

const bucketName = "nutrilog"

type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) a bbolt file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}
	store := &Store{db: db}
	if err := store.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		v := bucket.Get([]byte(key))
		if v == nil {
			return kv.ErrNotFound
		}
		// bbolt values are only valid for the life of the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		if err := bucket.Put([]byte(key), append([]byte(nil), value...)); err != nil {
			return fmt.Errorf("put %q: %w", key, err)
		}
		return nil
	})
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(bucketName)) != nil {
			if err := tx.DeleteBucket([]byte(bucketName)); err != nil {
				return fmt.Errorf("drop %s bucket: %w", bucketName, err)
			}
		}
		if _, err := tx.CreateBucket([]byte(bucketName)); err != nil {
			return fmt.Errorf("create %s bucket: %w", bucketName, err)
		}
		return nil
	})
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	keys := make([]string, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		return bucket.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Store) ensureBucket() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return fmt.Errorf("create %s bucket: %w", bucketName, err)
		}
		return nil
	})
}

var (
	_ kv.Store  = (*Store)(nil)
	_ kv.Lister = (*Store)(nil)
)
