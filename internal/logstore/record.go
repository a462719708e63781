package logstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/saadjs/nutrilog/internal/kv"
)

// Record is a single JSON document persisted under a fixed key.
type Record[T any] struct {
	key    string
	store  kv.Store
	logger *log.Logger

	mu sync.Mutex
}

func NewRecord[T any](store kv.Store, key string, logger *log.Logger) *Record[T] {
	if logger == nil {
		logger = log.Default()
	}
	return &Record[T]{key: key, store: store, logger: logger}
}

// Get returns the stored value and whether one exists. Malformed bytes are
// logged and reported as absent.
func (r *Record[T]) Get(ctx context.Context) (T, bool, error) {
	var zero T
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("load %s: %w", r.key, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		r.logger.Printf("logstore: %s: %v: %v; ignoring stored value", r.key, ErrMalformedData, err)
		return zero, false, nil
	}
	return out, true, nil
}

func (r *Record[T]) Put(ctx context.Context, value T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistWrite, r.key, err)
	}
	return nil
}
