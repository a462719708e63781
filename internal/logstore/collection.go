// Package logstore keeps the meal, workout, sleep and mood logs in memory and
// persists every change to a kv.Store as a JSON array per collection.
package logstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/saadjs/nutrilog/internal/kv"
)

var (
	// ErrMalformedData is logged, never returned, when stored bytes fail to
	// parse; the collection recovers as empty.
	ErrMalformedData = errors.New("malformed persisted data")
	ErrPersistWrite  = errors.New("persist write failed")
)

// Decode parses a serialized collection. Empty input is an empty collection.
func Decode[T any](data []byte) ([]T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func Encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// Collection is an ordered list of T persisted under a fixed key. Writes
// reach the store before the in-memory view changes, so a failed write
// leaves the view as it was.
type Collection[T any] struct {
	key    string
	store  kv.Store
	idOf   func(T) string
	logger *log.Logger

	mu     sync.Mutex
	items  []T
	loaded bool
}

func NewCollection[T any](store kv.Store, key string, idOf func(T) string, logger *log.Logger) *Collection[T] {
	if logger == nil {
		logger = log.Default()
	}
	return &Collection[T]{key: key, store: store, idOf: idOf, logger: logger}
}

func (c *Collection[T]) Key() string { return c.key }

// Load re-reads the collection from the store and returns a copy of it.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.reload(ctx); err != nil {
		return nil, err
	}
	return c.snapshot(), nil
}

// Items returns a copy of the in-memory view, loading it on first use.
func (c *Collection[T]) Items(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return c.snapshot(), nil
}

func (c *Collection[T]) Append(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return err
	}
	next := append(c.snapshot(), item)
	return c.commit(ctx, next)
}

// Remove deletes the item with id. Removing an unknown id is a no-op.
func (c *Collection[T]) Remove(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return false, err
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	next := make([]T, 0, len(c.items)-1)
	next = append(next, c.items[:idx]...)
	next = append(next, c.items[idx+1:]...)
	if err := c.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Update applies fn to the item with id and persists the result. An unknown
// id is a no-op and reports false.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(T) (T, error)) (T, bool, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, false, err
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return zero, false, nil
	}
	updated, err := fn(c.items[idx])
	if err != nil {
		return zero, true, err
	}
	next := c.snapshot()
	next[idx] = updated
	if err := c.commit(ctx, next); err != nil {
		return zero, true, err
	}
	return updated, true, nil
}

// UpsertByKey replaces the first item whose keyOf matches key with
// merge(existing), or appends fresh when none matches.
func (c *Collection[T]) UpsertByKey(ctx context.Context, key string, keyOf func(T) string, fresh T, merge func(existing T) T) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, err
	}
	next := c.snapshot()
	out := fresh
	found := false
	for i := range next {
		if keyOf(next[i]) == key {
			out = merge(next[i])
			next[i] = out
			found = true
			break
		}
	}
	if !found {
		next = append(next, fresh)
	}
	if err := c.commit(ctx, next); err != nil {
		return zero, err
	}
	return out, nil
}

// Replace swaps the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, len(items))
	copy(next, items)
	return c.commit(ctx, next)
}

// Reset drops the in-memory view so the next read goes to the store.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.loaded = false
}

func (c *Collection[T]) ensureLoaded(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	return c.reload(ctx)
}

func (c *Collection[T]) reload(ctx context.Context) error {
	data, err := c.store.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			return fmt.Errorf("load %s: %w", c.key, err)
		}
		data = nil
	}
	items, err := Decode[T](data)
	if err != nil {
		c.logger.Printf("logstore: %s: %v; using empty collection", c.key, err)
		items = []T{}
	}
	c.items = items
	c.loaded = true
	return nil
}

func (c *Collection[T]) commit(ctx context.Context, next []T) error {
	data, err := Encode(next)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistWrite, c.key, err)
	}
	c.items = next
	c.loaded = true
	return nil
}

func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}
