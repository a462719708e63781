package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/saadjs/nutrilog/internal/db"
	"github.com/saadjs/nutrilog/internal/kv"
)

func TestKVSetGetClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := db.OpenKV(filepath.Join(t.TempDir(), "nutrilog.db"))
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	defer store.Close()

	if _, err := store.Get(ctx, "meals"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.Set(ctx, "meals", []byte(`[1]`)); err != nil {
		t.Fatalf("set meals: %v", err)
	}
	if err := store.Set(ctx, "meals", []byte(`[1,2]`)); err != nil {
		t.Fatalf("overwrite meals: %v", err)
	}
	if err := store.Set(ctx, "moods", nil); err != nil {
		t.Fatalf("set empty moods: %v", err)
	}
	got, err := store.Get(ctx, "meals")
	if err != nil {
		t.Fatalf("get meals: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Fatalf("expected overwritten value, got %q", got)
	}
	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "meals" || keys[1] != "moods" {
		t.Fatalf("unexpected keys %v", keys)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Get(ctx, "meals"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected not found after clear, got %v", err)
	}
}
