package kv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saadjs/nutrilog/internal/kv"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()

	if _, err := store.Get(ctx, "workouts"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	value := []byte(`[]`)
	if err := store.Set(ctx, "workouts", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'x'
	got, err := store.Get(ctx, "workouts")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("expected stored copy to be unaffected, got %q", got)
	}
	keys, err := store.Keys(ctx)
	if err != nil || len(keys) != 1 || keys[0] != "workouts" {
		t.Fatalf("unexpected keys %v (%v)", keys, err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Get(ctx, "workouts"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected not found after clear, got %v", err)
	}
}

func TestMemoryStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := kv.NewMemory().Set(ctx, "k", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
