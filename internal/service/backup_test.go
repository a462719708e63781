package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBackupAndRestore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, backing := newTestService(t)
	seedService(t, svc)

	out := filepath.Join(t.TempDir(), "backups", "nutrilog.json")
	info, err := svc.CreateBackup(ctx, out)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.Keys != 6 || info.Checksum == "" {
		t.Fatalf("unexpected backup info %+v", info)
	}
	if _, err := os.Stat(out + ".sha256"); err != nil {
		t.Fatalf("expected checksum file: %v", err)
	}

	meals, err := svc.ListMeals(ctx, fixedNow)
	if err != nil {
		t.Fatalf("list meals: %v", err)
	}
	if _, err := svc.DeleteMeal(ctx, meals[0].ID); err != nil {
		t.Fatalf("delete meal: %v", err)
	}
	if err := backing.Set(ctx, "stray", []byte("x")); err != nil {
		t.Fatalf("set stray key: %v", err)
	}

	if _, err := svc.RestoreBackup(ctx, out); err != nil {
		t.Fatalf("restore backup: %v", err)
	}
	meals, err = svc.ListMeals(ctx, fixedNow)
	if err != nil {
		t.Fatalf("list meals after restore: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected restored meal, got %d", len(meals))
	}
	keys, err := backing.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 6 {
		t.Fatalf("expected restore to drop stray keys, got %v", keys)
	}
}

func TestRestoreRejectsTamperedBackup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	seedService(t, svc)

	out := filepath.Join(t.TempDir(), "nutrilog.json")
	if _, err := svc.CreateBackup(ctx, out); err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if err := os.WriteFile(out, []byte(`{"values":{}}`), 0o600); err != nil {
		t.Fatalf("tamper: %v", err)
	}
	_, err := svc.RestoreBackup(ctx, out)
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
	meals, err := svc.ListMeals(ctx, fixedNow)
	if err != nil || len(meals) != 1 {
		t.Fatalf("store must be untouched: meals=%d err=%v", len(meals), err)
	}
}

func TestBackupKeepsMalformedValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, backing := newTestService(t)
	if err := backing.Set(ctx, "meals", []byte("{not json")); err != nil {
		t.Fatalf("seed malformed: %v", err)
	}
	out := filepath.Join(t.TempDir(), "nutrilog.json")
	if _, err := svc.CreateBackup(ctx, out); err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if err := backing.Set(ctx, "meals", []byte("[]")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if _, err := svc.RestoreBackup(ctx, out); err != nil {
		t.Fatalf("restore: %v", err)
	}
	got, err := backing.Get(ctx, "meals")
	if err != nil {
		t.Fatalf("get meals: %v", err)
	}
	if string(got) != "{not json" {
		t.Fatalf("expected raw bytes back, got %q", got)
	}
}
