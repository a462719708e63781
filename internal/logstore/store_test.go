package logstore_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/saadjs/nutrilog/internal/kv"
	"github.com/saadjs/nutrilog/internal/logstore"
	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

type flakyStore struct {
	*kv.Memory
	failSet bool
}

func (f *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.Memory.Set(ctx, key, value)
}

func newTestStore(t *testing.T) (*logstore.Store, *flakyStore, *bytes.Buffer) {
	t.Helper()
	backing := &flakyStore{Memory: kv.NewMemory()}
	logs := &bytes.Buffer{}
	return logstore.New(backing, logstore.WithLogger(log.New(logs, "", 0))), backing, logs
}

func floatPtr(v float64) *float64 { return &v }

func TestAppendThenLoadPreservesFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, backing, _ := newTestStore(t)

	meal := model.MealEntry{
		ID: "meal-1",
		Food: model.FoodItem{
			Name:        "Greek yogurt",
			Calories:    146,
			ProteinG:    20,
			CarbsG:      7.8,
			FatG:        3.8,
			SugarG:      floatPtr(7),
			SodiumMg:    floatPtr(68),
			ServingSize: "200 g",
			ImageRef:    "img://yogurt",
		},
		Quantity:      1.5,
		MealType:      model.MealBreakfast,
		LoggedAt:      time.Date(2026, 3, 2, 7, 45, 0, 0, time.UTC),
		OverrideImage: "img://mine",
	}
	if err := store.Meals.Append(ctx, meal); err != nil {
		t.Fatalf("append meal: %v", err)
	}

	// A fresh store over the same bytes sees the entry.
	reopened := logstore.New(backing)
	items, err := reopened.Meals.Load(ctx)
	if err != nil {
		t.Fatalf("load meals: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(items))
	}
	got := items[0]
	if !got.LoggedAt.Equal(meal.LoggedAt) {
		t.Fatalf("expected logged_at %s, got %s", meal.LoggedAt, got.LoggedAt)
	}
	got.LoggedAt = meal.LoggedAt
	if got.ID != meal.ID || got.Quantity != meal.Quantity || got.MealType != meal.MealType || got.OverrideImage != meal.OverrideImage {
		t.Fatalf("unexpected meal %+v", got)
	}
	if got.Food.Name != meal.Food.Name || got.Food.CarbsG != 7.8 || *got.Food.SugarG != 7 || *got.Food.SodiumMg != 68 || got.Food.FiberG != nil || got.Food.ServingSize != "200 g" {
		t.Fatalf("unexpected food %+v", got.Food)
	}
}

func TestPersistFailureLeavesMemoryUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, backing, _ := newTestStore(t)

	first := model.WorkoutEntry{ID: "w1", Type: model.WorkoutRun, Intensity: model.IntensityMedium, DurationMin: 30, Calories: 300}
	if err := store.Workouts.Append(ctx, first); err != nil {
		t.Fatalf("append first workout: %v", err)
	}

	backing.failSet = true
	err := store.Workouts.Append(ctx, model.WorkoutEntry{ID: "w2", Type: model.WorkoutManual, Calories: 120})
	if !errors.Is(err, logstore.ErrPersistWrite) {
		t.Fatalf("expected persist write error, got %v", err)
	}
	if _, err := store.Workouts.Remove(ctx, "w1"); !errors.Is(err, logstore.ErrPersistWrite) {
		t.Fatalf("expected persist write error on remove, got %v", err)
	}
	items, err := store.Workouts.Items(ctx)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 || items[0].ID != "w1" {
		t.Fatalf("expected in-memory view to keep only w1, got %+v", items)
	}

	backing.failSet = false
	persisted, err := store.Workouts.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != "w1" {
		t.Fatalf("expected persisted view to match memory, got %+v", persisted)
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, backing, _ := newTestStore(t)
	if err := store.Moods.Append(ctx, model.MoodEntry{ID: "m1", Mood: model.MoodGood}); err != nil {
		t.Fatalf("append mood: %v", err)
	}
	removed, err := store.Moods.Remove(ctx, "m1")
	if err != nil || !removed {
		t.Fatalf("expected first remove to succeed, got %v/%v", removed, err)
	}
	backing.failSet = true
	removed, err = store.Moods.Remove(ctx, "m1")
	if err != nil || removed {
		t.Fatalf("expected second remove to be a silent no-op, got %v/%v", removed, err)
	}
	_, found, err := store.Moods.Update(ctx, "missing", func(m model.MoodEntry) (model.MoodEntry, error) { return m, nil })
	if err != nil || found {
		t.Fatalf("expected update of unknown id to be a no-op, got %v/%v", found, err)
	}
}

func TestUpdateEditsInPlace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	for _, id := range []string{"a", "b", "c"} {
		if err := store.Meals.Append(ctx, model.MealEntry{ID: id, Quantity: 1, MealType: model.MealSnack}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	updated, found, err := store.Meals.Update(ctx, "b", func(m model.MealEntry) (model.MealEntry, error) {
		m.Quantity = 3
		m.MealType = model.MealDinner
		return m, nil
	})
	if err != nil || !found {
		t.Fatalf("update: %v/%v", found, err)
	}
	if updated.Quantity != 3 {
		t.Fatalf("expected updated quantity 3, got %v", updated.Quantity)
	}
	items, err := store.Meals.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if items[1].ID != "b" || items[1].MealType != model.MealDinner {
		t.Fatalf("expected b edited in place, got %+v", items)
	}
}

func TestLogSleepUpsertsByDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	first, err := store.LogSleep(ctx, "2026-03-02", 6, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("first sleep log: %v", err)
	}
	second, err := store.LogSleep(ctx, "2026-03-02", 7.5, time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("second sleep log: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the existing entry to be updated, got new id %s", second.ID)
	}
	if _, err := store.LogSleep(ctx, "2026-03-03", 8, time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("third sleep log: %v", err)
	}

	entries, err := store.Sleep.Load(ctx)
	if err != nil {
		t.Fatalf("load sleep: %v", err)
	}
	count := 0
	for _, e := range entries {
		if e.Date == "2026-03-02" {
			count++
			if e.Hours != 7.5 {
				t.Fatalf("expected second hours value 7.5, got %v", e.Hours)
			}
			if !e.UpdatedAt.Equal(time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC)) {
				t.Fatalf("expected updated timestamp, got %s", e.UpdatedAt)
			}
		}
	}
	if count != 1 || len(entries) != 2 {
		t.Fatalf("expected one entry for the date and two total, got %+v", entries)
	}

	if _, err := store.LogSleep(ctx, "03/02/2026", 8, time.Now()); err == nil {
		t.Fatalf("expected malformed date to fail")
	}
}

func TestMalformedSleepBytesRecoverAsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, backing, logs := newTestStore(t)
	if err := backing.Memory.Set(ctx, logstore.KeySleep, []byte(`{not json`)); err != nil {
		t.Fatalf("seed malformed bytes: %v", err)
	}

	today := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	history, err := store.SleepHistory(ctx, 1, today, time.UTC)
	if err != nil {
		t.Fatalf("sleep history: %v", err)
	}
	if len(history) != 1 || history[0].Date != "2026-03-02" || history[0].Hours != 0 {
		t.Fatalf("expected a zero-hour entry for today, got %+v", history)
	}
	if !strings.Contains(logs.String(), logstore.ErrMalformedData.Error()) {
		t.Fatalf("expected malformed data to be logged, got %q", logs.String())
	}
}

func TestSleepHistoryFillsGaps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	if _, err := store.LogSleep(ctx, "2026-03-01", 7, time.Now()); err != nil {
		t.Fatalf("log sleep: %v", err)
	}
	history, err := store.SleepHistory(ctx, 3, time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC), time.UTC)
	if err != nil {
		t.Fatalf("sleep history: %v", err)
	}
	want := []struct {
		date  string
		hours float64
	}{{"2026-02-28", 0}, {"2026-03-01", 7}, {"2026-03-02", 0}}
	for i, w := range want {
		if history[i].Date != w.date || history[i].Hours != w.hours {
			t.Fatalf("day %d: expected %s/%v, got %+v", i, w.date, w.hours, history[i])
		}
	}
}

func TestSleepHistoryBoundsDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	today := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	for _, days := range []int{0, -1, logstore.MaxSleepHistoryDays + 1, 1 << 50} {
		if _, err := store.SleepHistory(ctx, days, today, time.UTC); !errors.Is(err, nutrition.ErrInvalidInput) {
			t.Fatalf("days=%d: expected invalid input, got %v", days, err)
		}
	}
	history, err := store.SleepHistory(ctx, logstore.MaxSleepHistoryDays, today, time.UTC)
	if err != nil {
		t.Fatalf("max window: %v", err)
	}
	if len(history) != logstore.MaxSleepHistoryDays || history[len(history)-1].Date != "2026-03-02" {
		t.Fatalf("unexpected max window: %d entries", len(history))
	}
}

func TestLogSleepRejectsBadDate(t *testing.T) {
	t.Parallel()
	store, _, _ := newTestStore(t)
	if _, err := store.LogSleep(context.Background(), "03/02/2026", 7, time.Now()); !errors.Is(err, nutrition.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestRecordMalformedIsAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, backing, logs := newTestStore(t)
	if err := backing.Memory.Set(ctx, logstore.KeyProfile, []byte(`[`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, ok, err := store.Profile.Get(ctx)
	if err != nil || ok {
		t.Fatalf("expected malformed profile to read as absent, got %v/%v", ok, err)
	}
	if logs.Len() == 0 {
		t.Fatalf("expected malformed profile to be logged")
	}
	if err := store.Profile.Put(ctx, model.UserProfile{Age: 40}); err != nil {
		t.Fatalf("put profile: %v", err)
	}
	p, ok, err := store.Profile.Get(ctx)
	if err != nil || !ok || p.Age != 40 {
		t.Fatalf("expected stored profile, got %+v/%v/%v", p, ok, err)
	}
}

func TestDecodeEncode(t *testing.T) {
	t.Parallel()
	items, err := logstore.Decode[model.MoodEntry](nil)
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty collection from nil bytes, got %v/%v", items, err)
	}
	if _, err := logstore.Decode[model.MoodEntry]([]byte(`{"id":1}`)); !errors.Is(err, logstore.ErrMalformedData) {
		t.Fatalf("expected malformed data error, got %v", err)
	}
	data, err := logstore.Encode[model.MoodEntry](nil)
	if err != nil || string(data) != "[]" {
		t.Fatalf("expected empty array, got %q/%v", data, err)
	}
}
