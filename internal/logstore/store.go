package logstore

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/saadjs/nutrilog/internal/kv"
	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

const (
	KeyMeals      = "meals"
	KeyWorkouts   = "workouts"
	KeySleep      = "sleep_entries"
	KeyMoods      = "moods"
	KeyProfile    = "user_profile"
	KeyWeeklyGoal = "weekly_goal_settings"
)

// CollectionKeys lists the keys holding JSON arrays.
var CollectionKeys = []string{KeyMeals, KeyWorkouts, KeySleep, KeyMoods}

const sleepDateLayout = "2006-01-02"

// MaxSleepHistoryDays bounds the window SleepHistory will build.
const MaxSleepHistoryDays = 366

type Option func(*Store)

func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store groups every collection of a signed-in session over one kv.Store.
type Store struct {
	kv     kv.Store
	logger *log.Logger

	Meals      *Collection[model.MealEntry]
	Workouts   *Collection[model.WorkoutEntry]
	Sleep      *Collection[model.SleepEntry]
	Moods      *Collection[model.MoodEntry]
	Profile    *Record[model.UserProfile]
	WeeklyGoal *Record[model.WeeklyGoalSettings]
}

func New(store kv.Store, opts ...Option) *Store {
	s := &Store{kv: store, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.Meals = NewCollection(store, KeyMeals, func(m model.MealEntry) string { return m.ID }, s.logger)
	s.Workouts = NewCollection(store, KeyWorkouts, func(w model.WorkoutEntry) string { return w.ID }, s.logger)
	s.Sleep = NewCollection(store, KeySleep, func(e model.SleepEntry) string { return e.ID }, s.logger)
	s.Moods = NewCollection(store, KeyMoods, func(m model.MoodEntry) string { return m.ID }, s.logger)
	s.Profile = NewRecord[model.UserProfile](store, KeyProfile, s.logger)
	s.WeeklyGoal = NewRecord[model.WeeklyGoalSettings](store, KeyWeeklyGoal, s.logger)
	return s
}

func (s *Store) KV() kv.Store { return s.kv }

func (s *Store) Logger() *log.Logger { return s.logger }

// LogSleep records hours for date, overwriting the hours and timestamp of an
// existing entry for that date instead of adding a second one.
func (s *Store) LogSleep(ctx context.Context, date string, hours float64, at time.Time) (model.SleepEntry, error) {
	if _, err := time.Parse(sleepDateLayout, date); err != nil {
		return model.SleepEntry{}, fmt.Errorf("%w: invalid sleep date %q (expected YYYY-MM-DD)", nutrition.ErrInvalidInput, date)
	}
	fresh := model.SleepEntry{ID: uuid.NewString(), Date: date, Hours: hours, UpdatedAt: at}
	return s.Sleep.UpsertByKey(ctx, date,
		func(e model.SleepEntry) string { return e.Date },
		fresh,
		func(existing model.SleepEntry) model.SleepEntry {
			existing.Hours = hours
			existing.UpdatedAt = at
			return existing
		},
	)
}

// SleepHistory returns one entry per day for the days ending on today,
// oldest first. Days without a log come back with zero hours and no ID.
func (s *Store) SleepHistory(ctx context.Context, days int, today time.Time, loc *time.Location) ([]model.SleepEntry, error) {
	if days <= 0 || days > MaxSleepHistoryDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", nutrition.ErrInvalidInput, MaxSleepHistoryDays)
	}
	if loc == nil {
		loc = time.Local
	}
	entries, err := s.Sleep.Items(ctx)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]model.SleepEntry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}
	y, m, d := today.In(loc).Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, loc)
	out := make([]model.SleepEntry, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := end.AddDate(0, 0, -i).Format(sleepDateLayout)
		if e, ok := byDate[key]; ok {
			out = append(out, e)
			continue
		}
		out = append(out, model.SleepEntry{Date: key})
	}
	return out, nil
}

// Reset clears the backing store and forgets every in-memory view.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	s.Meals.Reset()
	s.Workouts.Reset()
	s.Sleep.Reset()
	s.Moods.Reset()
	return nil
}
