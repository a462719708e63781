package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/saadjs/nutrilog/internal/kv"
	"github.com/saadjs/nutrilog/internal/logstore"
	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

type DoctorReport struct {
	MalformedCollections []string `json:"malformed_collections,omitempty"`
	InvalidMeals         int      `json:"invalid_meals"`
	DuplicateSleepDates  int      `json:"duplicate_sleep_dates"`
	InvalidSleepEntries  int      `json:"invalid_sleep_entries"`
	FixedCollections     int      `json:"fixed_collections,omitempty"`
	RemovedEntries       int      `json:"removed_entries,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return len(r.MalformedCollections) == 0 && r.InvalidMeals == 0 && r.DuplicateSleepDates == 0 && r.InvalidSleepEntries == 0
}

// RunDoctor inspects the persisted bytes directly, so it sees damage that
// normal reads silently recover from. With fix set, malformed collections are
// rewritten as empty, invalid meals are dropped and duplicate sleep dates
// keep only their most recently updated entry.
func (s *Service) RunDoctor(ctx context.Context, fix bool) (DoctorReport, error) {
	report := DoctorReport{}

	for _, key := range logstore.CollectionKeys {
		malformed, err := s.isMalformed(ctx, key)
		if err != nil {
			return report, err
		}
		if !malformed {
			continue
		}
		report.MalformedCollections = append(report.MalformedCollections, key)
		if fix {
			if err := s.emptyCollection(ctx, key); err != nil {
				return report, fmt.Errorf("doctor fix %s: %w", key, err)
			}
			report.FixedCollections++
		}
	}

	meals, err := s.logs.Meals.Load(ctx)
	if err != nil {
		return report, fmt.Errorf("doctor meal check: %w", err)
	}
	validMeals := make([]model.MealEntry, 0, len(meals))
	for _, m := range meals {
		if err := nutrition.ValidateMeal(m); err != nil {
			report.InvalidMeals++
			continue
		}
		validMeals = append(validMeals, m)
	}

	sleep, err := s.logs.Sleep.Load(ctx)
	if err != nil {
		return report, fmt.Errorf("doctor sleep check: %w", err)
	}
	latest := make(map[string]int, len(sleep))
	keptSleep := make([]model.SleepEntry, 0, len(sleep))
	for _, e := range sleep {
		if err := nutrition.ValidateSleep(e); err != nil {
			report.InvalidSleepEntries++
			continue
		}
		idx, seen := latest[e.Date]
		if !seen {
			latest[e.Date] = len(keptSleep)
			keptSleep = append(keptSleep, e)
			continue
		}
		report.DuplicateSleepDates++
		if e.UpdatedAt.After(keptSleep[idx].UpdatedAt) {
			keptSleep[idx] = e
		}
	}

	if !fix {
		return report, nil
	}
	if report.InvalidMeals > 0 {
		if err := s.logs.Meals.Replace(ctx, validMeals); err != nil {
			return report, fmt.Errorf("doctor fix meals: %w", err)
		}
		report.RemovedEntries += report.InvalidMeals
	}
	if removed := len(sleep) - len(keptSleep); removed > 0 {
		if err := s.logs.Sleep.Replace(ctx, keptSleep); err != nil {
			return report, fmt.Errorf("doctor fix sleep entries: %w", err)
		}
		report.RemovedEntries += removed
	}
	return report, nil
}

func (s *Service) isMalformed(ctx context.Context, key string) (bool, error) {
	data, err := s.logs.KV().Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("doctor read %s: %w", key, err)
	}
	switch key {
	case logstore.KeyMeals:
		_, err = logstore.Decode[model.MealEntry](data)
	case logstore.KeyWorkouts:
		_, err = logstore.Decode[model.WorkoutEntry](data)
	case logstore.KeySleep:
		_, err = logstore.Decode[model.SleepEntry](data)
	case logstore.KeyMoods:
		_, err = logstore.Decode[model.MoodEntry](data)
	default:
		return false, fmt.Errorf("unknown collection %q", key)
	}
	return errors.Is(err, logstore.ErrMalformedData), nil
}

func (s *Service) emptyCollection(ctx context.Context, key string) error {
	switch key {
	case logstore.KeyMeals:
		return s.logs.Meals.Replace(ctx, nil)
	case logstore.KeyWorkouts:
		return s.logs.Workouts.Replace(ctx, nil)
	case logstore.KeySleep:
		return s.logs.Sleep.Replace(ctx, nil)
	case logstore.KeyMoods:
		return s.logs.Moods.Replace(ctx, nil)
	}
	return fmt.Errorf("unknown collection %q", key)
}
