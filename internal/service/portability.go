package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

const exportVersion = 1

type ExportData struct {
	Version    int                       `json:"version"`
	ExportedAt time.Time                 `json:"exported_at"`
	Profile    *model.UserProfile        `json:"profile,omitempty"`
	WeeklyGoal *model.WeeklyGoalSettings `json:"weekly_goal,omitempty"`
	Meals      []model.MealEntry         `json:"meals"`
	Workouts   []model.WorkoutEntry      `json:"workouts"`
	Sleep      []model.SleepEntry        `json:"sleep_entries"`
	Moods      []model.MoodEntry         `json:"moods"`
}

type ImportMode string

const (
	ImportModeFail    ImportMode = "fail"
	ImportModeSkip    ImportMode = "skip"
	ImportModeReplace ImportMode = "replace"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Inserted  int      `json:"inserted"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Conflicts int      `json:"conflicts"`
	Warnings  []string `json:"warnings,omitempty"`
}

func (s *Service) Export(ctx context.Context) (*ExportData, error) {
	out := &ExportData{Version: exportVersion, ExportedAt: s.now()}
	profile, ok, err := s.logs.Profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		out.Profile = &profile
	}
	weekly, ok, err := s.logs.WeeklyGoal.Get(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		out.WeeklyGoal = &weekly
	}
	if out.Meals, err = s.logs.Meals.Items(ctx); err != nil {
		return nil, fmt.Errorf("export meals: %w", err)
	}
	if out.Workouts, err = s.logs.Workouts.Items(ctx); err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	if out.Sleep, err = s.logs.Sleep.Items(ctx); err != nil {
		return nil, fmt.Errorf("export sleep entries: %w", err)
	}
	if out.Moods, err = s.logs.Moods.Items(ctx); err != nil {
		return nil, fmt.Errorf("export moods: %w", err)
	}
	return out, nil
}

func ParseImportMode(raw string) (ImportMode, error) {
	switch mode := ImportMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return ImportModeFail, nil
	case ImportModeFail, ImportModeSkip, ImportModeReplace:
		return mode, nil
	}
	return "", invalidf("invalid import mode %q (use fail, skip or replace)", raw)
}

// Import loads an export into the store. Entries are matched by ID, sleep
// entries by date. In replace mode the existing logs are dropped first; in
// fail mode any match aborts before anything is written.
func (s *Service) Import(ctx context.Context, data *ExportData, opts ImportOptions) (ImportReport, error) {
	report := ImportReport{}
	if data == nil {
		return report, invalidf("import data is required")
	}
	if data.Version > exportVersion {
		return report, invalidf("unsupported export version %d", data.Version)
	}
	if opts.Mode == "" {
		opts.Mode = ImportModeFail
	}
	if err := validateImport(data); err != nil {
		return report, err
	}
	if data.Profile != nil {
		if _, err := nutrition.ComputeTargets(*data.Profile); err != nil {
			return report, fmt.Errorf("imported profile: %w", err)
		}
	}

	current, err := s.Export(ctx)
	if err != nil {
		return report, err
	}
	if opts.Mode == ImportModeReplace {
		current = &ExportData{}
	}

	meals := mergeByKey(current.Meals, data.Meals, func(m model.MealEntry) string { return m.ID }, &report)
	workouts := mergeByKey(current.Workouts, data.Workouts, func(w model.WorkoutEntry) string { return w.ID }, &report)
	sleep := mergeByKey(current.Sleep, data.Sleep, func(e model.SleepEntry) string { return e.Date }, &report)
	moods := mergeByKey(current.Moods, data.Moods, func(m model.MoodEntry) string { return m.ID }, &report)

	if report.Conflicts > 0 && opts.Mode == ImportModeFail {
		return report, fmt.Errorf("import found %d conflicting entries; use --mode skip or replace", report.Conflicts)
	}
	if opts.Mode == ImportModeSkip {
		report.Skipped = report.Conflicts
	}
	if data.Profile != nil && current.Profile != nil && opts.Mode != ImportModeReplace {
		report.Warnings = append(report.Warnings, "kept existing profile")
	}
	if opts.DryRun {
		return report, nil
	}

	// A failed write puts the store back the way it was.
	prior, err := s.snapshotValues(ctx)
	if err != nil && !errors.Is(err, errNotListable) {
		return report, fmt.Errorf("snapshot before import: %w", err)
	}
	apply := func() error {
		if opts.Mode == ImportModeReplace {
			if err := s.logs.Reset(ctx); err != nil {
				return err
			}
		}
		if err := s.logs.Meals.Replace(ctx, meals); err != nil {
			return err
		}
		if err := s.logs.Workouts.Replace(ctx, workouts); err != nil {
			return err
		}
		if err := s.logs.Sleep.Replace(ctx, sleep); err != nil {
			return err
		}
		if err := s.logs.Moods.Replace(ctx, moods); err != nil {
			return err
		}
		if data.Profile != nil && current.Profile == nil {
			// Targets are derived; recompute rather than trust the file.
			if _, err := s.saveProfile(ctx, *data.Profile); err != nil {
				return fmt.Errorf("import profile: %w", err)
			}
			report.Updated++
		}
		if data.WeeklyGoal != nil && (current.WeeklyGoal == nil || opts.Mode == ImportModeReplace) {
			if err := s.SetWeeklyGoal(ctx, *data.WeeklyGoal); err != nil {
				return fmt.Errorf("import weekly goal: %w", err)
			}
			report.Updated++
		}
		return nil
	}
	if err := apply(); err != nil {
		if prior == nil {
			return report, err
		}
		if rbErr := s.restoreValues(ctx, prior); rbErr != nil {
			return report, fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return report, err
	}
	return report, nil
}

// validateImport applies the rules the logging paths enforce to every entry
// of an import before anything is written.
func validateImport(data *ExportData) error {
	for _, m := range data.Meals {
		if strings.TrimSpace(m.ID) == "" {
			return invalidf("imported meal is missing an id")
		}
		if err := nutrition.ValidateMeal(m); err != nil {
			return fmt.Errorf("meal %s: %w", m.ID, err)
		}
	}
	for _, w := range data.Workouts {
		if strings.TrimSpace(w.ID) == "" {
			return invalidf("imported workout is missing an id")
		}
		if err := nutrition.ValidateWorkout(w); err != nil {
			return fmt.Errorf("workout %s: %w", w.ID, err)
		}
	}
	for _, e := range data.Sleep {
		if err := nutrition.ValidateSleep(e); err != nil {
			return fmt.Errorf("sleep entry %s: %w", e.Date, err)
		}
	}
	for _, m := range data.Moods {
		if strings.TrimSpace(m.ID) == "" {
			return invalidf("imported mood is missing an id")
		}
		if err := nutrition.ValidateMood(m); err != nil {
			return fmt.Errorf("mood %s: %w", m.ID, err)
		}
	}
	return nil
}

// mergeByKey appends incoming items whose key is not already present and
// counts the rest as conflicts. Existing items always win.
func mergeByKey[T any](existing, incoming []T, keyOf func(T) string, report *ImportReport) []T {
	out := make([]T, 0, len(existing)+len(incoming))
	out = append(out, existing...)
	seen := make(map[string]bool, len(out))
	for _, item := range existing {
		seen[keyOf(item)] = true
	}
	for _, item := range incoming {
		key := keyOf(item)
		if seen[key] {
			report.Conflicts++
			continue
		}
		seen[key] = true
		out = append(out, item)
		report.Inserted++
	}
	return out
}
