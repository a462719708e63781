package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

type WorkoutInput struct {
	Type        string
	Intensity   string
	DurationMin float64
	// Calories overrides the estimate. Required for manual workouts.
	Calories    *int
	Description string
	LoggedAt    time.Time
}

func (s *Service) LogWorkout(ctx context.Context, in WorkoutInput) (model.WorkoutEntry, error) {
	workoutType, err := nutrition.ParseWorkoutType(in.Type)
	if err != nil {
		return model.WorkoutEntry{}, err
	}
	intensity, err := nutrition.ParseIntensity(in.Intensity)
	if err != nil {
		return model.WorkoutEntry{}, err
	}
	if in.DurationMin < 0 {
		return model.WorkoutEntry{}, invalidf("duration must be >= 0")
	}
	description := trimmed(in.Description)
	if workoutType == model.WorkoutDescribed && description == "" {
		return model.WorkoutEntry{}, invalidf("description is required for described workouts")
	}

	var calories int
	switch {
	case in.Calories != nil:
		if err := validateNonNegativeInt("calories", *in.Calories); err != nil {
			return model.WorkoutEntry{}, err
		}
		calories = *in.Calories
	case workoutType == model.WorkoutManual:
		return model.WorkoutEntry{}, invalidf("calories are required for manual workouts")
	default:
		calories, err = nutrition.EstimateWorkoutCalories(workoutType, intensity, in.DurationMin)
		if err != nil {
			return model.WorkoutEntry{}, err
		}
	}

	entry := model.WorkoutEntry{
		ID:          uuid.NewString(),
		Type:        workoutType,
		Intensity:   intensity,
		DurationMin: in.DurationMin,
		Calories:    calories,
		LoggedAt:    s.timeOrNow(in.LoggedAt),
		Description: description,
	}
	if err := s.logs.Workouts.Append(ctx, entry); err != nil {
		return model.WorkoutEntry{}, err
	}
	return entry, nil
}

func (s *Service) DeleteWorkout(ctx context.Context, id string) (bool, error) {
	return s.logs.Workouts.Remove(ctx, trimmed(id))
}

func (s *Service) ListWorkouts(ctx context.Context, date time.Time) ([]model.WorkoutEntry, error) {
	workouts, err := s.logs.Workouts.Items(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.WorkoutEntry, 0)
	for _, w := range workouts {
		if nutrition.SameDay(w.LoggedAt, date, s.loc) {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LoggedAt.Before(out[j].LoggedAt)
	})
	return out, nil
}
