package service

import (
	"context"
	"math"
	"time"

	"github.com/saadjs/nutrilog/internal/nutrition"
)

type DayStatus struct {
	nutrition.DailyNutrition
	ExerciseCalories int     `json:"exercise_calories"`
	NetCalories      float64 `json:"net_calories"`
	Workouts         int     `json:"workouts"`
	SleepHours       float64 `json:"sleep_hours"`
	HasGoal          bool    `json:"has_goal"`
}

// DaySummary aggregates one calendar day. Remaining calories are measured
// against intake only; exercise is reported separately.
func (s *Service) DaySummary(ctx context.Context, date time.Time) (*DayStatus, error) {
	targets, hasGoal, err := s.Targets(ctx)
	if err != nil {
		return nil, err
	}
	meals, err := s.logs.Meals.Items(ctx)
	if err != nil {
		return nil, err
	}
	daily, err := nutrition.AggregateDay(date, s.loc, meals, targets)
	if err != nil {
		return nil, err
	}
	status := &DayStatus{DailyNutrition: daily, HasGoal: hasGoal}

	workouts, err := s.ListWorkouts(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, w := range workouts {
		status.ExerciseCalories += w.Calories
	}
	status.Workouts = len(workouts)
	status.NetCalories = math.Round((daily.TotalCalories-float64(status.ExerciseCalories))*10) / 10

	sleep, err := s.logs.Sleep.Items(ctx)
	if err != nil {
		return nil, err
	}
	key := nutrition.DayKey(date, s.loc)
	for _, e := range sleep {
		if e.Date == key {
			status.SleepHours = e.Hours
			break
		}
	}
	return status, nil
}
