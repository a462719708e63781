package service

import (
	"context"
	"time"

	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

func (s *Service) SetWeeklyGoal(ctx context.Context, settings model.WeeklyGoalSettings) error {
	if err := validateNonNegativeInt("weekly calories", settings.WeeklyCalories); err != nil {
		return err
	}
	if err := validateNonNegativeInt("buffer max per day", settings.BufferMaxPerDay); err != nil {
		return err
	}
	return s.logs.WeeklyGoal.Put(ctx, settings)
}

// WeeklyGoal returns the stored settings, or disabled settings when none
// were saved.
func (s *Service) WeeklyGoal(ctx context.Context) (model.WeeklyGoalSettings, error) {
	settings, _, err := s.logs.WeeklyGoal.Get(ctx)
	return settings, err
}

// WeekSummary runs the weekly buffer over the days of date's week that have
// at least one logged meal. Days with nothing logged do not bank.
func (s *Service) WeekSummary(ctx context.Context, date time.Time) (nutrition.WeeklySummary, error) {
	settings, err := s.WeeklyGoal(ctx)
	if err != nil {
		return nutrition.WeeklySummary{}, err
	}
	targets, _, err := s.Targets(ctx)
	if err != nil {
		return nutrition.WeeklySummary{}, err
	}
	meals, err := s.logs.Meals.Items(ctx)
	if err != nil {
		return nutrition.WeeklySummary{}, err
	}

	start, end := nutrition.WeekBounds(date, s.loc, s.weekStart)
	days := make([]nutrition.DayTotal, 0, nutrition.DaysPerWeek)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		daily, err := nutrition.AggregateDay(d, s.loc, meals, targets)
		if err != nil {
			return nutrition.WeeklySummary{}, err
		}
		if daily.Entries == 0 {
			continue
		}
		days = append(days, nutrition.DayTotal{Date: d, Calories: daily.TotalCalories})
	}

	return nutrition.ComputeWeek(nutrition.WeekInput{
		Date:        date,
		Location:    s.loc,
		StartDay:    s.weekStart,
		Days:        days,
		DailyTarget: targets.Calories,
		Settings:    settings,
	})
}
