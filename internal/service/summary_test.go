package service_test

import (
	"context"
	"testing"

	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/service"
)

func TestDaySummaryReportsRemainingAndExercise(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.SetProfile(ctx, defaultProfile); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if _, err := svc.LogMeal(ctx, service.MealInput{Food: oats, Quantity: 2, MealType: "breakfast", LoggedAt: at(11, 8)}); err != nil {
		t.Fatalf("log meal: %v", err)
	}
	if _, err := svc.LogWorkout(ctx, service.WorkoutInput{Type: "run", DurationMin: 30, LoggedAt: at(11, 7)}); err != nil {
		t.Fatalf("log workout: %v", err)
	}
	if _, err := svc.LogSleep(ctx, fixedNow, 7.5); err != nil {
		t.Fatalf("log sleep: %v", err)
	}

	day, err := svc.DaySummary(ctx, fixedNow)
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if !day.HasGoal || day.GoalCalories != 2259 {
		t.Fatalf("expected goal 2259, got %+v", day)
	}
	if day.TotalCalories != 500 || day.RemainingCalories != 1759 {
		t.Fatalf("expected 500 eaten and 1759 remaining, got %v / %v", day.TotalCalories, day.RemainingCalories)
	}
	if day.ExerciseCalories != 300 || day.NetCalories != 200 || day.Workouts != 1 {
		t.Fatalf("unexpected exercise figures %+v", day)
	}
	if day.SleepHours != 7.5 {
		t.Fatalf("expected 7.5 h sleep, got %v", day.SleepHours)
	}
	if day.ByMealType[0].MealType != model.MealBreakfast || day.ByMealType[0].Calories != 500 {
		t.Fatalf("unexpected breakdown %+v", day.ByMealType)
	}
}

func TestDaySummaryWithoutProfile(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	day, err := svc.DaySummary(context.Background(), fixedNow)
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if day.HasGoal || day.Entries != 0 || day.RemainingCalories != 0 {
		t.Fatalf("expected empty day without goal, got %+v", day)
	}
}

func TestWeekSummaryBanksCappedSurplus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	if err := svc.SetWeeklyGoal(ctx, model.WeeklyGoalSettings{
		Enabled:         true,
		WeeklyCalories:  14000,
		BufferEnabled:   true,
		BufferMaxPerDay: 200,
	}); err != nil {
		t.Fatalf("set weekly goal: %v", err)
	}
	meal := func(day int, kcal float64) {
		t.Helper()
		food := model.FoodItem{Name: "Plate", Calories: kcal}
		if _, err := svc.LogMeal(ctx, service.MealInput{Food: food, Quantity: 1, MealType: "dinner", LoggedAt: at(day, 19)}); err != nil {
			t.Fatalf("log meal: %v", err)
		}
	}
	meal(9, 1500)  // Monday: +500, capped to +200
	meal(10, 2300) // Tuesday: -300
	meal(8, 100)   // previous week's Sunday

	week, err := svc.WeekSummary(ctx, fixedNow)
	if err != nil {
		t.Fatalf("week summary: %v", err)
	}
	if week.WeekStart != "2026-03-09" || week.WeekEnd != "2026-03-15" {
		t.Fatalf("unexpected bounds %s..%s", week.WeekStart, week.WeekEnd)
	}
	if week.DailyGoal != 2000 {
		t.Fatalf("expected daily goal 2000, got %v", week.DailyGoal)
	}
	if len(week.Days) != 2 {
		t.Fatalf("expected two logged days, got %+v", week.Days)
	}
	if week.Days[0].Banked != 200 || week.Days[1].Balance != -100 || week.Balance != -100 {
		t.Fatalf("unexpected buffer rows %+v", week.Days)
	}
	if week.Days[1].AvailableToday != 2200 {
		t.Fatalf("expected 2200 available on Tuesday, got %v", week.Days[1].AvailableToday)
	}
	if week.Consumed != 3800 || week.RemainingWeekly != 10200 {
		t.Fatalf("unexpected weekly totals consumed=%v remaining=%v", week.Consumed, week.RemainingWeekly)
	}
}

func TestWeekSummaryDisabledIsInert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.SetProfile(ctx, defaultProfile); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if _, err := svc.LogMeal(ctx, service.MealInput{Food: oats, Quantity: 1, MealType: "lunch", LoggedAt: at(9, 12)}); err != nil {
		t.Fatalf("log meal: %v", err)
	}
	week, err := svc.WeekSummary(ctx, fixedNow)
	if err != nil {
		t.Fatalf("week summary: %v", err)
	}
	if week.Enabled || week.Balance != 0 || week.DailyGoal != 2259 {
		t.Fatalf("expected inert week on the daily target, got %+v", week)
	}
	if len(week.Days) != 1 || week.Days[0].Banked != 0 || week.Days[0].AvailableToday != 2259 {
		t.Fatalf("unexpected rows %+v", week.Days)
	}
}
