package nutrition

import (
	"sort"
	"time"

	"github.com/saadjs/nutrilog/internal/model"
)

const DaysPerWeek = 7

type DayTotal struct {
	Date     time.Time
	Calories float64
}

type BufferDay struct {
	Date           string  `json:"date"`
	Calories       float64 `json:"calories"`
	Delta          float64 `json:"delta"`
	Banked         float64 `json:"banked"`
	Balance        float64 `json:"balance"`
	AvailableToday float64 `json:"available_today"`
}

type WeeklySummary struct {
	WeekStart       string      `json:"week_start"`
	WeekEnd         string      `json:"week_end"`
	Enabled         bool        `json:"enabled"`
	WeeklyTarget    float64     `json:"weekly_target"`
	DailyGoal       float64     `json:"daily_goal"`
	Consumed        float64     `json:"consumed"`
	RemainingWeekly float64     `json:"remaining_weekly"`
	Balance         float64     `json:"balance"`
	Days            []BufferDay `json:"days"`
}

type WeekInput struct {
	// Date is any instant inside the week being computed.
	Date        time.Time
	Location    *time.Location
	StartDay    time.Weekday
	Days        []DayTotal
	DailyTarget int
	Settings    model.WeeklyGoalSettings
}

// WeekBounds returns local midnight of the first day of date's week and of
// the first day of the following week. Every day falls in exactly one week.
func WeekBounds(date time.Time, loc *time.Location, startDay time.Weekday) (time.Time, time.Time) {
	day := BeginningOfDay(date, loc)
	offset := (int(day.Weekday()) - int(startDay) + DaysPerWeek) % DaysPerWeek
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, DaysPerWeek)
}

// ComputeWeek runs the weekly buffer over the logged days of one week. Each
// day banks goal minus intake; with the buffer cap on, a day banks at most
// BufferMaxPerDay and the excess is dropped. Overages are never capped.
// Disabled settings leave the engine inert: nothing is banked and every day
// gets the plain daily target.
func ComputeWeek(in WeekInput) (WeeklySummary, error) {
	if in.DailyTarget < 0 {
		return WeeklySummary{}, invalidf("daily target must be >= 0")
	}
	if in.Settings.WeeklyCalories < 0 {
		return WeeklySummary{}, invalidf("weekly calories must be >= 0")
	}
	if in.Settings.BufferMaxPerDay < 0 {
		return WeeklySummary{}, invalidf("buffer max per day must be >= 0")
	}
	start, end := WeekBounds(in.Date, in.Location, in.StartDay)

	days, err := sortedWeekDays(in.Days, in.Location, start, end)
	if err != nil {
		return WeeklySummary{}, err
	}

	out := WeeklySummary{
		WeekStart: DayKey(start, in.Location),
		WeekEnd:   DayKey(end.AddDate(0, 0, -1), in.Location),
		Enabled:   in.Settings.Enabled,
		Days:      make([]BufferDay, 0, len(days)),
	}
	out.WeeklyTarget = float64(in.DailyTarget * DaysPerWeek)
	out.DailyGoal = float64(in.DailyTarget)
	if in.Settings.Enabled && in.Settings.WeeklyCalories > 0 {
		out.WeeklyTarget = float64(in.Settings.WeeklyCalories)
		out.DailyGoal = out.WeeklyTarget / DaysPerWeek
	}

	balance := 0.0
	for _, d := range days {
		row := BufferDay{
			Date:           DayKey(d.Date, in.Location),
			Calories:       d.Calories,
			Delta:          out.DailyGoal - d.Calories,
			AvailableToday: out.DailyGoal,
		}
		if in.Settings.Enabled {
			row.AvailableToday = out.DailyGoal + balance
			row.Banked = row.Delta
			if in.Settings.BufferEnabled && row.Banked > float64(in.Settings.BufferMaxPerDay) {
				row.Banked = float64(in.Settings.BufferMaxPerDay)
			}
			balance += row.Banked
			row.Balance = balance
		}
		out.Consumed += d.Calories
		out.Days = append(out.Days, row)
	}
	out.Balance = balance
	out.RemainingWeekly = out.WeeklyTarget - out.Consumed
	return out, nil
}

func sortedWeekDays(in []DayTotal, loc *time.Location, start, end time.Time) ([]DayTotal, error) {
	days := make([]DayTotal, len(in))
	copy(days, in)
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		if d.Calories < 0 {
			return nil, invalidf("calories for %s must be >= 0", DayKey(d.Date, loc))
		}
		day := BeginningOfDay(d.Date, loc)
		if day.Before(start) || !day.Before(end) {
			return nil, invalidf("day %s is outside week starting %s", DayKey(d.Date, loc), DayKey(start, loc))
		}
		key := DayKey(d.Date, loc)
		if seen[key] {
			return nil, invalidf("day %s appears more than once", key)
		}
		seen[key] = true
	}
	return days, nil
}
