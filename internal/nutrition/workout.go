package nutrition

import (
	"math"
	"strings"

	"github.com/saadjs/nutrilog/internal/model"
)

// kcal per minute at medium intensity.
var baseRatePerMinute = map[model.WorkoutType]float64{
	model.WorkoutRun:           10,
	model.WorkoutWeightLifting: 6,
	model.WorkoutDescribed:     5,
}

var intensityMultiplier = map[model.Intensity]float64{
	model.IntensityLow:    0.7,
	model.IntensityMedium: 1.0,
	model.IntensityHigh:   1.4,
}

// EstimateWorkoutCalories returns the calories burned by a workout. Manual
// workouts always estimate to 0; the caller supplies their calories.
func EstimateWorkoutCalories(workoutType model.WorkoutType, intensity model.Intensity, durationMin float64) (int, error) {
	if workoutType == model.WorkoutManual {
		return 0, nil
	}
	base, ok := baseRatePerMinute[workoutType]
	if !ok {
		return 0, invalidf("unknown workout type %q", workoutType)
	}
	mult, ok := intensityMultiplier[intensity]
	if !ok {
		return 0, invalidf("unknown intensity %q", intensity)
	}
	if math.IsNaN(durationMin) || math.IsInf(durationMin, 0) {
		return 0, invalidf("duration must be a finite number")
	}
	if err := validateNonNegative("duration", durationMin); err != nil {
		return 0, err
	}
	return int(math.Round(base * durationMin * mult)), nil
}

func ParseWorkoutType(raw string) (model.WorkoutType, error) {
	t := model.WorkoutType(normalizeTag(raw))
	if t == model.WorkoutManual {
		return t, nil
	}
	if _, ok := baseRatePerMinute[t]; !ok {
		return "", invalidf("invalid workout type %q (use run, weight_lifting, described or manual)", raw)
	}
	return t, nil
}

func ParseIntensity(raw string) (model.Intensity, error) {
	i := model.Intensity(normalizeTag(raw))
	if i == "" {
		return model.IntensityMedium, nil
	}
	if _, ok := intensityMultiplier[i]; !ok {
		return "", invalidf("invalid intensity %q (use low, medium or high)", raw)
	}
	return i, nil
}

// ValidateWorkout checks a stored workout against the same rules logging one
// enforces. Tags must already be in their canonical form.
func ValidateWorkout(w model.WorkoutEntry) error {
	if t, err := ParseWorkoutType(string(w.Type)); err != nil || t != w.Type {
		return invalidf("invalid workout type %q", w.Type)
	}
	if i, err := ParseIntensity(string(w.Intensity)); err != nil || i != w.Intensity {
		return invalidf("invalid intensity %q", w.Intensity)
	}
	if math.IsNaN(w.DurationMin) || math.IsInf(w.DurationMin, 0) {
		return invalidf("duration must be a finite number")
	}
	if err := validateNonNegative("duration", w.DurationMin); err != nil {
		return err
	}
	if w.Calories < 0 {
		return invalidf("calories must be >= 0")
	}
	if w.Type == model.WorkoutDescribed && strings.TrimSpace(w.Description) == "" {
		return invalidf("description is required for described workouts")
	}
	return nil
}
