package nutrition

import (
	"math"

	"github.com/saadjs/nutrilog/internal/model"
)

// activityMultipliers maps an activity level to its maintenance multiplier.
var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

var goalAdjustments = map[model.GoalDirection]float64{
	model.GoalLoseWeight:     -500,
	model.GoalMaintainWeight: 0,
	model.GoalGainWeight:     500,
}

// Calorie split in whole percent so the products stay exact in float64.
const (
	proteinPct = 25
	carbsPct   = 45
	fatPct     = 30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// BasalMetabolicRate estimates BMR with Mifflin-St Jeor. Gender "other" uses
// the midpoint of the male and female constants.
func BasalMetabolicRate(p model.UserProfile) (float64, error) {
	if p.Age <= 0 {
		return 0, invalidf("age must be > 0")
	}
	if p.HeightCm <= 0 {
		return 0, invalidf("height must be > 0")
	}
	if p.WeightKg <= 0 {
		return 0, invalidf("weight must be > 0")
	}
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	switch p.Gender {
	case model.GenderMale:
		bmr += 5
	case model.GenderFemale:
		bmr -= 161
	case model.GenderOther:
		bmr -= 78
	default:
		return 0, invalidf("gender is required")
	}
	return bmr, nil
}

// ComputeTargets derives the daily calorie and macro targets for a profile.
// It is stateless; callers re-run it whenever a profile input changes.
func ComputeTargets(p model.UserProfile) (model.Targets, error) {
	bmr, err := BasalMetabolicRate(p)
	if err != nil {
		return model.Targets{}, err
	}
	return TargetsFromBase(bmr, p.ActivityLevel, p.Goal)
}

// TargetsFromBase applies the activity multiplier, then the goal adjustment,
// then splits the rounded calorie target into macros. Each macro is rounded
// on its own, so their calorie equivalents may not sum to the target.
func TargetsFromBase(bmr float64, level model.ActivityLevel, goal model.GoalDirection) (model.Targets, error) {
	if bmr <= 0 || math.IsNaN(bmr) || math.IsInf(bmr, 0) {
		return model.Targets{}, invalidf("base metabolic rate must be > 0")
	}
	mult, ok := activityMultipliers[level]
	if !ok {
		return model.Targets{}, invalidf("unknown activity level %q", level)
	}
	adj, ok := goalAdjustments[goal]
	if !ok {
		return model.Targets{}, invalidf("unknown goal %q", goal)
	}
	calories := int(math.Round(bmr*mult + adj))
	if calories <= 0 {
		return model.Targets{}, invalidf("profile yields a non-positive calorie target (%d)", calories)
	}
	return model.Targets{
		Calories: calories,
		ProteinG: macroGrams(calories, proteinPct, kcalPerGramProtein),
		CarbsG:   macroGrams(calories, carbsPct, kcalPerGramCarbs),
		FatG:     macroGrams(calories, fatPct, kcalPerGramFat),
	}, nil
}

func macroGrams(calories, pct, kcalPerGram int) int {
	return int(math.Round(float64(calories*pct) / 100 / float64(kcalPerGram)))
}

// MaintenanceCalories is BMR times the activity multiplier, before any goal
// adjustment.
func MaintenanceCalories(p model.UserProfile) (int, error) {
	bmr, err := BasalMetabolicRate(p)
	if err != nil {
		return 0, err
	}
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return 0, invalidf("unknown activity level %q", p.ActivityLevel)
	}
	return int(math.Round(bmr * mult)), nil
}
