package nutrition

import (
	"math"
	"time"

	"github.com/saadjs/nutrilog/internal/model"
)

type MealTypeTotals struct {
	MealType model.MealType `json:"meal_type"`
	Entries  int            `json:"entries"`
	Calories float64        `json:"calories"`
	ProteinG float64        `json:"protein_g"`
	CarbsG   float64        `json:"carbs_g"`
	FatG     float64        `json:"fat_g"`
}

type DailyNutrition struct {
	Date              string           `json:"date"`
	Entries           int              `json:"entries"`
	TotalCalories     float64          `json:"total_calories"`
	ProteinG          float64          `json:"protein_g"`
	CarbsG            float64          `json:"carbs_g"`
	FatG              float64          `json:"fat_g"`
	FiberG            float64          `json:"fiber_g"`
	SugarG            float64          `json:"sugar_g"`
	SodiumMg          float64          `json:"sodium_mg"`
	GoalCalories      int              `json:"goal_calories"`
	GoalProteinG      int              `json:"goal_protein_g"`
	GoalCarbsG        int              `json:"goal_carbs_g"`
	GoalFatG          int              `json:"goal_fat_g"`
	RemainingCalories float64          `json:"remaining_calories"`
	RemainingProteinG float64          `json:"remaining_protein_g"`
	RemainingCarbsG   float64          `json:"remaining_carbs_g"`
	RemainingFatG     float64          `json:"remaining_fat_g"`
	ByMealType        []MealTypeTotals `json:"by_meal_type"`
}

// AggregateDay folds the meals logged on date's calendar day in loc into
// totals against targets. Meals on other days are ignored. A negative
// remaining value means the day is over budget.
func AggregateDay(date time.Time, loc *time.Location, meals []model.MealEntry, targets model.Targets) (DailyNutrition, error) {
	out := DailyNutrition{
		Date:         DayKey(date, loc),
		GoalCalories: targets.Calories,
		GoalProteinG: targets.ProteinG,
		GoalCarbsG:   targets.CarbsG,
		GoalFatG:     targets.FatG,
		ByMealType:   make([]MealTypeTotals, len(model.MealTypes)),
	}
	slot := make(map[model.MealType]int, len(model.MealTypes))
	for i, mt := range model.MealTypes {
		out.ByMealType[i].MealType = mt
		slot[mt] = i
	}

	for _, meal := range meals {
		if !SameDay(meal.LoggedAt, date, loc) {
			continue
		}
		if err := ValidateMeal(meal); err != nil {
			return DailyNutrition{}, err
		}
		q := meal.Quantity
		f := meal.Food
		out.Entries++
		out.TotalCalories += f.Calories * q
		out.ProteinG += f.ProteinG * q
		out.CarbsG += f.CarbsG * q
		out.FatG += f.FatG * q
		out.FiberG += optional(f.FiberG) * q
		out.SugarG += optional(f.SugarG) * q
		out.SodiumMg += optional(f.SodiumMg) * q

		if i, ok := slot[meal.MealType]; ok {
			b := &out.ByMealType[i]
			b.Entries++
			b.Calories += f.Calories * q
			b.ProteinG += f.ProteinG * q
			b.CarbsG += f.CarbsG * q
			b.FatG += f.FatG * q
		}
	}

	out.RemainingCalories = float64(targets.Calories) - out.TotalCalories
	out.RemainingProteinG = float64(targets.ProteinG) - out.ProteinG
	out.RemainingCarbsG = float64(targets.CarbsG) - out.CarbsG
	out.RemainingFatG = float64(targets.FatG) - out.FatG
	return out, nil
}

// ValidateFood rejects fact sheets with negative or non-finite values.
func ValidateFood(f model.FoodItem) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"calories", f.Calories},
		{"protein", f.ProteinG},
		{"carbs", f.CarbsG},
		{"fat", f.FatG},
		{"fiber", optional(f.FiberG)},
		{"sugar", optional(f.SugarG)},
		{"sodium", optional(f.SodiumMg)},
	}
	for _, field := range fields {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return invalidf("%s must be a finite number", field.name)
		}
		if err := validateNonNegative(field.name, field.value); err != nil {
			return err
		}
	}
	return nil
}

func ValidateMeal(m model.MealEntry) error {
	if m.Quantity <= 0 || math.IsNaN(m.Quantity) || math.IsInf(m.Quantity, 0) {
		return invalidf("quantity must be > 0")
	}
	return ValidateFood(m.Food)
}

// MaxSleepHours bounds the hours a single sleep entry may record.
const MaxSleepHours = 24

func ValidateSleepHours(hours float64) error {
	if math.IsNaN(hours) || hours < 0 || hours > MaxSleepHours {
		return invalidf("hours must be between 0 and %d", MaxSleepHours)
	}
	return nil
}

func ValidateSleep(e model.SleepEntry) error {
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return invalidf("invalid sleep date %q (expected YYYY-MM-DD)", e.Date)
	}
	return ValidateSleepHours(e.Hours)
}

func optional(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
