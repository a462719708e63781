package model

import "time"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

type WorkoutType string

const (
	WorkoutRun           WorkoutType = "run"
	WorkoutWeightLifting WorkoutType = "weight_lifting"
	WorkoutDescribed     WorkoutType = "described"
	WorkoutManual        WorkoutType = "manual"
)

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type GoalDirection string

const (
	GoalLoseWeight     GoalDirection = "lose_weight"
	GoalMaintainWeight GoalDirection = "maintain_weight"
	GoalGainWeight     GoalDirection = "gain_weight"
)

type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodBad   Mood = "bad"
	MoodAwful Mood = "awful"
)

// FoodItem is a nutritional fact sheet for one serving. It is copied by value
// into every MealEntry and never mutated afterwards.
type FoodItem struct {
	Name        string   `json:"name"`
	Calories    float64  `json:"calories"`
	ProteinG    float64  `json:"protein_g"`
	CarbsG      float64  `json:"carbs_g"`
	FatG        float64  `json:"fat_g"`
	FiberG      *float64 `json:"fiber_g,omitempty"`
	SugarG      *float64 `json:"sugar_g,omitempty"`
	SodiumMg    *float64 `json:"sodium_mg,omitempty"`
	ServingSize string   `json:"serving_size,omitempty"`
	ImageRef    string   `json:"image_ref,omitempty"`
}

type MealEntry struct {
	ID            string    `json:"id"`
	Food          FoodItem  `json:"food"`
	Quantity      float64   `json:"quantity"`
	MealType      MealType  `json:"meal_type"`
	LoggedAt      time.Time `json:"logged_at"`
	OverrideImage string    `json:"override_image,omitempty"`
}

type WorkoutEntry struct {
	ID          string      `json:"id"`
	Type        WorkoutType `json:"type"`
	Intensity   Intensity   `json:"intensity"`
	DurationMin float64     `json:"duration_min"`
	Calories    int         `json:"calories"`
	LoggedAt    time.Time   `json:"logged_at"`
	Description string      `json:"description,omitempty"`
}

type SleepEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Hours     float64   `json:"hours"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MoodEntry struct {
	ID       string    `json:"id"`
	Mood     Mood      `json:"mood"`
	Note     string    `json:"note,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

type Targets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// UserProfile mirrors the remote profile row. Targets is derived from the
// other fields and is rewritten on every save.
type UserProfile struct {
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	HeightCm      float64       `json:"height_cm"`
	WeightKg      float64       `json:"weight_kg"`
	GoalWeightKg  *float64      `json:"goal_weight_kg,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          GoalDirection `json:"goal"`
	Targets       Targets       `json:"targets"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type WeeklyGoalSettings struct {
	Enabled         bool `json:"enabled"`
	WeeklyCalories  int  `json:"weekly_calories,omitempty"`
	BufferEnabled   bool `json:"buffer_enabled"`
	BufferMaxPerDay int  `json:"buffer_max_per_day,omitempty"`
}
