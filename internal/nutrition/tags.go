package nutrition

import (
	"strings"

	"github.com/saadjs/nutrilog/internal/model"
)

func normalizeTag(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func ParseMealType(raw string) (model.MealType, error) {
	t := model.MealType(normalizeTag(raw))
	for _, known := range model.MealTypes {
		if t == known {
			return t, nil
		}
	}
	return "", invalidf("invalid meal type %q (use breakfast, lunch, dinner or snack)", raw)
}

func ParseGender(raw string) (model.Gender, error) {
	switch g := model.Gender(normalizeTag(raw)); g {
	case model.GenderMale, model.GenderFemale, model.GenderOther:
		return g, nil
	}
	return "", invalidf("invalid gender %q (use male, female or other)", raw)
}

func ParseActivityLevel(raw string) (model.ActivityLevel, error) {
	level := model.ActivityLevel(normalizeTag(raw))
	if _, ok := activityMultipliers[level]; !ok {
		return "", invalidf("invalid activity level %q (use sedentary, light, moderate, active or very_active)", raw)
	}
	return level, nil
}

func ParseGoalDirection(raw string) (model.GoalDirection, error) {
	goal := model.GoalDirection(normalizeTag(raw))
	if _, ok := goalAdjustments[goal]; !ok {
		return "", invalidf("invalid goal %q (use lose_weight, maintain_weight or gain_weight)", raw)
	}
	return goal, nil
}

func ParseMood(raw string) (model.Mood, error) {
	switch m := model.Mood(normalizeTag(raw)); m {
	case model.MoodGreat, model.MoodGood, model.MoodOkay, model.MoodBad, model.MoodAwful:
		return m, nil
	}
	return "", invalidf("invalid mood %q (use great, good, okay, bad or awful)", raw)
}

func ValidateMood(m model.MoodEntry) error {
	if parsed, err := ParseMood(string(m.Mood)); err != nil || parsed != m.Mood {
		return invalidf("invalid mood %q", m.Mood)
	}
	return nil
}
