package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

type MealInput struct {
	Food          model.FoodItem
	Quantity      float64
	MealType      string
	LoggedAt      time.Time
	OverrideImage string
}

// MealUpdate edits a logged meal. Nil / empty fields are left unchanged.
type MealUpdate struct {
	Quantity *float64
	MealType string
}

func (s *Service) LogMeal(ctx context.Context, in MealInput) (model.MealEntry, error) {
	in.Food.Name = trimmed(in.Food.Name)
	if in.Food.Name == "" {
		return model.MealEntry{}, invalidf("food name is required")
	}
	if err := nutrition.ValidateFood(in.Food); err != nil {
		return model.MealEntry{}, err
	}
	if err := validatePositiveFloat("quantity", in.Quantity); err != nil {
		return model.MealEntry{}, err
	}
	mealType, err := nutrition.ParseMealType(in.MealType)
	if err != nil {
		return model.MealEntry{}, err
	}
	entry := model.MealEntry{
		ID:            uuid.NewString(),
		Food:          in.Food,
		Quantity:      in.Quantity,
		MealType:      mealType,
		LoggedAt:      s.timeOrNow(in.LoggedAt),
		OverrideImage: trimmed(in.OverrideImage),
	}
	if err := s.logs.Meals.Append(ctx, entry); err != nil {
		return model.MealEntry{}, err
	}
	return entry, nil
}

// UpdateMeal reports false when id is unknown; that is not an error.
func (s *Service) UpdateMeal(ctx context.Context, id string, in MealUpdate) (model.MealEntry, bool, error) {
	if in.Quantity == nil && trimmed(in.MealType) == "" {
		return model.MealEntry{}, false, invalidf("set quantity or meal type")
	}
	if in.Quantity != nil {
		if err := validatePositiveFloat("quantity", *in.Quantity); err != nil {
			return model.MealEntry{}, false, err
		}
	}
	var mealType model.MealType
	if trimmed(in.MealType) != "" {
		parsed, err := nutrition.ParseMealType(in.MealType)
		if err != nil {
			return model.MealEntry{}, false, err
		}
		mealType = parsed
	}
	return s.logs.Meals.Update(ctx, trimmed(id), func(m model.MealEntry) (model.MealEntry, error) {
		if in.Quantity != nil {
			m.Quantity = *in.Quantity
		}
		if mealType != "" {
			m.MealType = mealType
		}
		return m, nil
	})
}

func (s *Service) DeleteMeal(ctx context.Context, id string) (bool, error) {
	return s.logs.Meals.Remove(ctx, trimmed(id))
}

// ListMeals returns the meals logged on date's calendar day, oldest first.
func (s *Service) ListMeals(ctx context.Context, date time.Time) ([]model.MealEntry, error) {
	meals, err := s.logs.Meals.Items(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.MealEntry, 0)
	for _, m := range meals {
		if nutrition.SameDay(m.LoggedAt, date, s.loc) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LoggedAt.Before(out[j].LoggedAt)
	})
	return out, nil
}
