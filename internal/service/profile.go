package service

import (
	"context"

	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

type ProfileInput struct {
	Age           int
	Gender        string
	Height        float64
	HeightUnit    string
	Weight        float64
	WeightUnit    string
	GoalWeight    *float64
	ActivityLevel string
	Goal          string
}

// SetProfile validates the body metrics, derives the daily targets and
// stores the profile. Targets are never accepted from the caller.
func (s *Service) SetProfile(ctx context.Context, in ProfileInput) (model.UserProfile, error) {
	p, err := s.buildProfile(in)
	if err != nil {
		return model.UserProfile{}, err
	}
	return s.saveProfile(ctx, p)
}

func (s *Service) Profile(ctx context.Context) (model.UserProfile, bool, error) {
	return s.logs.Profile.Get(ctx)
}

// UpdateWeight records a new body weight and recomputes the targets that
// depend on it.
func (s *Service) UpdateWeight(ctx context.Context, weight float64, unit string) (model.UserProfile, error) {
	p, ok, err := s.logs.Profile.Get(ctx)
	if err != nil {
		return model.UserProfile{}, err
	}
	if !ok {
		return model.UserProfile{}, invalidf("profile is not set")
	}
	kg, err := nutrition.WeightToKg(weight, unit)
	if err != nil {
		return model.UserProfile{}, err
	}
	p.WeightKg = kg
	return s.saveProfile(ctx, p)
}

// Targets returns the stored daily targets and whether a profile exists.
func (s *Service) Targets(ctx context.Context) (model.Targets, bool, error) {
	p, ok, err := s.logs.Profile.Get(ctx)
	if err != nil || !ok {
		return model.Targets{}, false, err
	}
	return p.Targets, true, nil
}

func (s *Service) buildProfile(in ProfileInput) (model.UserProfile, error) {
	if in.Age <= 0 {
		return model.UserProfile{}, invalidf("age must be > 0")
	}
	gender, err := nutrition.ParseGender(in.Gender)
	if err != nil {
		return model.UserProfile{}, err
	}
	heightCm, err := nutrition.HeightToCm(in.Height, in.HeightUnit)
	if err != nil {
		return model.UserProfile{}, err
	}
	weightKg, err := nutrition.WeightToKg(in.Weight, in.WeightUnit)
	if err != nil {
		return model.UserProfile{}, err
	}
	level, err := nutrition.ParseActivityLevel(in.ActivityLevel)
	if err != nil {
		return model.UserProfile{}, err
	}
	goal, err := nutrition.ParseGoalDirection(in.Goal)
	if err != nil {
		return model.UserProfile{}, err
	}
	p := model.UserProfile{
		Age:           in.Age,
		Gender:        gender,
		HeightCm:      heightCm,
		WeightKg:      weightKg,
		ActivityLevel: level,
		Goal:          goal,
	}
	if in.GoalWeight != nil {
		kg, err := nutrition.WeightToKg(*in.GoalWeight, in.WeightUnit)
		if err != nil {
			return model.UserProfile{}, err
		}
		p.GoalWeightKg = &kg
	}
	return p, nil
}

func (s *Service) saveProfile(ctx context.Context, p model.UserProfile) (model.UserProfile, error) {
	targets, err := nutrition.ComputeTargets(p)
	if err != nil {
		return model.UserProfile{}, err
	}
	p.Targets = targets
	p.UpdatedAt = s.now()
	if err := s.logs.Profile.Put(ctx, p); err != nil {
		return model.UserProfile{}, err
	}
	return p, nil
}
