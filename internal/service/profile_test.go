package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
	"github.com/saadjs/nutrilog/internal/service"
)

func TestSetProfileDerivesTargets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	p, err := svc.SetProfile(ctx, defaultProfile)
	if err != nil {
		t.Fatalf("set profile: %v", err)
	}
	want := model.Targets{Calories: 2259, ProteinG: 141, CarbsG: 254, FatG: 75}
	if p.Targets != want {
		t.Fatalf("expected targets %+v, got %+v", want, p.Targets)
	}

	targets, ok, err := svc.Targets(ctx)
	if err != nil || !ok {
		t.Fatalf("targets: ok=%v err=%v", ok, err)
	}
	if targets != want {
		t.Fatalf("expected stored targets %+v, got %+v", want, targets)
	}
}

func TestUpdateWeightRecomputesTargets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.SetProfile(ctx, defaultProfile); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	p, err := svc.UpdateWeight(ctx, 70, "kg")
	if err != nil {
		t.Fatalf("update weight: %v", err)
	}
	if p.Targets.Calories != 2104 {
		t.Fatalf("expected 2104 kcal after weight change, got %d", p.Targets.Calories)
	}
}

func TestUpdateWeightWithoutProfile(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	if _, err := svc.UpdateWeight(context.Background(), 70, "kg"); !errors.Is(err, nutrition.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSetProfileRejectsBadInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(in *service.ProfileInput)
	}{
		{"zero age", func(in *service.ProfileInput) { in.Age = 0 }},
		{"unknown gender", func(in *service.ProfileInput) { in.Gender = "robot" }},
		{"unknown activity", func(in *service.ProfileInput) { in.ActivityLevel = "couch" }},
		{"unknown goal", func(in *service.ProfileInput) { in.Goal = "bulk" }},
		{"negative weight", func(in *service.ProfileInput) { in.Weight = -1 }},
		{"unknown height unit", func(in *service.ProfileInput) { in.HeightUnit = "furlong" }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			svc, _ := newTestService(t)
			in := defaultProfile
			tc.mutate(&in)
			if _, err := svc.SetProfile(ctx, in); !errors.Is(err, nutrition.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			if _, ok, _ := svc.Profile(ctx); ok {
				t.Fatal("rejected input must not store a profile")
			}
		})
	}
}
