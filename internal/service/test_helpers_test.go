package service_test

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/saadjs/nutrilog/internal/kv"
	"github.com/saadjs/nutrilog/internal/logstore"
	"github.com/saadjs/nutrilog/internal/service"
)

// fixedNow is a Wednesday.
var fixedNow = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*service.Service, *kv.Memory) {
	t.Helper()
	backing := kv.NewMemory()
	return newTestServiceOn(t, backing), backing
}

func newTestServiceOn(t *testing.T, backing kv.Store) *service.Service {
	t.Helper()
	logs := logstore.New(backing, logstore.WithLogger(log.New(io.Discard, "", 0)))
	return service.New(logs, service.Options{
		Location:  time.UTC,
		WeekStart: time.Monday,
		Now:       func() time.Time { return fixedNow },
	})
}

func at(day, hour int) time.Time {
	return time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

var defaultProfile = service.ProfileInput{
	Age:           30,
	Gender:        "male",
	Height:        180,
	HeightUnit:    "cm",
	Weight:        80,
	WeightUnit:    "kg",
	ActivityLevel: "moderate",
	Goal:          "lose_weight",
}
