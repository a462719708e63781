package service

import (
	"context"
	"time"

	"github.com/saadjs/nutrilog/internal/logstore"
	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

func (s *Service) LogSleep(ctx context.Context, date time.Time, hours float64) (model.SleepEntry, error) {
	if err := nutrition.ValidateSleepHours(hours); err != nil {
		return model.SleepEntry{}, err
	}
	return s.logs.LogSleep(ctx, nutrition.DayKey(date, s.loc), hours, s.now())
}

func (s *Service) SleepHistory(ctx context.Context, days int) ([]model.SleepEntry, error) {
	if days <= 0 || days > logstore.MaxSleepHistoryDays {
		return nil, invalidf("days must be between 1 and %d", logstore.MaxSleepHistoryDays)
	}
	return s.logs.SleepHistory(ctx, days, s.now(), s.loc)
}
