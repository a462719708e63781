package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

func (s *Service) LogMood(ctx context.Context, mood, note string, at time.Time) (model.MoodEntry, error) {
	parsed, err := nutrition.ParseMood(mood)
	if err != nil {
		return model.MoodEntry{}, err
	}
	entry := model.MoodEntry{ID: uuid.NewString(), Mood: parsed, Note: trimmed(note), LoggedAt: s.timeOrNow(at)}
	if err := s.logs.Moods.Append(ctx, entry); err != nil {
		return model.MoodEntry{}, err
	}
	return entry, nil
}

// ListMoods returns the most recent moods first.
func (s *Service) ListMoods(ctx context.Context, limit int) ([]model.MoodEntry, error) {
	moods, err := s.logs.Moods.Items(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(moods, func(i, j int) bool {
		return moods[i].LoggedAt.After(moods[j].LoggedAt)
	})
	if limit <= 0 {
		limit = 50
	}
	if len(moods) > limit {
		moods = moods[:limit]
	}
	return moods, nil
}

func (s *Service) DeleteMood(ctx context.Context, id string) (bool, error) {
	return s.logs.Moods.Remove(ctx, trimmed(id))
}
