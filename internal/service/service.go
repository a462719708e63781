package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/saadjs/nutrilog/internal/logstore"
	"github.com/saadjs/nutrilog/internal/nutrition"
)

type Options struct {
	Location  *time.Location
	WeekStart time.Weekday
	Now       func() time.Time
}

// Service is the entry point front ends call. It owns no state beyond the
// log store; every summary is recomputed from the stored entries.
type Service struct {
	logs      *logstore.Store
	loc       *time.Location
	weekStart time.Weekday
	now       func() time.Time
}

func New(logs *logstore.Store, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{logs: logs, loc: opts.Location, weekStart: opts.WeekStart, now: opts.Now}
}

func (s *Service) Location() *time.Location { return s.loc }

func (s *Service) WeekStart() time.Weekday { return s.weekStart }

func (s *Service) Logs() *logstore.Store { return s.logs }

func (s *Service) Today() time.Time { return s.now().In(s.loc) }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", nutrition.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return invalidf("%s must be > 0", name)
	}
	return nil
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return invalidf("%s must be >= 0", name)
	}
	return nil
}

func (s *Service) timeOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t
}

func trimmed(value string) string {
	return strings.TrimSpace(value)
}
