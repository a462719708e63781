package nutrition

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

func locOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

// BeginningOfDay returns local midnight of t's calendar day in loc.
func BeginningOfDay(t time.Time, loc *time.Location) time.Time {
	loc = locOrLocal(loc)
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func SameDay(a, b time.Time, loc *time.Location) bool {
	loc = locOrLocal(loc)
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func DayKey(t time.Time, loc *time.Location) string {
	return t.In(locOrLocal(loc)).Format(DateLayout)
}

func ParseDay(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), locOrLocal(loc))
	if err != nil {
		return time.Time{}, invalidf("invalid date %q (expected YYYY-MM-DD)", raw)
	}
	return t, nil
}

// ParseWeekday accepts full or three-letter English weekday names.
func ParseWeekday(raw string) (time.Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, invalidf("invalid weekday %q", raw)
}
