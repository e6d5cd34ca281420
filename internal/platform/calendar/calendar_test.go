package calendar_test

import (
	"testing"
	"time"

	"ascend/internal/platform/calendar"
)

func TestDateKeyIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()
	morning := time.Date(2026, 3, 4, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, 3, 4, 23, 59, 59, 0, time.Local)
	if calendar.DateKey(morning) != "2026-03-04" || calendar.DateKey(night) != "2026-03-04" {
		t.Fatalf("expected same key for both ends of the day, got %s and %s", calendar.DateKey(morning), calendar.DateKey(night))
	}
}

func TestWeekStartIsMonday(t *testing.T) {
	t.Parallel()
	cases := []struct {
		day  time.Time
		want string
	}{
		{time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local), "2026-03-02"},  // Monday maps to itself
		{time.Date(2026, 3, 4, 10, 0, 0, 0, time.Local), "2026-03-02"},  // Wednesday
		{time.Date(2026, 3, 7, 10, 0, 0, 0, time.Local), "2026-03-02"},  // Saturday
		{time.Date(2026, 3, 8, 10, 0, 0, 0, time.Local), "2026-03-02"},  // Sunday belongs to prior week
		{time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), "2026-03-09"},   // next Monday
		{time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local), "2025-12-29"},  // year boundary
	}
	for _, c := range cases {
		if got := calendar.WeekStart(c.day); got != c.want {
			t.Fatalf("WeekStart(%s) = %s, want %s", c.day.Weekday(), got, c.want)
		}
	}
}

func TestMonthKey(t *testing.T) {
	t.Parallel()
	if got := calendar.MonthKey(time.Date(2026, 12, 31, 23, 0, 0, 0, time.Local)); got != "2026-12" {
		t.Fatalf("MonthKey = %s, want 2026-12", got)
	}
}
