// Package calendar reduces timestamps to the canonical keys every temporal
// decision is made over. Comparing keys instead of raw timestamps keeps day
// and week boundaries unambiguous regardless of time of day.
package calendar

import "time"

// DateKey returns the YYYY-MM-DD key for t in its own location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekStart returns the DateKey of the Monday on or before t. Sunday counts
// as day seven of the prior week.
func WeekStart(t time.Time) string {
	offset := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return DateKey(t.AddDate(0, 0, -offset))
}

// MonthKey returns the YYYY-MM key for t. Grace-day allowances reset when the
// observed month key changes.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
