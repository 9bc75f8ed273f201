package timeutil

import "time"

// All dashboard day arithmetic runs in UTC at day granularity. Every value
// returned here carries time.UTC as its location so map keys built from these
// values compare correctly.

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last instant of t's UTC day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// TrailingWindow returns the n calendar days ending at now, inclusive,
// oldest first.
func TrailingWindow(now time.Time, n int) []time.Time {
	start := StartOfDay(now).AddDate(0, 0, -(n - 1))
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// MonthBounds returns the first and last day of the month, both at midnight UTC.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// CombineDateAndTime joins a calendar day with a time-of-day into one UTC
// instant. Work patterns carry time-of-day only; this pins a pattern to a
// specific occurrence. Returns nil when either side is missing.
func CombineDateAndTime(date time.Time, timeOfDay *time.Time) *time.Time {
	if date.IsZero() || timeOfDay == nil {
		return nil
	}
	date = date.UTC()
	tod := timeOfDay.UTC()
	combined := time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC)
	return &combined
}
