package services

import "time"

const dayLayout = "2006-01-02"

// DateOnly truncates a timestamp to midnight of its calendar day.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// FormatDay renders a timestamp as an ISO calendar date string.
func FormatDay(value time.Time) string {
	return value.Format(dayLayout)
}

// ParseDay parses an ISO calendar date string.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(dayLayout, value)
}

// DaysBetween returns whole calendar days from one date to another,
// negative when to precedes from. Days are compared in UTC so daylight
// saving shifts cannot produce partial days.
func DaysBetween(from time.Time, to time.Time) int {
	start := utcMidnight(from)
	end := utcMidnight(to)
	return int(end.Sub(start).Hours() / 24)
}

func utcMidnight(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Sunday that begins the week containing the date.
func WeekStart(value time.Time) time.Time {
	day := DateOnly(value)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
