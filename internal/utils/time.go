package utils

import (
	"fmt"
	"time"

	"github.com/lifeos-app/lifeos/internal/constants"
)

// Today returns the current calendar date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDay parses a calendar date string (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	return t, nil
}

// AddDays returns the calendar date n days after day. Negative n goes backward.
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// WeekStart returns the Monday-aligned start of the week containing day.
func WeekStart(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	// time.Weekday puts Sunday at 0; shift so Monday is the anchor
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(constants.DateFormat), nil
}

// CurrentWeekStart returns the Monday of the current week in local time.
func CurrentWeekStart() string {
	ws, _ := WeekStart(Today())
	return ws
}

// FormatWeekRange renders a Monday-aligned week start as "Jan 2 - Jan 8, 2006".
func FormatWeekRange(weekStart string) string {
	start, err := ParseDay(weekStart)
	if err != nil {
		return weekStart
	}
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}

// LastNDays returns the n calendar dates ending at day, oldest first.
func LastNDays(day string, n int) ([]string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return nil, err
	}
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = t.AddDate(0, 0, -(n - 1 - i)).Format(constants.DateFormat)
	}
	return days, nil
}
