package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and on-disk date format. The booking sheet has
// always used day/month/year order.
const DateLayout = "02/01/2006"

// ClockLayout is the check-in/check-out time-of-day format.
const ClockLayout = "15:04"

// ParseDate parses a dd/mm/yyyy date into a civil date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatDate renders a civil date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly truncates t to midnight UTC so stored dates compare cleanly.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseClock parses "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MonthBounds returns the first and last calendar day of the month, both at
// midnight UTC.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// DaysInMonth returns the number of calendar days in the month.
func DaysInMonth(year int, month time.Month) int {
	_, last := MonthBounds(year, month)
	return last.Day()
}
