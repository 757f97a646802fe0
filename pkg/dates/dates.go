// Package dates holds the pure date arithmetic behind the calendar grids
// and the fiscal-year schedule anchor. All values are normalized to local
// midnight so comparisons never drift across a timezone boundary when
// round-tripping through a YYYY-MM-DD date key.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKeyLayout is the canonical date-key form used across the calendar
const DateKeyLayout = "2006-01-02"

// Midnight normalizes t to local midnight
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DateKey formats a date as its canonical YYYY-MM-DD key
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key back into a local-midnight date.
// The components are split out explicitly rather than handed to a generic
// date parser, so the result is always anchored in the local timezone.
func ParseDateKey(key string) (time.Time, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// weekdayColumn maps a date to its Monday-first column index (Mon=0 .. Sun=6)
func weekdayColumn(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// MonthDays returns the calendar-month view for the month containing ref,
// padded to whole Monday-first weeks. Days from the previous month fill the
// leading partial week and days from the following month complete the final
// row, so the result length is always a multiple of 7.
func MonthDays(ref time.Time) []time.Time {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.Local)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	var days []time.Time
	for i := weekdayColumn(firstOfMonth); i > 0; i-- {
		days = append(days, firstOfMonth.AddDate(0, 0, -i))
	}
	for d := 1; d <= lastOfMonth.Day(); d++ {
		days = append(days, time.Date(ref.Year(), ref.Month(), d, 0, 0, 0, 0, time.Local))
	}
	for i := 1; len(days)%7 != 0; i++ {
		days = append(days, lastOfMonth.AddDate(0, 0, i))
	}
	return days
}

// WeekDays returns the 7 days of ref's week, Monday through Sunday
func WeekDays(ref time.Time) []time.Time {
	start := Midnight(ref).AddDate(0, 0, -weekdayColumn(ref))
	week := make([]time.Time, 7)
	for i := 0; i < 7; i++ {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// FiscalYearInfo computes the anchor dates for fiscal year y. FY y runs
// from October 1 of year y-1 through September 30 of year y; firstWeekStart
// is the first Monday on or after the fiscal year start.
func FiscalYearInfo(y int) (start, firstWeekStart, end time.Time) {
	start = time.Date(y-1, time.October, 1, 0, 0, 0, 0, time.Local)
	firstWeekStart = start
	for firstWeekStart.Weekday() != time.Monday {
		firstWeekStart = firstWeekStart.AddDate(0, 0, 1)
	}
	end = start.AddDate(1, 0, -1)
	return start, firstWeekStart, end
}

// DefaultFiscalYear suggests the fiscal year a client form should prefill:
// the current calendar year, bumped by one once October starts.
func DefaultFiscalYear(now time.Time) int {
	if now.Month() >= time.October {
		return now.Year() + 1
	}
	return now.Year()
}
