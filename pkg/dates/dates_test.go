package dates

import (
	"testing"
	"time"
)

func TestMonthDaysShape(t *testing.T) {
	refs := []time.Time{
		time.Date(2024, time.February, 15, 0, 0, 0, 0, time.Local), // leap February
		time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local), // starts on Monday
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local), // starts on Sunday
		time.Date(2025, time.June, 10, 0, 0, 0, 0, time.Local),
	}

	for _, ref := range refs {
		days := MonthDays(ref)

		if len(days)%7 != 0 {
			t.Errorf("%s: grid length %d is not a multiple of 7", ref.Month(), len(days))
		}
		if days[0].Weekday() != time.Monday {
			t.Errorf("%s: grid starts on %s, want Monday", ref.Month(), days[0].Weekday())
		}

		// Every date advances by exactly one day
		for i := 1; i < len(days); i++ {
			if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
				t.Errorf("%s: gap between %v and %v", ref.Month(), days[i-1], days[i])
			}
		}

		// The reference month's dates each appear exactly once
		counts := make(map[string]int)
		for _, d := range days {
			if d.Month() == ref.Month() {
				counts[DateKey(d)]++
			}
		}
		lastOfMonth := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, time.Local)
		if len(counts) != lastOfMonth.Day() {
			t.Errorf("%s: grid contains %d distinct days of the month, want %d", ref.Month(), len(counts), lastOfMonth.Day())
		}
		for key, n := range counts {
			if n != 1 {
				t.Errorf("%s: %s appears %d times", ref.Month(), key, n)
			}
		}

		// Every row begins on a Monday
		for i := 0; i < len(days); i += 7 {
			if days[i].Weekday() != time.Monday {
				t.Errorf("%s: row %d starts on %s", ref.Month(), i/7, days[i].Weekday())
			}
		}
	}
}

func TestWeekDays(t *testing.T) {
	// A Thursday; the week runs Mon Jun 9 through Sun Jun 15 2025
	ref := time.Date(2025, time.June, 12, 0, 0, 0, 0, time.Local)
	week := WeekDays(ref)

	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[0].Weekday() != time.Monday {
		t.Errorf("week starts on %s, want Monday", week[0].Weekday())
	}
	if DateKey(week[0]) != "2025-06-09" {
		t.Errorf("week starts at %s, want 2025-06-09", DateKey(week[0]))
	}
	for i := 1; i < 7; i++ {
		if !week[i].Equal(week[i-1].AddDate(0, 0, 1)) {
			t.Errorf("day %d is not one day after day %d", i, i-1)
		}
	}
	if week[6].Weekday() != time.Sunday {
		t.Errorf("week ends on %s, want Sunday", week[6].Weekday())
	}
}

func TestWeekDaysOnMonday(t *testing.T) {
	ref := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.Local)
	week := WeekDays(ref)
	if !week[0].Equal(ref) {
		t.Errorf("a Monday reference should start its own week, got %v", week[0])
	}
}

func TestFiscalYearInfo(t *testing.T) {
	tests := []struct {
		year      int
		wantStart string
		wantFirst string
		wantEnd   string
	}{
		{2025, "2024-10-01", "2024-10-07", "2025-09-30"}, // Oct 1 2024 is a Tuesday
		{2024, "2023-10-01", "2023-10-02", "2024-09-30"}, // Oct 1 2023 is a Sunday
		{2019, "2018-10-01", "2018-10-01", "2019-09-30"}, // Oct 1 2018 is a Monday
	}

	for _, tc := range tests {
		start, firstWeek, end := FiscalYearInfo(tc.year)
		if DateKey(start) != tc.wantStart {
			t.Errorf("FY%d start = %s, want %s", tc.year, DateKey(start), tc.wantStart)
		}
		if DateKey(firstWeek) != tc.wantFirst {
			t.Errorf("FY%d firstWeekStart = %s, want %s", tc.year, DateKey(firstWeek), tc.wantFirst)
		}
		if DateKey(end) != tc.wantEnd {
			t.Errorf("FY%d end = %s, want %s", tc.year, DateKey(end), tc.wantEnd)
		}
	}
}

func TestFiscalYearFirstWeekAlwaysMondayInWindow(t *testing.T) {
	for year := 2000; year <= 2040; year++ {
		start, firstWeek, end := FiscalYearInfo(year)
		if firstWeek.Weekday() != time.Monday {
			t.Errorf("FY%d firstWeekStart is a %s", year, firstWeek.Weekday())
		}
		if firstWeek.Before(start) || firstWeek.After(start.AddDate(0, 0, 6)) {
			t.Errorf("FY%d firstWeekStart %v outside [Oct 1, Oct 7]", year, firstWeek)
		}
		if end.Month() != time.September || end.Day() != 30 || end.Year() != year {
			t.Errorf("FY%d end = %v, want Sep 30 %d", year, end, year)
		}
	}
}

func TestParseDateKeyRoundTrip(t *testing.T) {
	keys := []string{"2024-10-01", "2025-02-28", "2024-02-29", "1999-12-31"}
	for _, key := range keys {
		d, err := ParseDateKey(key)
		if err != nil {
			t.Fatalf("ParseDateKey(%q) failed: %v", key, err)
		}
		if DateKey(d) != key {
			t.Errorf("round trip of %q yielded %q", key, DateKey(d))
		}
		if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
			t.Errorf("%q not normalized to midnight: %v", key, d)
		}
	}
}

func TestParseDateKeyInvalid(t *testing.T) {
	for _, key := range []string{"", "2024", "2024-10", "not-a-date", "2024/10/01"} {
		if _, err := ParseDateKey(key); err == nil {
			t.Errorf("ParseDateKey(%q) should fail", key)
		}
	}
}

func TestDefaultFiscalYear(t *testing.T) {
	sep := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.Local)
	if got := DefaultFiscalYear(sep); got != 2025 {
		t.Errorf("September suggestion = %d, want 2025", got)
	}
	oct := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.Local)
	if got := DefaultFiscalYear(oct); got != 2026 {
		t.Errorf("October suggestion = %d, want 2026", got)
	}
}
