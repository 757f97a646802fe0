// Package generator builds a fiscal year's worth of training events from
// the METL plan and merges them into the calendar under the replace-range
// policy: every event inside the fiscal year is removed first, everything
// outside it is left untouched.
package generator

import (
	"fmt"

	"github.com/arnavshah/training-calendar-go/pkg/dates"
	"github.com/arnavshah/training-calendar-go/pkg/models"
)

// AutoScheduledNotes is the notes field stamped on every generated event
const AutoScheduledNotes = "Auto-scheduled training for the week."

// Generate produces a new calendar for fiscalYear from plan. The input
// calendar is never mutated: date keys falling inside the fiscal year are
// dropped, all other keys are carried over as-is, and one event per plan
// entry is appended at firstWeekStart + (week-1)*7 days for its squad.
// Each event gets a fresh id from mint. Fiscal year and week numbers are
// not range-checked; degenerate values still produce a structurally valid
// calendar.
func Generate(calendar models.CalendarData, plan []models.ScheduledTask, fiscalYear int, mint func() int64) models.CalendarData {
	fyStart, firstWeekStart, fyEnd := dates.FiscalYearInfo(fiscalYear)

	cleared := make(models.CalendarData, len(calendar))
	for dateKey, day := range calendar {
		d, err := dates.ParseDateKey(dateKey)
		if err == nil && !d.Before(fyStart) && !d.After(fyEnd) {
			continue
		}
		cleared[dateKey] = day
	}

	// Days carried over from the input calendar are cloned before the
	// first append so the caller's store is never mutated. In practice
	// generated dates land inside the purged range, but the append path
	// stays general for week numbers past 52.
	owned := make(map[string]bool)

	for _, task := range plan {
		taskDate := firstWeekStart.AddDate(0, 0, (task.Week-1)*7)
		dateKey := dates.DateKey(taskDate)
		squadKey := models.SquadKey(task.Squad)

		event := models.TrainingEvent{
			ID:        mint(),
			Activity:  fmt.Sprintf("%s - %s", task.METL, task.Task),
			Time:      "TBD",
			ShiftLead: "",
			Notes:     AutoScheduledNotes,
			Status:    models.StatusScheduled,
		}

		day := cleared[dateKey]
		if day == nil {
			day = models.SquadSchedule{}
		} else if !owned[dateKey] {
			clone := make(models.SquadSchedule, len(day))
			for k, v := range day {
				clone[k] = v
			}
			day = clone
		}
		owned[dateKey] = true

		events := make([]models.TrainingEvent, len(day[squadKey]), len(day[squadKey])+1)
		copy(events, day[squadKey])
		day[squadKey] = append(events, event)
		cleared[dateKey] = day
	}

	return cleared
}
