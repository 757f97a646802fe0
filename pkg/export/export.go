// Package export renders a date-range slice of the calendar for download
// (JSON or CSV) and for the read-only print surface.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/arnavshah/training-calendar-go/pkg/models"
	"github.com/arnavshah/training-calendar-go/pkg/store"
)

// CSVHeader is the fixed column row of the CSV export
var CSVHeader = []string{"Date", "Squad Name", "Activity", "Time", "Shift Lead", "Status", "Notes"}

// JSON pretty-prints the calendar subset. Map keys marshal in sorted
// order, which for canonical date keys is ascending date order.
func JSON(data models.CalendarData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// CSV renders one row per event: dates ascending, squads in catalog order
// (any stray squad keys follow, sorted), events in list order. Fields
// containing a comma, quote, or newline are quoted with internal quotes
// doubled, per encoding/csv.
func CSV(data models.CalendarData) (string, error) {
	var out strings.Builder
	writer := csv.NewWriter(&out)
	if err := writer.Write(CSVHeader); err != nil {
		return "", err
	}

	for _, dateKey := range store.SortedDateKeys(data) {
		day := data[dateKey]
		for _, squadKey := range squadKeyOrder(day) {
			name := models.SquadName(squadKey)
			for _, ev := range day[squadKey] {
				record := []string{dateKey, name, ev.Activity, ev.Time, ev.ShiftLead, ev.Status, ev.Notes}
				if err := writer.Write(record); err != nil {
					return "", err
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// squadKeyOrder lists a day's squad keys: the fixed squads first, then any
// keys outside the table in sorted order
func squadKeyOrder(day models.SquadSchedule) []string {
	fixed := make(map[string]bool, len(models.Squads))
	var keys []string
	for _, s := range models.Squads {
		key := models.SquadKey(s.ID)
		fixed[key] = true
		if _, ok := day[key]; ok {
			keys = append(keys, key)
		}
	}
	var extra []string
	for key := range day {
		if !fixed[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// Filename names the download file for a date range and format
func Filename(start, end, format string) string {
	return fmt.Sprintf("training-calendar_%s_to_%s.%s", start, end, format)
}

// PrintSquad groups one squad's events for a printed day
type PrintSquad struct {
	SquadName string                 `json:"squad_name"`
	Events    []models.TrainingEvent `json:"events"`
}

// PrintDay is one date's grouped events in the print projection
type PrintDay struct {
	Date   string       `json:"date"`
	Squads []PrintSquad `json:"squads"`
}

// PrintView builds the print surface: dates ascending, each with its
// squads in catalog order, skipping squads and days without events.
func PrintView(data models.CalendarData) []PrintDay {
	var view []PrintDay
	for _, dateKey := range store.SortedDateKeys(data) {
		day := data[dateKey]
		var groups []PrintSquad
		for _, squad := range models.Squads {
			events := day[models.SquadKey(squad.ID)]
			if len(events) > 0 {
				groups = append(groups, PrintSquad{SquadName: squad.Name, Events: events})
			}
		}
		if len(groups) > 0 {
			view = append(view, PrintDay{Date: dateKey, Squads: groups})
		}
	}
	return view
}
