package export

import (
	"encoding/csv"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/arnavshah/training-calendar-go/pkg/models"
)

func sampleCalendar() models.CalendarData {
	return models.CalendarData{
		"2025-01-15": {
			"1": {{ID: 1, Status: "Scheduled", Activity: "3-3.1.1 - CCIR Reporting Procedures", Time: "TBD", Notes: "Auto-scheduled training for the week."}},
			"3": {{ID: 2, Status: "Complete", Activity: "Range Day", Time: "0800", ShiftLead: "SGT Doe", Notes: "bring ear pro, eye pro, and gloves"}},
		},
		"2025-01-10": {
			"2": {{ID: 3, Status: "Missed", Activity: "PT Test", Notes: `notes with, comma and "quotes"`}},
		},
	}
}

func TestCSVHeaderAndOrder(t *testing.T) {
	out, err := CSV(sampleCalendar())
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}

	reader := csv.NewReader(strings.NewReader(out))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("output is not parseable CSV: %v", err)
	}

	if !reflect.DeepEqual(rows[0], CSVHeader) {
		t.Errorf("header = %v", rows[0])
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	// Dates ascending, then squads in catalog order
	if rows[1][0] != "2025-01-10" {
		t.Errorf("first data row date = %s, want 2025-01-10", rows[1][0])
	}
	if rows[2][0] != "2025-01-15" || rows[2][1] != "Squad 1" {
		t.Errorf("second data row = %v, want 2025-01-15 / Squad 1", rows[2])
	}
	if rows[3][1] != "Squad 3" {
		t.Errorf("third data row squad = %s, want Squad 3", rows[3][1])
	}
}

func TestCSVQuotesSpecialCharacters(t *testing.T) {
	out, err := CSV(sampleCalendar())
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}

	if !strings.Contains(out, `"notes with, comma and ""quotes"""`) {
		t.Errorf("comma/quote field not quoted with doubled quotes:\n%s", out)
	}

	// And it must parse back to the original string
	reader := csv.NewReader(strings.NewReader(out))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	notes := rows[1][6]
	if notes != `notes with, comma and "quotes"` {
		t.Errorf("round-tripped notes = %q", notes)
	}
}

func TestCSVSquadNameFallback(t *testing.T) {
	data := models.CalendarData{
		"2025-01-10": {"7": {{ID: 1, Activity: "Stray", Status: "Scheduled"}}},
	}
	out, err := CSV(data)
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}
	if !strings.Contains(out, "Squad 7") {
		t.Errorf("unresolved squad should fall back to \"Squad 7\":\n%s", out)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := sampleCalendar()
	data, err := JSON(original)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var restored models.CalendarData
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if !reflect.DeepEqual(restored, original) {
		t.Errorf("round trip not structurally identical:\n%+v\nvs\n%+v", restored, original)
	}

	// Pretty-printed and date-key ascending
	if !strings.Contains(string(data), "\n  ") {
		t.Error("output should be indented")
	}
	if strings.Index(string(data), "2025-01-10") > strings.Index(string(data), "2025-01-15") {
		t.Error("date keys should serialize in ascending order")
	}
}

func TestPrintViewGrouping(t *testing.T) {
	view := PrintView(sampleCalendar())

	if len(view) != 2 {
		t.Fatalf("expected 2 print days, got %d", len(view))
	}
	if view[0].Date != "2025-01-10" || view[1].Date != "2025-01-15" {
		t.Errorf("days out of order: %s, %s", view[0].Date, view[1].Date)
	}

	second := view[1]
	if len(second.Squads) != 2 {
		t.Fatalf("expected 2 squad groups, got %d", len(second.Squads))
	}
	if second.Squads[0].SquadName != "Squad 1" || second.Squads[1].SquadName != "Squad 3" {
		t.Errorf("squad groups out of catalog order: %+v", second.Squads)
	}
}

func TestPrintViewSkipsEmptyDays(t *testing.T) {
	data := models.CalendarData{
		"2025-01-10": {"1": {}},
	}
	if view := PrintView(data); len(view) != 0 {
		t.Errorf("day with only empty squad lists should not print: %+v", view)
	}
}

func TestFilename(t *testing.T) {
	got := Filename("2025-01-01", "2025-01-31", "csv")
	if got != "training-calendar_2025-01-01_to_2025-01-31.csv" {
		t.Errorf("filename = %q", got)
	}
}
