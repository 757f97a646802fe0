package models

import "strconv"

// Training event statuses
const (
	StatusScheduled  = "Scheduled"
	StatusComplete   = "Complete"
	StatusIncomplete = "Incomplete"
	StatusMissed     = "Missed"
)

// TrainingStatuses lists every valid event status
var TrainingStatuses = []string{StatusScheduled, StatusComplete, StatusIncomplete, StatusMissed}

// ValidStatus reports whether s is one of the fixed training statuses
func ValidStatus(s string) bool {
	for _, status := range TrainingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// TrainingEvent represents one scheduled or ad-hoc training activity.
// The id is assigned at creation and is the sole identity for lookups;
// two events may carry identical fields and differ only by id.
type TrainingEvent struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Activity  string `json:"activity"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
	ShiftLead string `json:"shiftLead"`
}

// SquadSchedule maps a squad key to that squad's events for one day.
// Squad keys are stringified integers to match the persisted JSON format;
// any integer key is structurally legal at this layer.
type SquadSchedule map[string][]TrainingEvent

// CalendarData maps a YYYY-MM-DD date key to the day's squad schedule
type CalendarData map[string]SquadSchedule

// ScheduledTask is one entry of the fixed 52-week METL training plan
type ScheduledTask struct {
	Week  int    `json:"week"`
	Squad int    `json:"squad"`
	METL  string `json:"metl"`
	Task  string `json:"task"`
}

// Squad is one of the four fixed organizational subunits
type Squad struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Squads is the fixed squad table, in catalog order
var Squads = []Squad{
	{ID: 1, Name: "Squad 1"},
	{ID: 2, Name: "Squad 2"},
	{ID: 3, Name: "Squad 3"},
	{ID: 4, Name: "Squad 4"},
}

// SquadKey converts a squad id to its map key form
func SquadKey(id int) string {
	return strconv.Itoa(id)
}

// SquadName resolves a squad key to its display name, falling back to
// "Squad <id>" for keys outside the fixed table
func SquadName(key string) string {
	for _, s := range Squads {
		if SquadKey(s.ID) == key {
			return s.Name
		}
	}
	return "Squad " + key
}

// GenerateInput is the request body for fiscal-year schedule generation
type GenerateInput struct {
	FiscalYear int `json:"fiscal_year" binding:"required"`
}

// CreateEventInput is the request body for manual event creation. One
// distinct event is created per selected squad, sharing the field values.
type CreateEventInput struct {
	Date      string `json:"date"`
	Squads    []int  `json:"squads"`
	Activity  string `json:"activity"`
	Time      string `json:"time"`
	ShiftLead string `json:"shiftLead"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
}

// StatusChangeInput is the request body for an event status change
type StatusChangeInput struct {
	Date    string `json:"date"`
	Squad   int    `json:"squad"`
	EventID int64  `json:"event_id"`
	Status  string `json:"status"`
}

// UpdateEventInput is the request body for a full event edit. The event's
// original id is retained regardless of the id carried in the payload.
type UpdateEventInput struct {
	Date    string        `json:"date"`
	Squad   int           `json:"squad"`
	EventID int64         `json:"event_id"`
	Event   TrainingEvent `json:"event"`
}
