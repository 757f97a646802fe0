// Package store implements the calendar store as an immutable value:
// every operation returns a new State sharing unmodified days with its
// predecessor, so a previously published state never changes under a
// reader. Event ids come from a single monotonic counter carried in the
// state and persisted with it, shared by manual creation and schedule
// generation.
package store

import (
	"errors"
	"sort"
	"strings"

	"github.com/arnavshah/training-calendar-go/pkg/generator"
	"github.com/arnavshah/training-calendar-go/pkg/models"
)

// Validation errors surfaced to the caller at the point of action. The
// triggering operation aborts with no state change.
var (
	ErrEmptyActivity   = errors.New("activity field cannot be empty")
	ErrNoSquadSelected = errors.New("at least one squad must be selected")
	ErrInvalidStatus   = errors.New("invalid training status")
)

// State is the complete in-memory calendar state
type State struct {
	Calendar    models.CalendarData
	NextEventID int64
}

// NewState returns an empty state with the id counter at its start value
func NewState() State {
	return State{Calendar: models.CalendarData{}, NextEventID: 1}
}

// mint returns the next event id and the advanced counter
func (s State) mint() (int64, State) {
	id := s.NextEventID
	s.NextEventID++
	return id, s
}

// cloneDay copies a day's schedule one level deep; the event slices are
// shared until an operation replaces one wholesale
func cloneDay(day models.SquadSchedule) models.SquadSchedule {
	clone := make(models.SquadSchedule, len(day))
	for k, v := range day {
		clone[k] = v
	}
	return clone
}

// cloneCalendar copies the date-key map; day schedules are shared
func cloneCalendar(c models.CalendarData) models.CalendarData {
	clone := make(models.CalendarData, len(c))
	for k, v := range c {
		clone[k] = v
	}
	return clone
}

// GenerateSchedule replaces the fiscal year's events with the plan's,
// leaving everything outside the year untouched. Destructive within the
// range and not undoable; the result is a candidate in-memory state that
// still needs an explicit save to persist.
func (s State) GenerateSchedule(plan []models.ScheduledTask, fiscalYear int) State {
	next := s
	calendar := generator.Generate(s.Calendar, plan, fiscalYear, func() int64 {
		var id int64
		id, next = next.mint()
		return id
	})
	next.Calendar = calendar
	return next
}

// CreateEvents creates one distinct event per selected squad on date, all
// sharing the given field values. Fails without mutating the state if the
// activity is blank or no squad is selected.
func (s State) CreateEvents(date string, squads []int, event models.TrainingEvent) (State, error) {
	if strings.TrimSpace(event.Activity) == "" {
		return s, ErrEmptyActivity
	}
	if len(squads) == 0 {
		return s, ErrNoSquadSelected
	}
	if !models.ValidStatus(event.Status) {
		return s, ErrInvalidStatus
	}

	next := s
	calendar := cloneCalendar(s.Calendar)
	day := models.SquadSchedule{}
	if existing, ok := calendar[date]; ok {
		day = cloneDay(existing)
	}

	for _, squad := range squads {
		var id int64
		id, next = next.mint()
		created := event
		created.ID = id

		key := models.SquadKey(squad)
		events := make([]models.TrainingEvent, len(day[key]), len(day[key])+1)
		copy(events, day[key])
		day[key] = append(events, created)
	}

	calendar[date] = day
	next.Calendar = calendar
	return next, nil
}

// ChangeStatus replaces only the status of the event identified by
// (date, squad, eventID). A date key absent from the store is a silent
// no-op; it cannot happen through normal flow but must not fail.
func (s State) ChangeStatus(date string, squad int, eventID int64, status string) State {
	return s.replaceEvent(date, squad, eventID, func(ev models.TrainingEvent) models.TrainingEvent {
		ev.Status = status
		return ev
	})
}

// UpdateEvent replaces the whole event record identified by
// (date, squad, eventID) with edited, retaining the original id. Missing
// date keys are a silent no-op.
func (s State) UpdateEvent(date string, squad int, eventID int64, edited models.TrainingEvent) State {
	return s.replaceEvent(date, squad, eventID, func(ev models.TrainingEvent) models.TrainingEvent {
		edited.ID = ev.ID
		return edited
	})
}

// replaceEvent rewrites the matching event via apply, copying only the
// touched day and squad list
func (s State) replaceEvent(date string, squad int, eventID int64, apply func(models.TrainingEvent) models.TrainingEvent) State {
	day, ok := s.Calendar[date]
	if !ok {
		return s
	}

	key := models.SquadKey(squad)
	updated := make([]models.TrainingEvent, len(day[key]))
	for i, ev := range day[key] {
		if ev.ID == eventID {
			ev = apply(ev)
		}
		updated[i] = ev
	}

	newDay := cloneDay(day)
	newDay[key] = updated

	calendar := cloneCalendar(s.Calendar)
	calendar[date] = newDay

	next := s
	next.Calendar = calendar
	return next
}

// FilterRange returns the subset of the calendar whose date keys fall in
// [start, end] inclusive. Canonical YYYY-MM-DD keys order lexically, so
// plain string comparison is the range check.
func FilterRange(c models.CalendarData, start, end string) models.CalendarData {
	subset := models.CalendarData{}
	for dateKey, day := range c {
		if dateKey >= start && dateKey <= end {
			subset[dateKey] = day
		}
	}
	return subset
}

// SortedDateKeys returns the calendar's date keys in ascending order
func SortedDateKeys(c models.CalendarData) []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
