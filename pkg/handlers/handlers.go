package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arnavshah/training-calendar-go/pkg/database"
	"github.com/arnavshah/training-calendar-go/pkg/dates"
	"github.com/arnavshah/training-calendar-go/pkg/models"
	"github.com/arnavshah/training-calendar-go/pkg/store"
)

// Handler contains dependencies for the route handlers. The working
// calendar lives in memory behind the mutex; every mutation swaps in a new
// state value, so readers holding the old one never see a partial update.
// Persistence happens only on an explicit save.
type Handler struct {
	DB   *gorm.DB
	Plan []models.ScheduledTask

	mu           sync.RWMutex
	state        store.State
	lastEdited   *time.Time
	acknowledged bool // disclaimer gate, reset on every process start
}

// NewHandler builds a Handler with the persisted state loaded
func NewHandler(db *gorm.DB, plan []models.ScheduledTask) *Handler {
	state, lastEdited := database.LoadState(db)
	return &Handler{DB: db, Plan: plan, state: state, lastEdited: lastEdited}
}

// snapshot returns the current published state
func (h *Handler) snapshot() (store.State, *time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state, h.lastEdited
}

// GetCalendar returns the full in-memory calendar with its metadata
func (h *Handler) GetCalendar(c *gin.Context) {
	state, lastEdited := h.snapshot()

	c.JSON(http.StatusOK, gin.H{
		"calendar":            state.Calendar,
		"last_edited":         lastEdited,
		"squads":              models.Squads,
		"statuses":            models.TrainingStatuses,
		"default_fiscal_year": dates.DefaultFiscalYear(time.Now()),
	})
}

// GetGrid returns the date sequence for a view mode. The month and week
// grids are Monday-first; the year view is twelve month grids.
func (h *Handler) GetGrid(c *gin.Context) {
	ref := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := dates.ParseDateKey(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	view := c.DefaultQuery("view", "month")
	switch view {
	case "month":
		c.JSON(http.StatusOK, gin.H{"view": view, "days": dateKeys(dates.MonthDays(ref))})
	case "week":
		c.JSON(http.StatusOK, gin.H{"view": view, "days": dateKeys(dates.WeekDays(ref))})
	case "year":
		months := make([][]string, 12)
		for m := time.January; m <= time.December; m++ {
			monthRef := time.Date(ref.Year(), m, 1, 0, 0, 0, 0, time.Local)
			months[m-1] = dateKeys(dates.MonthDays(monthRef))
		}
		c.JSON(http.StatusOK, gin.H{"view": view, "months": months})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be one of year, month, week"})
	}
}

func dateKeys(days []time.Time) []string {
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = dates.DateKey(d)
	}
	return keys
}

// GenerateSchedule replaces the requested fiscal year's events with the
// METL plan. The result is in-memory only; the client still has to save.
func (h *Handler) GenerateSchedule(c *gin.Context) {
	var input models.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	h.state = h.state.GenerateSchedule(h.Plan, input.FiscalYear)
	state := h.state
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"message":  "schedule generated; save the calendar to persist changes",
		"calendar": state.Calendar,
	})
}

// CreateEvents creates one event per selected squad on the given date
func (h *Handler) CreateEvents(c *gin.Context) {
	var input models.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.ParseDateKey(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if input.Status == "" {
		input.Status = models.StatusScheduled
	}

	event := models.TrainingEvent{
		Status:    input.Status,
		Activity:  input.Activity,
		Time:      input.Time,
		ShiftLead: input.ShiftLead,
		Notes:     input.Notes,
	}

	h.mu.Lock()
	next, err := h.state.CreateEvents(input.Date, input.Squads, event)
	if err == nil {
		h.state = next
	}
	state := h.state
	h.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": state.Calendar})
}

// ChangeStatus updates only the status of one event. An unknown date key
// is a no-op, not an error.
func (h *Handler) ChangeStatus(c *gin.Context) {
	var input models.StatusChangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": store.ErrInvalidStatus.Error()})
		return
	}

	h.mu.Lock()
	h.state = h.state.ChangeStatus(input.Date, input.Squad, input.EventID, input.Status)
	state := h.state
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"calendar": state.Calendar})
}

// UpdateEvent replaces one event's fields, keeping its id. An unknown
// date key is a no-op, not an error.
func (h *Handler) UpdateEvent(c *gin.Context) {
	var input models.UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	h.state = h.state.UpdateEvent(input.Date, input.Squad, input.EventID, input.Event)
	state := h.state
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"calendar": state.Calendar})
}

// SaveCalendar persists the in-memory state. On failure the state stays
// in memory unsaved so the client can retry.
func (h *Handler) SaveCalendar(c *gin.Context) {
	state, _ := h.snapshot()
	now := time.Now()

	if err := database.SaveState(h.DB, state, now); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save calendar: " + err.Error()})
		return
	}

	h.mu.Lock()
	h.lastEdited = &now
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "calendar saved", "last_edited": now})
}

// GetDisclaimer reports whether the notice has been acknowledged this
// process lifetime
func (h *Handler) GetDisclaimer(c *gin.Context) {
	h.mu.RLock()
	ack := h.acknowledged
	h.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"acknowledged": ack})
}

// AcknowledgeDisclaimer records the notice acknowledgment until restart
func (h *Handler) AcknowledgeDisclaimer(c *gin.Context) {
	h.mu.Lock()
	h.acknowledged = true
	h.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
