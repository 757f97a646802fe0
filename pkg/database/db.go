package database

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arnavshah/training-calendar-go/pkg/models"
	"github.com/arnavshah/training-calendar-go/pkg/store"
)

// CalendarKey is the storage key of the persisted calendar state
const CalendarKey = "trainingCalendarData"

// CalendarState represents the calendar_states table. One row per storage
// key: the JSON-serialized calendar, the explicit-save timestamp, and the
// persisted event id counter.
type CalendarState struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Key         string     `gorm:"unique;not null" json:"key"`
	Data        string     `json:"data"`
	NextEventID int64      `gorm:"default:1" json:"next_event_id"`
	LastEdited  *time.Time `json:"last_edited"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "training_calendar.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&CalendarState{})

	return db
}

// LoadState reads the persisted calendar at process start. A missing row
// or unparseable payload falls back to an empty calendar; the failure is
// logged, never surfaced, and nothing beyond the corrupt data is lost.
func LoadState(db *gorm.DB) (store.State, *time.Time) {
	var row CalendarState
	if err := db.Where("key = ?", CalendarKey).First(&row).Error; err != nil {
		return store.NewState(), nil
	}

	var calendar models.CalendarData
	if err := json.Unmarshal([]byte(row.Data), &calendar); err != nil {
		log.Printf("corrupt calendar data, starting empty: %v", err)
		return store.NewState(), nil
	}
	if calendar == nil {
		calendar = models.CalendarData{}
	}

	state := store.State{Calendar: calendar, NextEventID: row.NextEventID}
	if state.NextEventID < 1 {
		state.NextEventID = 1
	}
	return state, row.LastEdited
}

// SaveState persists the in-memory state with a single-query upsert. On
// failure the caller keeps the unsaved state so the save can be retried.
func SaveState(db *gorm.DB, state store.State, editedAt time.Time) error {
	data, err := json.Marshal(state.Calendar)
	if err != nil {
		return err
	}

	// OnConflict upsert works on both Postgres and SQLite
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"data":          string(data),
			"next_event_id": state.NextEventID,
			"last_edited":   editedAt,
		}),
	}).Create(&CalendarState{
		Key:         CalendarKey,
		Data:        string(data),
		NextEventID: state.NextEventID,
		LastEdited:  &editedAt,
	}).Error
}
