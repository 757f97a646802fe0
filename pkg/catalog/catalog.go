// Package catalog loads the fixed METL training plan that drives
// fiscal-year schedule generation.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/arnavshah/training-calendar-go/pkg/models"
)

//go:embed training_plan.json
var trainingPlanJSON []byte

// Load returns the standard 52-week METL training plan. The plan is fixed
// at build time; a decode failure means the embedded dataset is broken.
func Load() ([]models.ScheduledTask, error) {
	return Parse(trainingPlanJSON)
}

// Parse decodes a training plan dataset. Split out from Load so tests can
// run the generator against small synthetic plans.
func Parse(data []byte) ([]models.ScheduledTask, error) {
	var plan []models.ScheduledTask
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("decode training plan: %w", err)
	}
	return plan, nil
}

// MustLoad is Load for program startup, where a broken embedded plan is
// unrecoverable.
func MustLoad() []models.ScheduledTask {
	plan, err := Load()
	if err != nil {
		panic(err)
	}
	return plan
}
