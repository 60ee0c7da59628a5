package services

import (
	"time"

	"github.com/petalhq/petal/internal/models"
)

// CycleSnapshot is the engine's output for a given day. It is always
// recomputed from the stored period start, never persisted.
type CycleSnapshot struct {
	CycleDay     int                 `json:"cycleDay"`
	CurrentPhase models.CyclePhase   `json:"currentPhase"`
	Phases       []models.CyclePhase `json:"phases"`
	NextPeriod   time.Time           `json:"nextPeriod"`
}

// CalculateCycle maps a period start date and "today" to a cycle day, the
// containing phase, and the predicted next period start.
//
// A start date in the future is not extrapolated backward: the snapshot
// degenerates to day 1 of the Menstrual phase with the next period predicted
// exactly one cycle from today. This is a documented simplification rather
// than a real prediction.
func CalculateCycle(periodStart time.Time, today time.Time) CycleSnapshot {
	phases := models.CyclePhases()
	day := DateOnly(today)

	daysSinceStart := DaysBetween(periodStart, today)
	if daysSinceStart < 0 {
		return CycleSnapshot{
			CycleDay:     1,
			CurrentPhase: phases[0],
			Phases:       phases,
			NextPeriod:   day.AddDate(0, 0, models.CycleLength),
		}
	}

	cycleDay := daysSinceStart%models.CycleLength + 1
	currentPhase := phases[0]
	for _, phase := range phases {
		if phase.Contains(cycleDay) {
			currentPhase = phase
			break
		}
	}

	cyclesCompleted := daysSinceStart / models.CycleLength
	nextPeriod := DateOnly(periodStart).AddDate(0, 0, (cyclesCompleted+1)*models.CycleLength)

	return CycleSnapshot{
		CycleDay:     cycleDay,
		CurrentPhase: currentPhase,
		Phases:       phases,
		NextPeriod:   nextPeriod,
	}
}
