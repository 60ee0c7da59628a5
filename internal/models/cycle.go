package models

// CycleLength is the assumed length of a full cycle in days.
const CycleLength = 28

const (
	PhaseMenstrual  = "Menstrual"
	PhaseFollicular = "Follicular"
	PhaseOvulation  = "Ovulation"
	PhaseLuteal     = "Luteal"
)

// CyclePhase describes one contiguous segment of the 28-day cycle.
type CyclePhase struct {
	Name        string `json:"name"`
	StartDay    int    `json:"startDay"`
	EndDay      int    `json:"endDay"`
	Days        []int  `json:"days"`
	Description string `json:"description"`
}

// Contains reports whether the given 1-based cycle day falls inside the phase.
func (phase CyclePhase) Contains(cycleDay int) bool {
	return cycleDay >= phase.StartDay && cycleDay <= phase.EndDay
}

// CyclePhases returns the fixed four-phase model used across the app.
func CyclePhases() []CyclePhase {
	return []CyclePhase{
		newPhase(PhaseMenstrual, 1, 5, "Your period. Energy may be lower, focus on rest and gentle movement."),
		newPhase(PhaseFollicular, 6, 13, "Rising energy levels. Great time for new projects and intense workouts."),
		newPhase(PhaseOvulation, 14, 16, "Peak energy and fertility. You may feel more social and confident."),
		newPhase(PhaseLuteal, 17, 28, "Energy gradually decreases. Focus on self-care and lighter activities."),
	}
}

func newPhase(name string, startDay, endDay int, description string) CyclePhase {
	days := make([]int, 0, endDay-startDay+1)
	for day := startDay; day <= endDay; day++ {
		days = append(days, day)
	}
	return CyclePhase{
		Name:        name,
		StartDay:    startDay,
		EndDay:      endDay,
		Days:        days,
		Description: description,
	}
}
