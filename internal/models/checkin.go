package models

const (
	MinMood = 1
	MaxMood = 4

	MinEnergy = 1
	MaxEnergy = 3
)

// GoalCount is how many daily goals a check-in can complete.
const GoalCount = 8

// DailyCheckIn is one submitted (or in-progress) daily self-report.
type DailyCheckIn struct {
	Date           string   `json:"date"`
	Mood           int      `json:"mood"`
	Energy         int      `json:"energy"`
	CompletedGoals []string `json:"completedGoals"`
	Notes          string   `json:"notes,omitempty"`
}

type DailyGoal struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DailyGoals returns the fixed set of daily wellness goals.
func DailyGoals() []DailyGoal {
	return []DailyGoal{
		{ID: "water", Label: "Drink 8 glasses of water"},
		{ID: "walk", Label: "Take a 10-minute walk"},
		{ID: "breathing", Label: "Practice deep breathing"},
		{ID: "meal", Label: "Eat a healthy meal"},
		{ID: "sleep", Label: "Get 7+ hours of sleep"},
		{ID: "vitamins", Label: "Take vitamins/supplements"},
		{ID: "gratitude", Label: "Practice gratitude"},
		{ID: "stretching", Label: "Do gentle stretching"},
	}
}

// KnownGoal reports whether the id exists in the daily goal list.
func KnownGoal(goalID string) bool {
	for _, goal := range DailyGoals() {
		if goal.ID == goalID {
			return true
		}
	}
	return false
}

// Complete reports whether the check-in has both scales answered.
func (checkIn DailyCheckIn) Complete() bool {
	return checkIn.Mood >= MinMood && checkIn.Mood <= MaxMood &&
		checkIn.Energy >= MinEnergy && checkIn.Energy <= MaxEnergy
}
