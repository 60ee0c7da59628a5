package models

import "time"

const (
	CategoryPhysical = "physical"
	CategoryFlow     = "flow"
	CategoryMood     = "mood"
)

const (
	MinSeverity     = 1
	MaxSeverity     = 5
	DefaultSeverity = 3
)

// SymptomHistoryLimit caps how many daily records the symptom history keeps.
const SymptomHistoryLimit = 30

// SymptomEntry holds the tracked state of a single symptom on a single day.
type SymptomEntry struct {
	Severity  int       `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

// SymptomMap groups tracked symptoms by category id, then symptom id.
type SymptomMap map[string]map[string]SymptomEntry

// SymptomDayRecord is one day's snapshot in the rolling symptom history.
type SymptomDayRecord struct {
	Date     string     `json:"date"`
	Symptoms SymptomMap `json:"symptoms"`
}

type SymptomDefinition struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type SymptomCategory struct {
	ID       string              `json:"id"`
	Label    string              `json:"label"`
	Symptoms []SymptomDefinition `json:"symptoms"`
}

// SymptomCatalog returns the built-in trackable symptoms grouped by category.
func SymptomCatalog() []SymptomCategory {
	return []SymptomCategory{
		{
			ID:    CategoryPhysical,
			Label: "Physical",
			Symptoms: []SymptomDefinition{
				{ID: "cramps", Label: "Cramps"},
				{ID: "headache", Label: "Headache"},
				{ID: "bloating", Label: "Bloating"},
				{ID: "breast-tenderness", Label: "Breast tenderness"},
				{ID: "fatigue", Label: "Fatigue"},
				{ID: "backache", Label: "Backache"},
				{ID: "nausea", Label: "Nausea"},
				{ID: "acne", Label: "Acne"},
				{ID: "joint-pain", Label: "Joint pain"},
				{ID: "dizziness", Label: "Dizziness"},
			},
		},
		{
			ID:    CategoryFlow,
			Label: "Flow",
			Symptoms: []SymptomDefinition{
				{ID: "spotting", Label: "Spotting"},
				{ID: "light-flow", Label: "Light flow"},
				{ID: "medium-flow", Label: "Medium flow"},
				{ID: "heavy-flow", Label: "Heavy flow"},
				{ID: "clots", Label: "Clots"},
				{ID: "irregular", Label: "Irregular"},
				{ID: "missed-period", Label: "Missed period"},
				{ID: "prolonged", Label: "Prolonged"},
			},
		},
		{
			ID:    CategoryMood,
			Label: "Mood",
			Symptoms: []SymptomDefinition{
				{ID: "happy", Label: "Happy"},
				{ID: "sad", Label: "Sad"},
				{ID: "anxious", Label: "Anxious"},
				{ID: "irritable", Label: "Irritable"},
				{ID: "calm", Label: "Calm"},
				{ID: "energetic", Label: "Energetic"},
				{ID: "tired", Label: "Tired"},
				{ID: "stressed", Label: "Stressed"},
				{ID: "emotional", Label: "Emotional"},
				{ID: "focused", Label: "Focused"},
			},
		},
	}
}

// KnownSymptom reports whether the category and symptom ids exist in the catalog.
func KnownSymptom(categoryID, symptomID string) bool {
	for _, category := range SymptomCatalog() {
		if category.ID != categoryID {
			continue
		}
		for _, symptom := range category.Symptoms {
			if symptom.ID == symptomID {
				return true
			}
		}
	}
	return false
}

// CountSymptoms returns the total number of tracked symptoms across categories.
func (symptoms SymptomMap) CountSymptoms() int {
	total := 0
	for _, entries := range symptoms {
		total += len(entries)
	}
	return total
}
