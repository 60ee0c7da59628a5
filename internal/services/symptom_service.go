package services

import (
	"sort"
	"time"

	"github.com/petalhq/petal/internal/models"
)

// SymptomService tracks the current day's symptom selections and maintains
// the rolling per-day history behind them.
type SymptomService struct {
	store KeyValueStore
}

func NewSymptomService(store KeyValueStore) *SymptomService {
	return &SymptomService{store: store}
}

// CurrentSymptoms loads today's in-progress symptom map, empty when nothing
// is tracked or the stored value is unreadable.
func (service *SymptomService) CurrentSymptoms() (models.SymptomMap, error) {
	symptoms := models.SymptomMap{}
	if _, err := loadJSON(service.store, KeyCurrentSymptoms, &symptoms); err != nil {
		return nil, err
	}
	if symptoms == nil {
		symptoms = models.SymptomMap{}
	}
	return symptoms, nil
}

// ToggleSymptom flips presence of a symptom for today and writes the updated
// map through to the history. Inserting stamps the default severity and the
// current time. Unknown ids are ignored.
func (service *SymptomService) ToggleSymptom(categoryID string, symptomID string, now time.Time) (models.SymptomMap, error) {
	symptoms, err := service.CurrentSymptoms()
	if err != nil {
		return nil, err
	}
	if !models.KnownSymptom(categoryID, symptomID) {
		return symptoms, nil
	}

	if _, active := symptoms[categoryID][symptomID]; active {
		delete(symptoms[categoryID], symptomID)
		if len(symptoms[categoryID]) == 0 {
			delete(symptoms, categoryID)
		}
	} else {
		if symptoms[categoryID] == nil {
			symptoms[categoryID] = map[string]models.SymptomEntry{}
		}
		symptoms[categoryID][symptomID] = models.SymptomEntry{
			Severity:  models.DefaultSeverity,
			Timestamp: now,
		}
	}

	if err := saveJSON(service.store, KeyCurrentSymptoms, symptoms); err != nil {
		return nil, err
	}
	if _, err := service.recordDay(symptoms, now); err != nil {
		return nil, err
	}
	return symptoms, nil
}

// UpdateSeverity overwrites the severity of an already-tracked symptom and
// writes the updated map through to the history. Untracked symptoms and
// out-of-range severities are ignored.
func (service *SymptomService) UpdateSeverity(categoryID string, symptomID string, severity int, now time.Time) (models.SymptomMap, error) {
	symptoms, err := service.CurrentSymptoms()
	if err != nil {
		return nil, err
	}
	if severity < models.MinSeverity || severity > models.MaxSeverity {
		return symptoms, nil
	}

	entry, active := symptoms[categoryID][symptomID]
	if !active {
		return symptoms, nil
	}
	entry.Severity = severity
	symptoms[categoryID][symptomID] = entry

	if err := saveJSON(service.store, KeyCurrentSymptoms, symptoms); err != nil {
		return nil, err
	}
	if _, err := service.recordDay(symptoms, now); err != nil {
		return nil, err
	}
	return symptoms, nil
}

// History loads the rolling symptom history, most recent day first.
func (service *SymptomService) History() ([]models.SymptomDayRecord, error) {
	history := make([]models.SymptomDayRecord, 0)
	if _, err := loadJSON(service.store, KeySymptomHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// CommitDay writes today's symptom map into the history, replacing any prior
// record for the same date, then prunes the oldest days past the cap.
func (service *SymptomService) CommitDay(now time.Time) ([]models.SymptomDayRecord, error) {
	symptoms, err := service.CurrentSymptoms()
	if err != nil {
		return nil, err
	}
	return service.recordDay(symptoms, now)
}

func (service *SymptomService) recordDay(symptoms models.SymptomMap, now time.Time) ([]models.SymptomDayRecord, error) {
	history, err := service.History()
	if err != nil {
		return nil, err
	}

	today := FormatDay(now)
	kept := make([]models.SymptomDayRecord, 0, len(history)+1)
	for _, record := range history {
		if record.Date != today {
			kept = append(kept, record)
		}
	}
	kept = append(kept, models.SymptomDayRecord{Date: today, Symptoms: symptoms})

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Date > kept[j].Date
	})
	if len(kept) > models.SymptomHistoryLimit {
		kept = kept[:models.SymptomHistoryLimit]
	}

	if err := saveJSON(service.store, KeySymptomHistory, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
