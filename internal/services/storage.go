package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

var ErrStorageFailed = errors.New("storage operation failed")

// KeyValueStore is the durable per-device store every recorder persists into.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
	Delete(key string) error
	Clear() error
}

const (
	KeyLastPeriodDate   = "lastPeriodDate"
	KeyCurrentSymptoms  = "currentSymptoms"
	KeySymptomHistory   = "symptomHistory"
	KeyCheckInHistory   = "dailyCheckInHistory"
	KeyCheckInDraft     = "dailyCheckInDraft"
	KeyDailyStreak      = "dailyStreak"
	KeyUserHabits       = "userHabits"
	KeyHabitCompletions = "habitCompletions"
	KeyUserAchievements = "userAchievements"
	KeyViewedTips       = "viewedWellnessTips"
)

// PersistedKeys lists every key the recorders write, in export order.
func PersistedKeys() []string {
	return []string{
		KeyLastPeriodDate,
		KeyCurrentSymptoms,
		KeySymptomHistory,
		KeyCheckInHistory,
		KeyCheckInDraft,
		KeyDailyStreak,
		KeyUserHabits,
		KeyHabitCompletions,
		KeyUserAchievements,
		KeyViewedTips,
	}
}

// loadJSON decodes the stored value for key into target. A missing key or an
// undecodable payload both leave target untouched and report absence.
func loadJSON(store KeyValueStore, key string, target any) (bool, error) {
	raw, found, err := store.Get(key)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		log.Printf("discarding undecodable value for %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

func saveJSON(store KeyValueStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}
	if err := store.Set(key, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}
	return nil
}
