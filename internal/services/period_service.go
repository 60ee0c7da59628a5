package services

import (
	"errors"
	"time"
)

var ErrInvalidPeriodDate = errors.New("invalid period date")

// PeriodService owns the single stored period start date. The date is
// overwritten on every change, never appended.
type PeriodService struct {
	store KeyValueStore
}

func NewPeriodService(store KeyValueStore) *PeriodService {
	return &PeriodService{store: store}
}

// RecordPeriodStart stores a new period start date, replacing any prior one.
func (service *PeriodService) RecordPeriodStart(date string) error {
	if _, err := ParseDay(date); err != nil {
		return ErrInvalidPeriodDate
	}
	return saveJSON(service.store, KeyLastPeriodDate, date)
}

// LastPeriodDate returns the stored start date, reporting absence when no
// date was ever recorded or the stored value is unreadable.
func (service *PeriodService) LastPeriodDate() (string, bool, error) {
	var date string
	found, err := loadJSON(service.store, KeyLastPeriodDate, &date)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	if _, err := ParseDay(date); err != nil {
		return "", false, nil
	}
	return date, true, nil
}

// Snapshot recomputes the cycle snapshot for now from the stored start date.
// The second result is false when no valid start date is stored.
func (service *PeriodService) Snapshot(now time.Time) (CycleSnapshot, bool, error) {
	date, found, err := service.LastPeriodDate()
	if err != nil {
		return CycleSnapshot{}, false, err
	}
	if !found {
		return CycleSnapshot{}, false, nil
	}

	periodStart, err := ParseDay(date)
	if err != nil {
		return CycleSnapshot{}, false, nil
	}
	return CalculateCycle(periodStart, now), true, nil
}
