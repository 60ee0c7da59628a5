package services

import (
	"time"

	"github.com/petalhq/petal/internal/models"
)

// CheckInDraftUpdate carries a partial edit to the in-progress check-in.
// Nil fields leave the corresponding draft field unchanged.
type CheckInDraftUpdate struct {
	Mood       *int
	Energy     *int
	ToggleGoal string
	Notes      *string
}

// CheckInService records daily mood/energy/goal check-ins and derives the
// consecutive-day streak from their history.
type CheckInService struct {
	store KeyValueStore
}

func NewCheckInService(store KeyValueStore) *CheckInService {
	return &CheckInService{store: store}
}

// Draft loads the unsubmitted check-in, empty when none is in progress.
func (service *CheckInService) Draft() (models.DailyCheckIn, error) {
	draft := models.DailyCheckIn{CompletedGoals: []string{}}
	if _, err := loadJSON(service.store, KeyCheckInDraft, &draft); err != nil {
		return models.DailyCheckIn{}, err
	}
	if draft.CompletedGoals == nil {
		draft.CompletedGoals = []string{}
	}
	return draft, nil
}

// UpdateDraft applies a partial edit and persists the result. Out-of-range
// scale values and unknown goal ids are ignored.
func (service *CheckInService) UpdateDraft(update CheckInDraftUpdate) (models.DailyCheckIn, error) {
	draft, err := service.Draft()
	if err != nil {
		return models.DailyCheckIn{}, err
	}

	if update.Mood != nil && *update.Mood >= models.MinMood && *update.Mood <= models.MaxMood {
		draft.Mood = *update.Mood
	}
	if update.Energy != nil && *update.Energy >= models.MinEnergy && *update.Energy <= models.MaxEnergy {
		draft.Energy = *update.Energy
	}
	if update.Notes != nil {
		draft.Notes = *update.Notes
	}
	if update.ToggleGoal != "" && models.KnownGoal(update.ToggleGoal) {
		draft.CompletedGoals = toggleGoal(draft.CompletedGoals, update.ToggleGoal)
	}

	if err := saveJSON(service.store, KeyCheckInDraft, draft); err != nil {
		return models.DailyCheckIn{}, err
	}
	return draft, nil
}

// DiscardDraft drops the in-progress check-in without submitting it.
func (service *CheckInService) DiscardDraft() error {
	if err := service.store.Delete(KeyCheckInDraft); err != nil {
		return err
	}
	return nil
}

// Submit finalizes the draft as today's check-in. A draft missing either
// scale answer is left untouched and the second result is false. Submitting
// twice in one day replaces the earlier entry.
func (service *CheckInService) Submit(now time.Time) (models.DailyCheckIn, bool, error) {
	draft, err := service.Draft()
	if err != nil {
		return models.DailyCheckIn{}, false, err
	}
	if !draft.Complete() {
		return models.DailyCheckIn{}, false, nil
	}

	today := FormatDay(now)
	draft.Date = today

	history, err := service.History()
	if err != nil {
		return models.DailyCheckIn{}, false, err
	}

	updated := make([]models.DailyCheckIn, 0, len(history)+1)
	updated = append(updated, draft)
	for _, entry := range history {
		if entry.Date != today {
			updated = append(updated, entry)
		}
	}

	if err := saveJSON(service.store, KeyCheckInHistory, updated); err != nil {
		return models.DailyCheckIn{}, false, err
	}
	if err := service.DiscardDraft(); err != nil {
		return models.DailyCheckIn{}, false, err
	}
	if _, err := service.RecalculateStreak(now); err != nil {
		return models.DailyCheckIn{}, false, err
	}
	return draft, true, nil
}

// History loads submitted check-ins, most recent first.
func (service *CheckInService) History() ([]models.DailyCheckIn, error) {
	history := make([]models.DailyCheckIn, 0)
	if _, err := loadJSON(service.store, KeyCheckInHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// CheckedInToday reports whether a submitted entry exists for now's date.
func (service *CheckInService) CheckedInToday(now time.Time) (bool, error) {
	history, err := service.History()
	if err != nil {
		return false, err
	}
	today := FormatDay(now)
	for _, entry := range history {
		if entry.Date == today {
			return true, nil
		}
	}
	return false, nil
}

// Streak returns the persisted streak counter.
func (service *CheckInService) Streak() (int, error) {
	streak := 0
	if _, err := loadJSON(service.store, KeyDailyStreak, &streak); err != nil {
		return 0, err
	}
	return streak, nil
}

// RecalculateStreak walks backward from today counting consecutive days with
// a check-in. A missing entry for today itself does not break the run, since
// the day is still in progress.
func (service *CheckInService) RecalculateStreak(now time.Time) (int, error) {
	history, err := service.History()
	if err != nil {
		return 0, err
	}

	checkedDates := make(map[string]struct{}, len(history))
	for _, entry := range history {
		checkedDates[entry.Date] = struct{}{}
	}

	streak := 0
	today := DateOnly(now)
	for offset := 0; offset < 366; offset++ {
		date := FormatDay(today.AddDate(0, 0, -offset))
		if _, present := checkedDates[date]; present {
			streak++
		} else if offset > 0 {
			break
		}
	}

	if err := saveJSON(service.store, KeyDailyStreak, streak); err != nil {
		return 0, err
	}
	return streak, nil
}

func toggleGoal(goals []string, goalID string) []string {
	filtered := make([]string, 0, len(goals)+1)
	removed := false
	for _, id := range goals {
		if id == goalID {
			removed = true
			continue
		}
		filtered = append(filtered, id)
	}
	if !removed {
		filtered = append(filtered, goalID)
	}
	return filtered
}
