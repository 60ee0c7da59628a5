package services

import (
	"time"

	"github.com/petalhq/petal/internal/models"
)

// AchievementService recomputes unlock state for the static achievement
// catalog from the stored histories.
type AchievementService struct {
	store KeyValueStore
}

func NewAchievementService(store KeyValueStore) *AchievementService {
	return &AchievementService{store: store}
}

// BuildUserStats derives the counters achievements are measured against.
func (service *AchievementService) BuildUserStats() (models.UserStats, error) {
	checkIns := make([]models.DailyCheckIn, 0)
	if _, err := loadJSON(service.store, KeyCheckInHistory, &checkIns); err != nil {
		return models.UserStats{}, err
	}
	symptomHistory := make([]models.SymptomDayRecord, 0)
	if _, err := loadJSON(service.store, KeySymptomHistory, &symptomHistory); err != nil {
		return models.UserStats{}, err
	}
	streak := 0
	if _, err := loadJSON(service.store, KeyDailyStreak, &streak); err != nil {
		return models.UserStats{}, err
	}
	var lastPeriodDate string
	periodRecorded, err := loadJSON(service.store, KeyLastPeriodDate, &lastPeriodDate)
	if err != nil {
		return models.UserStats{}, err
	}

	totalGoals := 0
	for _, entry := range checkIns {
		totalGoals += len(entry.CompletedGoals)
	}
	periodsTracked := 0
	if periodRecorded && lastPeriodDate != "" {
		periodsTracked = 1
	}

	return models.UserStats{
		TotalCheckIns:       len(checkIns),
		CurrentStreak:       streak,
		LongestStreak:       streak,
		TotalGoalsCompleted: totalGoals,
		DaysTracked:         len(checkIns),
		PeriodsTracked:      periodsTracked,
		SymptomsLogged:      len(symptomHistory),
	}, nil
}

// Evaluate recomputes progress for every catalog entry and persists unlock
// state. Unlocking is a one-way latch: an already-unlocked achievement keeps
// its original unlock date no matter how progress moves afterward. The second
// result lists achievements that crossed their threshold during this pass.
func (service *AchievementService) Evaluate(now time.Time) ([]models.Achievement, []models.Achievement, error) {
	stats, err := service.BuildUserStats()
	if err != nil {
		return nil, nil, err
	}

	saved := make([]models.Achievement, 0)
	if _, err := loadJSON(service.store, KeyUserAchievements, &saved); err != nil {
		return nil, nil, err
	}
	savedByID := make(map[string]models.Achievement, len(saved))
	for _, achievement := range saved {
		savedByID[achievement.ID] = achievement
	}

	today := FormatDay(now)
	evaluated := make([]models.Achievement, 0, len(models.AchievementCatalog()))
	newlyUnlocked := make([]models.Achievement, 0)
	for _, definition := range models.AchievementCatalog() {
		progress := progressFor(definition, stats)
		achievement := models.Achievement{
			AchievementDefinition: definition,
			CurrentProgress:       progress,
		}

		prior, known := savedByID[definition.ID]
		switch {
		case known && prior.IsUnlocked:
			achievement.IsUnlocked = true
			achievement.UnlockedDate = prior.UnlockedDate
		case progress >= definition.Requirement:
			achievement.IsUnlocked = true
			achievement.UnlockedDate = today
			newlyUnlocked = append(newlyUnlocked, achievement)
		}

		evaluated = append(evaluated, achievement)
	}

	if err := saveJSON(service.store, KeyUserAchievements, evaluated); err != nil {
		return nil, nil, err
	}
	return evaluated, newlyUnlocked, nil
}

func progressFor(definition models.AchievementDefinition, stats models.UserStats) int {
	switch definition.Category {
	case models.AchievementCategoryStreak:
		return stats.CurrentStreak
	case models.AchievementCategoryTracking:
		if definition.ID == "symptom_logger" {
			return stats.SymptomsLogged
		}
		return stats.PeriodsTracked
	case models.AchievementCategoryWellness:
		return stats.TotalGoalsCompleted
	case models.AchievementCategoryMilestone:
		return stats.DaysTracked
	}
	return 0
}
