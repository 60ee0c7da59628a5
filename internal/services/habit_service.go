package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/petalhq/petal/internal/models"
)

var (
	ErrHabitNameRequired    = errors.New("habit name required")
	ErrUnknownHabitCategory = errors.New("unknown habit category")
	ErrUnknownHabitTemplate = errors.New("unknown habit template")
)

// habitStreakWindow bounds the backward walk when recomputing streaks.
const habitStreakWindow = 30

// HabitWeeklyProgress is one habit's standing for the current week.
type HabitWeeklyProgress struct {
	Habit          models.Habit `json:"habit"`
	CompletedToday bool         `json:"completedToday"`
	WeeklyPercent  float64      `json:"weeklyPercent"`
}

// HabitService manages the habit list and its per-day completion marks.
type HabitService struct {
	store KeyValueStore
}

func NewHabitService(store KeyValueStore) *HabitService {
	return &HabitService{store: store}
}

// Habits loads the current habit list.
func (service *HabitService) Habits() ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if _, err := loadJSON(service.store, KeyUserHabits, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// Completions loads every recorded habit completion.
func (service *HabitService) Completions() ([]models.HabitCompletion, error) {
	completions := make([]models.HabitCompletion, 0)
	if _, err := loadJSON(service.store, KeyHabitCompletions, &completions); err != nil {
		return nil, err
	}
	return completions, nil
}

// AddHabit creates a custom habit. The name must be non-blank and the
// category one of the fixed set; the weekly target defaults when out of range.
func (service *HabitService) AddHabit(name string, category string, target int, now time.Time) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrHabitNameRequired
	}
	if !models.KnownHabitCategory(category) {
		return models.Habit{}, ErrUnknownHabitCategory
	}
	if target < 1 || target > models.DefaultHabitTarget {
		target = models.DefaultHabitTarget
	}

	habit := models.Habit{
		ID:             uuid.NewString(),
		Name:           name,
		Category:       category,
		Target:         target,
		CompletedDates: []string{},
		CreatedDate:    FormatDay(now),
	}

	habits, err := service.Habits()
	if err != nil {
		return models.Habit{}, err
	}
	habits = append(habits, habit)
	if err := saveJSON(service.store, KeyUserHabits, habits); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// AddTemplateHabit creates a habit from the predefined template with the
// given name.
func (service *HabitService) AddTemplateHabit(templateName string, now time.Time) (models.Habit, error) {
	for _, template := range models.HabitTemplates() {
		if template.Name == templateName {
			return service.AddHabit(template.Name, template.Category, models.DefaultHabitTarget, now)
		}
	}
	return models.Habit{}, ErrUnknownHabitTemplate
}

// ToggleCompletion flips today's completion mark for a habit, then
// recomputes every habit's streak. Unknown habit ids are ignored.
func (service *HabitService) ToggleCompletion(habitID string, now time.Time) ([]models.Habit, error) {
	habits, err := service.Habits()
	if err != nil {
		return nil, err
	}
	if !habitExists(habits, habitID) {
		return habits, nil
	}
	completions, err := service.Completions()
	if err != nil {
		return nil, err
	}

	today := FormatDay(now)
	if models.CompletedOn(completions, habitID, today) {
		kept := make([]models.HabitCompletion, 0, len(completions))
		for _, completion := range completions {
			if completion.HabitID == habitID && completion.Date == today {
				continue
			}
			kept = append(kept, completion)
		}
		completions = kept
	} else {
		completions = append(completions, models.HabitCompletion{
			HabitID:   habitID,
			Date:      today,
			Completed: true,
		})
	}

	if err := saveJSON(service.store, KeyHabitCompletions, completions); err != nil {
		return nil, err
	}
	return service.recalculateStreaks(habits, completions, now)
}

// DeleteHabit removes a habit and all of its completion marks. Deleting a
// habit that does not exist is a no-op.
func (service *HabitService) DeleteHabit(habitID string) error {
	habits, err := service.Habits()
	if err != nil {
		return err
	}
	if !habitExists(habits, habitID) {
		return nil
	}
	completions, err := service.Completions()
	if err != nil {
		return err
	}

	keptHabits := make([]models.Habit, 0, len(habits))
	for _, habit := range habits {
		if habit.ID != habitID {
			keptHabits = append(keptHabits, habit)
		}
	}
	keptCompletions := make([]models.HabitCompletion, 0, len(completions))
	for _, completion := range completions {
		if completion.HabitID != habitID {
			keptCompletions = append(keptCompletions, completion)
		}
	}

	if err := saveJSON(service.store, KeyUserHabits, keptHabits); err != nil {
		return err
	}
	return saveJSON(service.store, KeyHabitCompletions, keptCompletions)
}

// WeeklySummary reports per-habit progress for the week containing now.
// The week starts on Sunday and progress never exceeds 100 percent.
func (service *HabitService) WeeklySummary(now time.Time) ([]HabitWeeklyProgress, error) {
	habits, err := service.Habits()
	if err != nil {
		return nil, err
	}
	completions, err := service.Completions()
	if err != nil {
		return nil, err
	}

	today := FormatDay(now)
	weekStart := WeekStart(now)
	summary := make([]HabitWeeklyProgress, 0, len(habits))
	for _, habit := range habits {
		completedThisWeek := 0
		for offset := 0; offset < 7; offset++ {
			date := FormatDay(weekStart.AddDate(0, 0, offset))
			if models.CompletedOn(completions, habit.ID, date) {
				completedThisWeek++
			}
		}

		target := habit.Target
		if target < 1 {
			target = models.DefaultHabitTarget
		}
		percent := float64(completedThisWeek) / float64(target) * 100
		if percent > 100 {
			percent = 100
		}

		summary = append(summary, HabitWeeklyProgress{
			Habit:          habit,
			CompletedToday: models.CompletedOn(completions, habit.ID, today),
			WeeklyPercent:  percent,
		})
	}
	return summary, nil
}

func (service *HabitService) recalculateStreaks(habits []models.Habit, completions []models.HabitCompletion, now time.Time) ([]models.Habit, error) {
	today := DateOnly(now)
	updated := make([]models.Habit, 0, len(habits))
	for _, habit := range habits {
		streak := 0
		for offset := 0; offset < habitStreakWindow; offset++ {
			date := FormatDay(today.AddDate(0, 0, -offset))
			if models.CompletedOn(completions, habit.ID, date) {
				streak++
			} else if offset > 0 {
				break
			}
		}

		completedDates := make([]string, 0)
		for _, completion := range completions {
			if completion.HabitID == habit.ID {
				completedDates = append(completedDates, completion.Date)
			}
		}
		sort.Sort(sort.Reverse(sort.StringSlice(completedDates)))

		habit.Streak = streak
		habit.CompletedDates = completedDates
		updated = append(updated, habit)
	}

	if err := saveJSON(service.store, KeyUserHabits, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func habitExists(habits []models.Habit, habitID string) bool {
	for _, habit := range habits {
		if habit.ID == habitID {
			return true
		}
	}
	return false
}
