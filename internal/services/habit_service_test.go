package services

import (
	"errors"
	"testing"
	"time"

	"github.com/petalhq/petal/internal/models"
)

func TestAddHabitValidation(t *testing.T) {
	service := NewHabitService(newMemoryStore())
	now := day(2026, time.March, 10)

	if _, err := service.AddHabit("   ", "health", 7, now); !errors.Is(err, ErrHabitNameRequired) {
		t.Fatalf("expected ErrHabitNameRequired, got %v", err)
	}
	if _, err := service.AddHabit("Stretch", "bogus", 7, now); !errors.Is(err, ErrUnknownHabitCategory) {
		t.Fatalf("expected ErrUnknownHabitCategory, got %v", err)
	}
}

func TestAddHabitDefaultsTarget(t *testing.T) {
	service := NewHabitService(newMemoryStore())
	now := day(2026, time.March, 10)

	habit, err := service.AddHabit("Evening walk", "exercise", 0, now)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if habit.Target != models.DefaultHabitTarget {
		t.Fatalf("expected default target, got %d", habit.Target)
	}
	if habit.ID == "" {
		t.Fatal("expected generated id")
	}
	if habit.CreatedDate != "2026-03-10" {
		t.Fatalf("expected creation date stamped, got %s", habit.CreatedDate)
	}
}

func TestAddTemplateHabit(t *testing.T) {
	service := NewHabitService(newMemoryStore())
	now := day(2026, time.March, 10)

	habit, err := service.AddTemplateHabit("5 minutes of meditation", now)
	if err != nil {
		t.Fatalf("add template: %v", err)
	}
	if habit.Category != "mindfulness" {
		t.Fatalf("expected template category, got %s", habit.Category)
	}

	if _, err := service.AddTemplateHabit("does not exist", now); !errors.Is(err, ErrUnknownHabitTemplate) {
		t.Fatalf("expected ErrUnknownHabitTemplate, got %v", err)
	}
}

func TestToggleCompletionRecomputesAllStreaks(t *testing.T) {
	service := NewHabitService(newMemoryStore())
	now := day(2026, time.March, 10)

	first, err := service.AddHabit("Water", "health", 7, now)
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	second, err := service.AddHabit("Vitamins", "health", 7, now)
	if err != nil {
		t.Fatalf("add second: %v", err)
	}

	if _, err := service.ToggleCompletion(first.ID, now.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("toggle yesterday: %v", err)
	}
	habits, err := service.ToggleCompletion(first.ID, now)
	if err != nil {
		t.Fatalf("toggle today: %v", err)
	}

	byID := make(map[string]models.Habit, len(habits))
	for _, habit := range habits {
		byID[habit.ID] = habit
	}
	if byID[first.ID].Streak != 2 {
		t.Fatalf("expected streak 2 for completed habit, got %d", byID[first.ID].Streak)
	}
	if byID[second.ID].Streak != 0 {
		t.Fatalf("expected streak 0 for untouched habit, got %d", byID[second.ID].Streak)
	}
}

func TestToggleCompletionTwiceRemovesMark(t *testing.T) {
	service := NewHabitService(newMemoryStore())
	now := day(2026, time.March, 10)

	habit, err := service.AddHabit("Journal", "wellness", 7, now)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := service.ToggleCompletion(habit.ID, now); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	habits, err := service.ToggleCompletion(habit.ID, now)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	if habits[0].Streak != 0 {
		t.Fatalf("expected streak reset after unmarking, got %d", habits[0].Streak)
	}
	completions, err := service.Completions()
	if err != nil {
		t.Fatalf("completions: %v", err)
	}
	if len(completions) != 0 {
		t.Fatalf("expected no completions, got %d", len(completions))
	}
}

func TestToggleCompletionUnknownHabitIgnored(t *testing.T) {
	service := NewHabitService(newMemoryStore())

	habits, err := service.ToggleCompletion("missing", day(2026, time.March, 10))
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(habits) != 0 {
		t.Fatalf("expected empty habit list, got %d", len(habits))
	}
}

func TestHabitStreakTodayExempt(t *testing.T) {
	service := NewHabitService(newMemoryStore())
	now := day(2026, time.March, 10)

	habit, err := service.AddHabit("Reading", "wellness", 7, now)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := service.ToggleCompletion(habit.ID, now.AddDate(0, 0, -2)); err != nil {
		t.Fatalf("toggle two days back: %v", err)
	}
	// trigger a recompute as of now by toggling yesterday's mark last
	habits, err := service.ToggleCompletion(habit.ID, now.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("toggle yesterday: %v", err)
	}

	// streak computed relative to the toggle's own day, so walk from there
	if habits[0].Streak < 2 {
		t.Fatalf("expected streak of at least 2, got %d", habits[0].Streak)
	}
}

func TestDeleteHabitCascadesCompletions(t *testing.T) {
	service := NewHabitService(newMemoryStore())
	now := day(2026, time.March, 10)

	keep, err := service.AddHabit("Keep", "health", 7, now)
	if err != nil {
		t.Fatalf("add keep: %v", err)
	}
	drop, err := service.AddHabit("Drop", "health", 7, now)
	if err != nil {
		t.Fatalf("add drop: %v", err)
	}
	if _, err := service.ToggleCompletion(keep.ID, now); err != nil {
		t.Fatalf("toggle keep: %v", err)
	}
	if _, err := service.ToggleCompletion(drop.ID, now); err != nil {
		t.Fatalf("toggle drop: %v", err)
	}

	if err := service.DeleteHabit(drop.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	habits, err := service.Habits()
	if err != nil {
		t.Fatalf("habits: %v", err)
	}
	if len(habits) != 1 || habits[0].ID != keep.ID {
		t.Fatalf("expected only kept habit, got %#v", habits)
	}
	completions, err := service.Completions()
	if err != nil {
		t.Fatalf("completions: %v", err)
	}
	for _, completion := range completions {
		if completion.HabitID == drop.ID {
			t.Fatal("expected deleted habit's completions removed")
		}
	}

	// deleting again is a silent no-op
	if err := service.DeleteHabit(drop.ID); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestWeeklySummaryCapsAtHundredPercent(t *testing.T) {
	store := newMemoryStore()
	service := NewHabitService(store)
	now := day(2026, time.March, 11) // a Wednesday

	habit, err := service.AddHabit("Hydrate", "health", 2, now)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// complete more days this week than the target of 2
	for offset := 0; offset < 3; offset++ {
		if _, err := service.ToggleCompletion(habit.ID, now.AddDate(0, 0, -offset)); err != nil {
			t.Fatalf("toggle offset %d: %v", offset, err)
		}
	}

	summary, err := service.WeeklySummary(now)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summary) != 1 {
		t.Fatalf("expected one habit in summary, got %d", len(summary))
	}
	if summary[0].WeeklyPercent != 100 {
		t.Fatalf("expected progress capped at 100, got %v", summary[0].WeeklyPercent)
	}
	if !summary[0].CompletedToday {
		t.Fatal("expected completed-today flag")
	}
}
