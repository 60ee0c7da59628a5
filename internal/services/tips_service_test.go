package services

import (
	"testing"
	"time"

	"github.com/petalhq/petal/internal/models"
)

func TestDailyTipsDeterministicWithinDay(t *testing.T) {
	service := NewTipsService(newMemoryStore())
	now := day(2026, time.March, 10)

	first := service.DailyTips(now, models.PhaseLuteal, nil)
	second := service.DailyTips(now, models.PhaseLuteal, nil)

	if len(first.Tips) != len(second.Tips) {
		t.Fatalf("expected stable tip count, got %d vs %d", len(first.Tips), len(second.Tips))
	}
	for i := range first.Tips {
		if first.Tips[i].ID != second.Tips[i].ID {
			t.Fatalf("expected identical order at %d, got %s vs %s", i, first.Tips[i].ID, second.Tips[i].ID)
		}
	}
}

func TestDailyTipsCappedAtSix(t *testing.T) {
	service := NewTipsService(newMemoryStore())
	symptoms := models.SymptomMap{
		models.CategoryPhysical: {
			"cramps":   models.SymptomEntry{Severity: 3},
			"headache": models.SymptomEntry{Severity: 3},
			"bloating": models.SymptomEntry{Severity: 3},
		},
	}

	digest := service.DailyTips(day(2026, time.March, 10), models.PhaseMenstrual, symptoms)
	if len(digest.Tips) > dailyTipCount {
		t.Fatalf("expected at most %d tips, got %d", dailyTipCount, len(digest.Tips))
	}
}

func TestTipOfTheDayPrefersSymptomMatch(t *testing.T) {
	service := NewTipsService(newMemoryStore())
	symptoms := models.SymptomMap{
		models.CategoryPhysical: {"cramps": models.SymptomEntry{Severity: 4}},
	}

	digest := service.DailyTips(day(2026, time.March, 10), models.PhaseFollicular, symptoms)
	if digest.TipOfTheDay == nil || digest.TipOfTheDay.Symptom != "cramps" {
		t.Fatalf("expected cramps tip of the day, got %#v", digest.TipOfTheDay)
	}
}

func TestTipOfTheDayFallsBackToPhaseThenGeneral(t *testing.T) {
	service := NewTipsService(newMemoryStore())

	withPhase := service.DailyTips(day(2026, time.March, 10), models.PhaseOvulation, nil)
	if withPhase.TipOfTheDay == nil || withPhase.TipOfTheDay.Phase != models.PhaseOvulation {
		t.Fatalf("expected phase tip of the day, got %#v", withPhase.TipOfTheDay)
	}

	general := service.DailyTips(day(2026, time.March, 10), "", nil)
	if general.TipOfTheDay == nil || general.TipOfTheDay.Phase != "" || general.TipOfTheDay.Symptom != "" {
		t.Fatalf("expected general tip of the day, got %#v", general.TipOfTheDay)
	}
}

func TestDailyTipsMoodCategoryMatchesMoodTip(t *testing.T) {
	service := NewTipsService(newMemoryStore())
	symptoms := models.SymptomMap{
		models.CategoryMood: {"anxious": models.SymptomEntry{Severity: 3}},
	}

	digest := service.DailyTips(day(2026, time.March, 10), "", symptoms)
	if digest.TipOfTheDay == nil || digest.TipOfTheDay.ID != "mood_support" {
		t.Fatalf("expected mood support tip, got %#v", digest.TipOfTheDay)
	}
}

func TestMarkViewedDeduplicates(t *testing.T) {
	service := NewTipsService(newMemoryStore())

	if _, err := service.MarkViewed("general_sleep"); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	viewed, err := service.MarkViewed("general_sleep")
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if len(viewed) != 1 {
		t.Fatalf("expected a single viewed id, got %#v", viewed)
	}

	persisted, err := service.ViewedTips()
	if err != nil {
		t.Fatalf("load viewed: %v", err)
	}
	if len(persisted) != 1 || persisted[0] != "general_sleep" {
		t.Fatalf("expected persisted viewed list, got %#v", persisted)
	}
}
