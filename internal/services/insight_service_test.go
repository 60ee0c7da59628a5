package services

import (
	"testing"
	"time"

	"github.com/petalhq/petal/internal/models"
)

func TestOverviewEmptyStore(t *testing.T) {
	service := NewInsightService(newMemoryStore())

	overview, err := service.Overview(day(2026, time.March, 10))
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.WellnessScore != 0 {
		t.Fatalf("expected zero score with no data, got %d", overview.WellnessScore)
	}
	if len(overview.MoodTrends) != 0 || len(overview.BestDays) != 0 {
		t.Fatalf("expected empty series, got %#v", overview)
	}
	// with no streak and no history, only the tracking-habit nudge applies
	if len(overview.Recommendations) != 1 {
		t.Fatalf("expected exactly one recommendation, got %#v", overview.Recommendations)
	}
}

func TestWellnessScoreFormula(t *testing.T) {
	entries := []models.DailyCheckIn{
		{Date: "2026-03-10", Mood: 4, Energy: 3, CompletedGoals: []string{"water", "sleep", "walk", "meal"}},
		{Date: "2026-03-09", Mood: 4, Energy: 3, CompletedGoals: []string{"water", "sleep", "walk", "meal"}},
	}

	// avgMood 4, avgEnergy 3, goal rate 0.5, streak 30:
	// ((4+3)/8 + 0.5 + 1) * 25 = 59.375 -> 59
	score := wellnessScore(entries, 30)
	if score != 59 {
		t.Fatalf("expected score 59, got %d", score)
	}
}

func TestWellnessScoreCappedAtHundred(t *testing.T) {
	entries := make([]models.DailyCheckIn, 0, 5)
	allGoals := make([]string, 0, models.GoalCount)
	for _, goal := range models.DailyGoals() {
		allGoals = append(allGoals, goal.ID)
	}
	for i := 0; i < 5; i++ {
		entries = append(entries, models.DailyCheckIn{Mood: 4, Energy: 3, CompletedGoals: allGoals})
	}

	if score := wellnessScore(entries, 300); score != 100 {
		t.Fatalf("expected score capped at 100, got %d", score)
	}
}

func TestTrendSeriesWindowsAndOrder(t *testing.T) {
	entries := make([]models.DailyCheckIn, 0, 20)
	base := day(2026, time.March, 20)
	for i := 0; i < 20; i++ {
		entries = append(entries, models.DailyCheckIn{
			Date: FormatDay(base.AddDate(0, 0, -i)),
			Mood: 1 + i%4,
		})
	}

	series := trendSeries(entries, moodTrendWindow)
	if len(series) != moodTrendWindow {
		t.Fatalf("expected %d points, got %d", moodTrendWindow, len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i-1].Date > series[i].Date {
			t.Fatalf("expected oldest-first ordering, got %s before %s", series[i-1].Date, series[i].Date)
		}
	}
	if series[len(series)-1].Date != "2026-03-20" {
		t.Fatalf("expected newest entry last, got %s", series[len(series)-1].Date)
	}
}

func TestRecentSymptomTrendsTopThree(t *testing.T) {
	store := newMemoryStore()
	service := NewInsightService(store)

	history := make([]models.SymptomDayRecord, 0, 9)
	base := day(2026, time.March, 20)
	for i := 0; i < 9; i++ {
		symptoms := models.SymptomMap{
			models.CategoryPhysical: {"cramps": models.SymptomEntry{Severity: 3}},
		}
		if i < 3 {
			symptoms[models.CategoryMood] = map[string]models.SymptomEntry{
				"tired":   {Severity: 3},
				"anxious": {Severity: 3},
				"sad":     {Severity: 3},
			}
		}
		history = append(history, models.SymptomDayRecord{
			Date:     FormatDay(base.AddDate(0, 0, -i)),
			Symptoms: symptoms,
		})
	}
	if err := saveJSON(store, KeySymptomHistory, history); err != nil {
		t.Fatalf("seed: %v", err)
	}

	trends, err := service.RecentSymptomTrends()
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if len(trends) != 3 {
		t.Fatalf("expected top three symptoms, got %d", len(trends))
	}
	if trends[0].Symptom != "cramps" || trends[0].Count != 7 {
		t.Fatalf("expected cramps on all seven recent days, got %#v", trends[0])
	}
	if trends[0].Percentage != 100 {
		t.Fatalf("expected 100%%, got %v", trends[0].Percentage)
	}
}

func TestRecommendationsRulesAndLimit(t *testing.T) {
	recs := recommendations(2.0, 1.5, []SymptomPattern{{Symptom: "cramps", Count: 4}}, 3, models.PhaseLuteal)

	if len(recs) != recommendationLimit {
		t.Fatalf("expected recommendations capped at %d, got %d", recommendationLimit, len(recs))
	}
	// rules fire in declaration order, so the mood nudge comes first
	if recs[0] != "Consider incorporating more mood-boosting activities like gentle exercise or meditation into your routine." {
		t.Fatalf("unexpected first recommendation: %s", recs[0])
	}
}

func TestNotableDays(t *testing.T) {
	entries := []models.DailyCheckIn{
		{Date: "2026-03-10", Mood: 4, Energy: 3, CompletedGoals: []string{"water", "sleep"}},
		{Date: "2026-03-09", Mood: 1, Energy: 1},
		{Date: "2026-03-08", Mood: 3, Energy: 2, CompletedGoals: []string{"water"}},
		{Date: "2026-03-07", Mood: 2, Energy: 1},
	}

	best, challenging := notableDays(entries)
	if best[0] != "2026-03-10" {
		t.Fatalf("expected highest scoring day first, got %s", best[0])
	}
	if challenging[0] != "2026-03-09" {
		t.Fatalf("expected lowest scoring day first among challenging, got %s", challenging[0])
	}
}
