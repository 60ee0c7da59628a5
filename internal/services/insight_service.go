package services

import (
	"math"
	"sort"
	"time"

	"github.com/petalhq/petal/internal/models"
)

const (
	moodTrendWindow      = 14
	energyTrendWindow    = 7
	symptomTrendWindow   = 7
	recommendationLimit  = 3
	notableDayCount      = 3
	symptomPatternLimit  = 5
	recentSymptomLimit   = 3
	streakScoreHorizon   = 30
	consistencyPerDayPct = 3.33
)

// TrendPoint is one day's values in a mood or energy series, oldest first.
type TrendPoint struct {
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
	Goals  int    `json:"goals"`
}

// SymptomPattern is one symptom's occurrence rollup.
type SymptomPattern struct {
	Symptom    string  `json:"symptom"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// InsightOverview is the full derived rollup served to the dashboard.
type InsightOverview struct {
	WellnessScore    int              `json:"wellnessScore"`
	CycleConsistency float64          `json:"cycleConsistency"`
	MoodTrends       []TrendPoint     `json:"moodTrends"`
	EnergyTrends     []TrendPoint     `json:"energyTrends"`
	SymptomPatterns  []SymptomPattern `json:"symptomPatterns"`
	Recommendations  []string         `json:"recommendations"`
	BestDays         []string         `json:"bestDays"`
	ChallengingDays  []string         `json:"challengingDays"`
}

// InsightService computes read-only rollups from the stored histories. It
// keeps no state of its own.
type InsightService struct {
	store KeyValueStore
}

func NewInsightService(store KeyValueStore) *InsightService {
	return &InsightService{store: store}
}

// Overview derives the complete insight rollup for now.
func (service *InsightService) Overview(now time.Time) (InsightOverview, error) {
	checkIns, err := NewCheckInService(service.store).History()
	if err != nil {
		return InsightOverview{}, err
	}
	symptomHistory, err := NewSymptomService(service.store).History()
	if err != nil {
		return InsightOverview{}, err
	}
	streak, err := NewCheckInService(service.store).Streak()
	if err != nil {
		return InsightOverview{}, err
	}
	snapshot, hasCycle, err := NewPeriodService(service.store).Snapshot(now)
	if err != nil {
		return InsightOverview{}, err
	}
	phaseName := ""
	if hasCycle {
		phaseName = snapshot.CurrentPhase.Name
	}

	avgMood, avgEnergy := averageScales(checkIns)
	patterns := symptomPatterns(symptomHistory, symptomPatternLimit, len(symptomHistory))
	best, challenging := notableDays(checkIns)

	overview := InsightOverview{
		WellnessScore:    wellnessScore(checkIns, streak),
		CycleConsistency: math.Min(float64(streak)*consistencyPerDayPct, 100),
		MoodTrends:       trendSeries(checkIns, moodTrendWindow),
		EnergyTrends:     trendSeries(checkIns, energyTrendWindow),
		SymptomPatterns:  patterns,
		Recommendations:  recommendations(avgMood, avgEnergy, patterns, streak, phaseName),
		BestDays:         best,
		ChallengingDays:  challenging,
	}
	return overview, nil
}

// RecentSymptomTrends rolls up the most frequent symptoms across the last
// seven recorded days.
func (service *InsightService) RecentSymptomTrends() ([]SymptomPattern, error) {
	history, err := NewSymptomService(service.store).History()
	if err != nil {
		return nil, err
	}
	recent := history
	if len(recent) > symptomTrendWindow {
		recent = recent[:symptomTrendWindow]
	}
	return symptomPatterns(recent, recentSymptomLimit, symptomTrendWindow), nil
}

// wellnessScore blends average mood, average energy, goal completion rate
// and the current streak into a 0-100 score.
func wellnessScore(checkIns []models.DailyCheckIn, streak int) int {
	avgMood, avgEnergy := averageScales(checkIns)

	totalGoals := 0
	for _, entry := range checkIns {
		totalGoals += len(entry.CompletedGoals)
	}
	goalRate := float64(totalGoals) / math.Max(float64(len(checkIns)*models.GoalCount), 1)

	score := math.Round(((avgMood+avgEnergy)/8 + goalRate + float64(streak)/streakScoreHorizon) * 25)
	return int(math.Min(score, 100))
}

func averageScales(checkIns []models.DailyCheckIn) (float64, float64) {
	if len(checkIns) == 0 {
		return 0, 0
	}
	moodSum, energySum := 0, 0
	for _, entry := range checkIns {
		moodSum += entry.Mood
		energySum += entry.Energy
	}
	return float64(moodSum) / float64(len(checkIns)), float64(energySum) / float64(len(checkIns))
}

// trendSeries returns the most recent entries, reordered oldest first for
// charting. History is stored newest first.
func trendSeries(checkIns []models.DailyCheckIn, window int) []TrendPoint {
	recent := checkIns
	if len(recent) > window {
		recent = recent[:window]
	}

	points := make([]TrendPoint, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		entry := recent[i]
		points = append(points, TrendPoint{
			Date:   entry.Date,
			Mood:   entry.Mood,
			Energy: entry.Energy,
			Goals:  len(entry.CompletedGoals),
		})
	}
	return points
}

func symptomPatterns(history []models.SymptomDayRecord, limit int, denominator int) []SymptomPattern {
	counts := map[string]int{}
	for _, record := range history {
		for _, entries := range record.Symptoms {
			for symptomID := range entries {
				counts[symptomID]++
			}
		}
	}

	patterns := make([]SymptomPattern, 0, len(counts))
	for symptomID, count := range counts {
		percentage := 0.0
		if denominator > 0 {
			percentage = math.Round(float64(count) / float64(denominator) * 100)
		}
		patterns = append(patterns, SymptomPattern{
			Symptom:    symptomID,
			Count:      count,
			Percentage: percentage,
		})
	}
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count == patterns[j].Count {
			return patterns[i].Symptom < patterns[j].Symptom
		}
		return patterns[i].Count > patterns[j].Count
	})
	if len(patterns) > limit {
		patterns = patterns[:limit]
	}
	return patterns
}

func recommendations(avgMood float64, avgEnergy float64, patterns []SymptomPattern, streak int, phaseName string) []string {
	recs := make([]string, 0, recommendationLimit)

	if avgMood > 0 && avgMood < 2.5 {
		recs = append(recs, "Consider incorporating more mood-boosting activities like gentle exercise or meditation into your routine.")
	}
	if avgEnergy > 0 && avgEnergy < 2 {
		recs = append(recs, "Focus on improving sleep quality and consider iron-rich foods to boost energy levels.")
	}
	for _, pattern := range patterns {
		if pattern.Symptom == "cramps" {
			recs = append(recs, "Try heat therapy and magnesium supplements to help manage cramping symptoms.")
			break
		}
	}
	if streak < 7 {
		recs = append(recs, "Building a consistent tracking habit will help you identify patterns and improve predictions.")
	}
	if phaseName == models.PhaseLuteal {
		recs = append(recs, "During your luteal phase, prioritize self-care and consider reducing high-intensity activities.")
	}
	if phaseName == models.PhaseFollicular {
		recs = append(recs, "Take advantage of your rising energy during the follicular phase to tackle challenging tasks.")
	}

	if len(recs) > recommendationLimit {
		recs = recs[:recommendationLimit]
	}
	return recs
}

func notableDays(checkIns []models.DailyCheckIn) ([]string, []string) {
	if len(checkIns) == 0 {
		return []string{}, []string{}
	}

	type scoredDay struct {
		date  string
		score int
	}
	scored := make([]scoredDay, 0, len(checkIns))
	for _, entry := range checkIns {
		scored = append(scored, scoredDay{
			date:  entry.Date,
			score: entry.Mood + entry.Energy + len(entry.CompletedGoals),
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score == scored[j].score {
			return scored[i].date > scored[j].date
		}
		return scored[i].score > scored[j].score
	})

	best := make([]string, 0, notableDayCount)
	for i := 0; i < len(scored) && i < notableDayCount; i++ {
		best = append(best, scored[i].date)
	}
	challenging := make([]string, 0, notableDayCount)
	for i := len(scored) - 1; i >= 0 && len(challenging) < notableDayCount; i-- {
		challenging = append(challenging, scored[i].date)
	}
	return best, challenging
}
