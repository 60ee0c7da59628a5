package services

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/petalhq/petal/internal/models"
)

// dailyTipCount caps how many tips the daily digest carries.
const dailyTipCount = 6

// TipsDigest is one day's tip selection.
type TipsDigest struct {
	TipOfTheDay *models.WellnessTip  `json:"tipOfTheDay,omitempty"`
	Tips        []models.WellnessTip `json:"tips"`
}

// TipsService selects a deterministic daily rotation of wellness tips and
// remembers which ones the user has read.
type TipsService struct {
	store KeyValueStore
}

func NewTipsService(store KeyValueStore) *TipsService {
	return &TipsService{store: store}
}

// DailyTips assembles the digest for now's date. Tips matching currently
// tracked symptoms come first, then tips for the current phase, then general
// ones; the combined pool is permuted deterministically per calendar day so
// the rotation is stable within a day but varies across days.
func (service *TipsService) DailyTips(now time.Time, phaseName string, symptoms models.SymptomMap) TipsDigest {
	catalog := models.WellnessTipCatalog()

	symptomTips := make([]models.WellnessTip, 0)
	for _, tip := range catalog {
		if tip.Symptom == "" {
			continue
		}
		if symptomTracked(symptoms, tip.Symptom) {
			symptomTips = append(symptomTips, tip)
		}
	}
	phaseTips := make([]models.WellnessTip, 0)
	generalTips := make([]models.WellnessTip, 0)
	for _, tip := range catalog {
		switch {
		case tip.Phase != "" && tip.Phase == phaseName:
			phaseTips = append(phaseTips, tip)
		case tip.Phase == "" && tip.Symptom == "":
			generalTips = append(generalTips, tip)
		}
	}

	pool := dedupeTips(symptomTips, phaseTips, generalTips)
	shuffled := permuteTipsForDay(pool, now)
	if len(shuffled) > dailyTipCount {
		shuffled = shuffled[:dailyTipCount]
	}

	digest := TipsDigest{Tips: shuffled}
	switch {
	case len(symptomTips) > 0:
		digest.TipOfTheDay = &symptomTips[0]
	case len(phaseTips) > 0:
		digest.TipOfTheDay = &phaseTips[0]
	case len(generalTips) > 0:
		digest.TipOfTheDay = &generalTips[0]
	}
	return digest
}

// ViewedTips loads the ids of tips the user has already read.
func (service *TipsService) ViewedTips() ([]string, error) {
	viewed := make([]string, 0)
	if _, err := loadJSON(service.store, KeyViewedTips, &viewed); err != nil {
		return nil, err
	}
	return viewed, nil
}

// MarkViewed records a tip as read. Marking twice keeps a single entry.
func (service *TipsService) MarkViewed(tipID string) ([]string, error) {
	viewed, err := service.ViewedTips()
	if err != nil {
		return nil, err
	}
	for _, id := range viewed {
		if id == tipID {
			return viewed, nil
		}
	}
	viewed = append(viewed, tipID)
	if err := saveJSON(service.store, KeyViewedTips, viewed); err != nil {
		return nil, err
	}
	return viewed, nil
}

// symptomTracked reports whether the symptom id is active in any category.
// The mood marker matches when anything in the mood category is tracked.
func symptomTracked(symptoms models.SymptomMap, symptomID string) bool {
	if symptomID == models.CategoryMood {
		return len(symptoms[models.CategoryMood]) > 0
	}
	for _, entries := range symptoms {
		if _, active := entries[symptomID]; active {
			return true
		}
	}
	return false
}

func dedupeTips(groups ...[]models.WellnessTip) []models.WellnessTip {
	seen := make(map[string]struct{})
	combined := make([]models.WellnessTip, 0)
	for _, group := range groups {
		for _, tip := range group {
			if _, duplicate := seen[tip.ID]; duplicate {
				continue
			}
			seen[tip.ID] = struct{}{}
			combined = append(combined, tip)
		}
	}
	return combined
}

// permuteTipsForDay applies a deterministic permutation seeded from the
// date string, so every read on the same day sees the same order.
func permuteTipsForDay(tips []models.WellnessTip, now time.Time) []models.WellnessTip {
	hasher := fnv.New64a()
	hasher.Write([]byte(FormatDay(now)))
	rng := rand.New(rand.NewSource(int64(hasher.Sum64())))

	permuted := make([]models.WellnessTip, len(tips))
	for target, source := range rng.Perm(len(tips)) {
		permuted[target] = tips[source]
	}
	return permuted
}
