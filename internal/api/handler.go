package api

import (
	"time"

	"github.com/petalhq/petal/internal/db"
	"github.com/petalhq/petal/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	store    services.KeyValueStore
	location *time.Location

	periodService      *services.PeriodService
	symptomService     *services.SymptomService
	checkInService     *services.CheckInService
	habitService       *services.HabitService
	achievementService *services.AchievementService
	insightService     *services.InsightService
	tipsService        *services.TipsService
	dataService        *services.DataService
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	return NewHandlerWithStore(db.NewRepositories(database).KV, location)
}

// NewHandlerWithStore wires the handler onto any KeyValueStore, which keeps
// the HTTP layer testable without a database.
func NewHandlerWithStore(store services.KeyValueStore, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		store:              store,
		location:           location,
		periodService:      services.NewPeriodService(store),
		symptomService:     services.NewSymptomService(store),
		checkInService:     services.NewCheckInService(store),
		habitService:       services.NewHabitService(store),
		achievementService: services.NewAchievementService(store),
		insightService:     services.NewInsightService(store),
		tipsService:        services.NewTipsService(store),
		dataService:        services.NewDataService(store),
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
