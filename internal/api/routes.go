package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	cycle := api.Group("/cycle")
	cycle.Get("", handler.GetCycle)
	cycle.Put("/period", handler.UpdatePeriodStart)

	symptoms := api.Group("/symptoms")
	symptoms.Get("/catalog", handler.GetSymptomCatalog)
	symptoms.Get("/current", handler.GetCurrentSymptoms)
	symptoms.Get("/history", handler.GetSymptomHistory)
	symptoms.Post("/toggle", handler.ToggleSymptom)
	symptoms.Post("/severity", handler.UpdateSymptomSeverity)
	symptoms.Post("/commit", handler.CommitSymptomDay)

	checkIns := api.Group("/checkins")
	checkIns.Get("", handler.GetCheckInHistory)
	checkIns.Get("/draft", handler.GetCheckInDraft)
	checkIns.Patch("/draft", handler.UpdateCheckInDraft)
	checkIns.Delete("/draft", handler.DiscardCheckInDraft)
	checkIns.Post("/submit", handler.SubmitCheckIn)
	checkIns.Get("/streak", handler.GetStreak)

	habits := api.Group("/habits")
	habits.Get("", handler.GetHabits)
	habits.Get("/catalog", handler.GetHabitCatalog)
	habits.Post("", handler.CreateHabit)
	habits.Post("/template", handler.CreateTemplateHabit)
	habits.Post("/:id/toggle", handler.ToggleHabitCompletion)
	habits.Delete("/:id", handler.DeleteHabit)

	api.Get("/achievements", handler.GetAchievements)

	insights := api.Group("/insights")
	insights.Get("/overview", handler.GetInsightOverview)
	insights.Get("/symptom-trends", handler.GetSymptomTrends)

	tips := api.Group("/tips")
	tips.Get("/daily", handler.GetDailyTips)
	tips.Get("/viewed", handler.GetViewedTips)
	tips.Post("/viewed", handler.MarkTipViewed)

	data := api.Group("/data")
	data.Get("/export", handler.ExportData)
	data.Delete("", handler.ClearAllData)
}
