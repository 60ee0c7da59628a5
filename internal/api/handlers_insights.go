package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetInsightOverview(c *fiber.Ctx) error {
	overview, err := handler.insightService.Overview(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build insights")
	}
	return c.JSON(overview)
}

func (handler *Handler) GetSymptomTrends(c *fiber.Ctx) error {
	trends, err := handler.insightService.RecentSymptomTrends()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build symptom trends")
	}
	return c.JSON(trends)
}
