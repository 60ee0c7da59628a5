package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetAchievements(c *fiber.Ctx) error {
	achievements, newlyUnlocked, err := handler.achievementService.Evaluate(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to evaluate achievements")
	}

	stats, err := handler.achievementService.BuildUserStats()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}

	return c.JSON(fiber.Map{
		"achievements":  achievements,
		"newlyUnlocked": newlyUnlocked,
		"stats":         stats,
	})
}
