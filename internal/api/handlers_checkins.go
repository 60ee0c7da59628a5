package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/petalhq/petal/internal/models"
	"github.com/petalhq/petal/internal/services"
)

func (handler *Handler) GetCheckInHistory(c *fiber.Ctx) error {
	history, err := handler.checkInService.History()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-ins")
	}
	return c.JSON(history)
}

func (handler *Handler) GetCheckInDraft(c *fiber.Ctx) error {
	draft, err := handler.checkInService.Draft()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load draft")
	}
	checkedIn, err := handler.checkInService.CheckedInToday(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load draft")
	}
	return c.JSON(fiber.Map{
		"draft":          draft,
		"goals":          models.DailyGoals(),
		"checkedInToday": checkedIn,
	})
}

type draftUpdateRequest struct {
	Mood       *int    `json:"mood"`
	Energy     *int    `json:"energy"`
	ToggleGoal string  `json:"toggleGoal"`
	Notes      *string `json:"notes"`
}

func (handler *Handler) UpdateCheckInDraft(c *fiber.Ctx) error {
	request := draftUpdateRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	draft, err := handler.checkInService.UpdateDraft(services.CheckInDraftUpdate{
		Mood:       request.Mood,
		Energy:     request.Energy,
		ToggleGoal: request.ToggleGoal,
		Notes:      request.Notes,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update draft")
	}
	return c.JSON(draft)
}

func (handler *Handler) DiscardCheckInDraft(c *fiber.Ctx) error {
	if err := handler.checkInService.DiscardDraft(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to discard draft")
	}
	return okJSON(c)
}

func (handler *Handler) SubmitCheckIn(c *fiber.Ctx) error {
	entry, submitted, err := handler.checkInService.Submit(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to submit check-in")
	}
	if !submitted {
		return apiError(c, fiber.StatusUnprocessableEntity, "check-in is incomplete")
	}

	streak, err := handler.checkInService.Streak()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load streak")
	}
	_, newlyUnlocked, err := handler.achievementService.Evaluate(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to refresh achievements")
	}

	return c.JSON(fiber.Map{
		"entry":         entry,
		"streak":        streak,
		"newlyUnlocked": newlyUnlocked,
	})
}

func (handler *Handler) GetStreak(c *fiber.Ctx) error {
	streak, err := handler.checkInService.RecalculateStreak(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute streak")
	}
	return c.JSON(fiber.Map{"streak": streak})
}
