package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetDailyTips(c *fiber.Ctx) error {
	now := handler.now()

	phaseName := ""
	if snapshot, found, err := handler.periodService.Snapshot(now); err == nil && found {
		phaseName = snapshot.CurrentPhase.Name
	}
	symptoms, err := handler.symptomService.CurrentSymptoms()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}

	return c.JSON(handler.tipsService.DailyTips(now, phaseName, symptoms))
}

func (handler *Handler) GetViewedTips(c *fiber.Ctx) error {
	viewed, err := handler.tipsService.ViewedTips()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load viewed tips")
	}
	return c.JSON(viewed)
}

type markTipViewedRequest struct {
	ID string `json:"id"`
}

func (handler *Handler) MarkTipViewed(c *fiber.Ctx) error {
	request := markTipViewedRequest{}
	if err := c.BodyParser(&request); err != nil || request.ID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	viewed, err := handler.tipsService.MarkViewed(request.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save viewed tip")
	}
	return c.JSON(viewed)
}
