package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/petalhq/petal/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetCycle(c *fiber.Ctx) error {
	snapshot, found, err := handler.periodService.Snapshot(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute cycle")
	}
	if !found {
		return c.JSON(fiber.Map{"configured": false})
	}
	return c.JSON(fiber.Map{"configured": true, "snapshot": snapshot})
}

type updatePeriodRequest struct {
	Date string `json:"date"`
}

func (handler *Handler) UpdatePeriodStart(c *fiber.Ctx) error {
	request := updatePeriodRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.periodService.RecordPeriodStart(request.Date); err != nil {
		if errors.Is(err, services.ErrInvalidPeriodDate) {
			return apiError(c, fiber.StatusBadRequest, "invalid period date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save period date")
	}

	snapshot, _, err := handler.periodService.Snapshot(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute cycle")
	}
	return c.JSON(fiber.Map{"configured": true, "snapshot": snapshot})
}
