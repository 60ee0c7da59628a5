package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/petalhq/petal/internal/models"
)

func (handler *Handler) GetSymptomCatalog(c *fiber.Ctx) error {
	return c.JSON(models.SymptomCatalog())
}

func (handler *Handler) GetCurrentSymptoms(c *fiber.Ctx) error {
	symptoms, err := handler.symptomService.CurrentSymptoms()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}
	return c.JSON(symptoms)
}

func (handler *Handler) GetSymptomHistory(c *fiber.Ctx) error {
	history, err := handler.symptomService.History()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptom history")
	}
	return c.JSON(history)
}

type toggleSymptomRequest struct {
	Category string `json:"category"`
	Symptom  string `json:"symptom"`
}

func (handler *Handler) ToggleSymptom(c *fiber.Ctx) error {
	request := toggleSymptomRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	symptoms, err := handler.symptomService.ToggleSymptom(request.Category, request.Symptom, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle symptom")
	}
	return c.JSON(symptoms)
}

type updateSeverityRequest struct {
	Category string `json:"category"`
	Symptom  string `json:"symptom"`
	Severity int    `json:"severity"`
}

func (handler *Handler) UpdateSymptomSeverity(c *fiber.Ctx) error {
	request := updateSeverityRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	symptoms, err := handler.symptomService.UpdateSeverity(request.Category, request.Symptom, request.Severity, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update severity")
	}
	return c.JSON(symptoms)
}

func (handler *Handler) CommitSymptomDay(c *fiber.Ctx) error {
	history, err := handler.symptomService.CommitDay(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save symptom day")
	}
	return c.JSON(history)
}
