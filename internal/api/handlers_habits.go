package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/petalhq/petal/internal/models"
	"github.com/petalhq/petal/internal/services"
)

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	summary, err := handler.habitService.WeeklySummary(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habits")
	}
	return c.JSON(summary)
}

func (handler *Handler) GetHabitCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": models.HabitCategories(),
		"templates":  models.HabitTemplates(),
	})
}

type createHabitRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Target   int    `json:"target"`
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	request := createHabitRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habitService.AddHabit(request.Name, request.Category, request.Target, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrHabitNameRequired) || errors.Is(err, services.ErrUnknownHabitCategory) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

type createTemplateHabitRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) CreateTemplateHabit(c *fiber.Ctx) error {
	request := createTemplateHabitRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habitService.AddTemplateHabit(request.Name, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrUnknownHabitTemplate) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) ToggleHabitCompletion(c *fiber.Ctx) error {
	habits, err := handler.habitService.ToggleCompletion(c.Params("id"), handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle habit")
	}
	return c.JSON(habits)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	if err := handler.habitService.DeleteHabit(c.Params("id")); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete habit")
	}
	return okJSON(c)
}
