package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ExportData(c *fiber.Ctx) error {
	export, err := handler.dataService.Export()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export data")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="petal-export.json"`)
	return c.JSON(export)
}

func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	if err := handler.dataService.ClearAll(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data")
	}
	return okJSON(c)
}
