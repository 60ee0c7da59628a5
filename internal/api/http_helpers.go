package api

import "github.com/gofiber/fiber/v2"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func okJSON(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
