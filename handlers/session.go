package handlers

import (
	"campuslinkhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetMySession returns the caller's decoded session.
func (h *Handler) GetMySession(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentSession(c))
}
