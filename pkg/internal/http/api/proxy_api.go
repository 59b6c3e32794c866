package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func checkProxyURL(c *fiber.Ctx) error {
	if err := services.Checks.CheckURLCanBeProxied(c.Query("url")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
