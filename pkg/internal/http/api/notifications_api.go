package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func listNotifications(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	maxID := uint(c.QueryInt("max_id", 0))

	notifications, err := services.ListNotifications(localUser(c), take, maxID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(notifications)
}

func readNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("notificationId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid notification id")
	}
	if err := services.ReadNotification(localUser(c), uint(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func readAllNotifications(c *fiber.Ctx) error {
	if err := services.ReadAllNotifications(localUser(c)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(fiber.StatusOK)
}

func deleteNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("notificationId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid notification id")
	}
	if err := services.DeleteNotification(localUser(c), uint(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
