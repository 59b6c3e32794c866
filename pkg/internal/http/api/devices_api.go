package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func listDevices(c *fiber.Ctx) error {
	devices, err := services.ListDevices(localUser(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(devices)
}

func createDevice(c *fiber.Ctx) error {
	var data struct {
		UUID string `json:"uuid" validate:"required"`
		Name string `json:"name"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	device, err := services.CreateDevice(localUser(c), data.UUID, data.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(device)
}

func updateDevice(c *fiber.Ctx) error {
	var data struct {
		Name string `json:"name" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if err := services.UpdateDevice(localUser(c), c.Params("uuid"), data.Name); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func deleteDevice(c *fiber.Ctx) error {
	if err := services.DeleteDevice(localUser(c), c.Params("uuid")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
