package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func circleParam(c *fiber.Ctx) (models.Circle, error) {
	var circle models.Circle
	id, err := c.ParamsInt("circleId")
	if err != nil {
		return circle, fiber.NewError(fiber.StatusBadRequest, "invalid circle id")
	}
	if err := database.C.First(&circle, id).Error; err != nil {
		return circle, fiber.NewError(fiber.StatusNotFound, "circle not found")
	}
	return circle, nil
}

func listCircles(c *fiber.Ctx) error {
	circles, err := services.ListCircles(localUser(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(circles)
}

func createCircle(c *fiber.Ctx) error {
	var data struct {
		Name  string `json:"name" validate:"required,max=64"`
		Color string `json:"color"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	circle, err := services.CreateCircle(localUser(c), data.Name, data.Color)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(circle)
}

func updateCircle(c *fiber.Ctx) error {
	circle, err := circleParam(c)
	if err != nil {
		return err
	}

	var data struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.UpdateCircle(localUser(c), circle, data.Name, data.Color); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func deleteCircle(c *fiber.Ctx) error {
	circle, err := circleParam(c)
	if err != nil {
		return err
	}
	if err := services.DeleteCircle(localUser(c), circle); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
