package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func listParam(c *fiber.Ctx) (models.List, error) {
	var list models.List
	id, err := c.ParamsInt("listId")
	if err != nil {
		return list, fiber.NewError(fiber.StatusBadRequest, "invalid list id")
	}
	if err := database.C.First(&list, id).Error; err != nil {
		return list, fiber.NewError(fiber.StatusNotFound, "list not found")
	}
	return list, nil
}

func listLists(c *fiber.Ctx) error {
	lists, err := services.ListLists(localUser(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(lists)
}

func createList(c *fiber.Ctx) error {
	var data struct {
		Name    string `json:"name" validate:"required,max=64"`
		EmojiID *uint  `json:"emoji_id"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	list, err := services.CreateList(localUser(c), data.Name, data.EmojiID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(list)
}

func updateList(c *fiber.Ctx) error {
	list, err := listParam(c)
	if err != nil {
		return err
	}

	var data struct {
		Name    *string `json:"name"`
		EmojiID *uint   `json:"emoji_id"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.UpdateList(localUser(c), list, data.Name, data.EmojiID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func deleteList(c *fiber.Ctx) error {
	list, err := listParam(c)
	if err != nil {
		return err
	}
	if err := services.DeleteList(localUser(c), list); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
