package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func reactToPost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}

	var data struct {
		EmojiID uint `json:"emoji_id" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	reaction, err := services.ReactToPost(localUser(c), post, data.EmojiID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(reaction)
}

func deletePostReaction(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	reactionID, err := c.ParamsInt("reactionId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid reaction id")
	}

	var reaction models.PostReaction
	if err := database.C.First(&reaction, reactionID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "reaction not found")
	}

	if err := services.DeletePostReaction(localUser(c), reaction, post); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func reactToComment(c *fiber.Ctx) error {
	comment, err := commentParam(c)
	if err != nil {
		return err
	}

	var data struct {
		EmojiID uint `json:"emoji_id" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	reaction, err := services.ReactToComment(localUser(c), comment, data.EmojiID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(reaction)
}

func deleteCommentReaction(c *fiber.Ctx) error {
	comment, err := commentParam(c)
	if err != nil {
		return err
	}
	if err := services.DeleteCommentReaction(localUser(c), comment); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
