package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func listComments(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	if err := services.Checks.CheckCanSeePost(localUser(c), post); err != nil {
		return err
	}

	comments, err := services.ListComments(post, c.QueryInt("take", 20))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(comments)
}

func commentOnPost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}

	var data struct {
		Text *string `json:"text" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.CommentOnPost(localUser(c), post, data.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func replyToComment(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	parent, err := commentParam(c)
	if err != nil {
		return err
	}

	var data struct {
		Text *string `json:"text" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	reply, err := services.ReplyToComment(localUser(c), parent, post, data.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

func editComment(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	commentID, err := c.ParamsInt("commentId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	var data struct {
		Text *string `json:"text" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.EditComment(localUser(c), uint(commentID), post, data.Text)
	if err != nil {
		return err
	}
	return c.JSON(comment)
}

func deleteComment(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	commentID, err := c.ParamsInt("commentId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}
	if err := services.DeleteComment(localUser(c), uint(commentID), post); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func muteComment(c *fiber.Ctx) error {
	comment, err := commentParam(c)
	if err != nil {
		return err
	}
	if err := services.MuteComment(localUser(c), comment); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func unmuteComment(c *fiber.Ctx) error {
	comment, err := commentParam(c)
	if err != nil {
		return err
	}
	if err := services.UnmuteComment(localUser(c), comment); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func reportComment(c *fiber.Ctx) error {
	comment, err := commentParam(c)
	if err != nil {
		return err
	}

	var data struct {
		CategoryID  uint    `json:"category_id" validate:"required"`
		Description *string `json:"description"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.ReportComment(localUser(c), comment, data.CategoryID, data.Description); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func translateComment(c *fiber.Ctx) error {
	comment, err := commentParam(c)
	if err != nil {
		return err
	}
	request, err := services.TranslateComment(localUser(c), comment)
	if err != nil {
		return err
	}
	return c.JSON(request)
}
