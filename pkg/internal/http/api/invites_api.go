package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func listInvites(c *fiber.Ctx) error {
	invites, err := services.ListInvites(localUser(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(invites)
}

func createInvite(c *fiber.Ctx) error {
	var data struct {
		Nickname string `json:"nickname" validate:"required,max=64"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	invite, err := services.CreateInvite(localUser(c), data.Nickname)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(invite)
}

func sendInviteEmail(c *fiber.Ctx) error {
	inviteID, err := c.ParamsInt("inviteId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invite id")
	}

	var data struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.SendInviteEmail(localUser(c), uint(inviteID), data.Email); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func deleteInvite(c *fiber.Ctx) error {
	inviteID, err := c.ParamsInt("inviteId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invite id")
	}
	if err := services.DeleteInvite(localUser(c), uint(inviteID)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
