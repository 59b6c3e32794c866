package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func listGlobalModeratedObjects(c *fiber.Ctx) error {
	objects, err := services.ListGlobalModeratedObjects(localUser(c), c.QueryInt("take", 20))
	if err != nil {
		return err
	}
	return c.JSON(objects)
}

func getModeratedObject(c *fiber.Ctx) error {
	mo, err := moderatedObjectParam(c)
	if err != nil {
		return err
	}
	if err := services.Checks.CheckCanGetModeratedObject(localUser(c), mo); err != nil {
		return err
	}
	return c.JSON(mo)
}

func updateModeratedObject(c *fiber.Ctx) error {
	mo, err := moderatedObjectParam(c)
	if err != nil {
		return err
	}

	var data struct {
		CategoryID  *uint   `json:"category_id"`
		Description *string `json:"description"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	mo, err = services.UpdateModeratedObject(localUser(c), mo, data.CategoryID, data.Description)
	if err != nil {
		return err
	}
	return c.JSON(mo)
}

func approveModeratedObject(c *fiber.Ctx) error {
	mo, err := moderatedObjectParam(c)
	if err != nil {
		return err
	}
	if err := services.ApproveModeratedObject(localUser(c), mo); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func rejectModeratedObject(c *fiber.Ctx) error {
	mo, err := moderatedObjectParam(c)
	if err != nil {
		return err
	}
	if err := services.RejectModeratedObject(localUser(c), mo); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func verifyModeratedObject(c *fiber.Ctx) error {
	mo, err := moderatedObjectParam(c)
	if err != nil {
		return err
	}
	if err := services.VerifyModeratedObject(localUser(c), mo); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func unverifyModeratedObject(c *fiber.Ctx) error {
	mo, err := moderatedObjectParam(c)
	if err != nil {
		return err
	}
	if err := services.UnverifyModeratedObject(localUser(c), mo); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func reportModeratedObject(c *fiber.Ctx) error {
	mo, err := moderatedObjectParam(c)
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

	if err := services.ReportModeratedObject(localUser(c), mo, data.CategoryID, data.Description); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func reportUser(c *fiber.Ctx) error {
	target, err := userParam(c)
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

	if err := services.ReportUser(localUser(c), target, data.CategoryID, data.Description); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}
