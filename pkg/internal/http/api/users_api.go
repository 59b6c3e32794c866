package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func signup(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" validate:"required,min=3,max=32"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.NewUser(data.Username, data.Email, data.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func login(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.GetUserWithUsername(database.C, data.Username)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if err := services.Checks.CheckPasswordMatches(user, data.Password); err != nil {
		return err
	}

	token, err := services.Checks.Tokens().SignAccess(user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"token": token, "user": user})
}

func getMe(c *fiber.Ctx) error {
	return c.JSON(localUser(c))
}

func getUser(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.Checks.CheckTargetUserVisible(localUser(c), target); err != nil {
		return err
	}
	return c.JSON(target)
}

func setUserLanguage(c *fiber.Ctx) error {
	var data struct {
		LanguageID uint `json:"language_id" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if err := services.SetUserLanguage(localUser(c), data.LanguageID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func acceptGuidelines(c *fiber.Ctx) error {
	if err := services.AcceptGuidelines(localUser(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func requestPasswordReset(c *fiber.Ctx) error {
	token, err := services.RequestPasswordReset(localUser(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"token": token})
}

func resetPassword(c *fiber.Ctx) error {
	var data struct {
		Username    string `json:"username" validate:"required"`
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.GetUserWithUsername(database.C, data.Username)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if err := services.ResetPassword(user, data.Token, data.NewPassword); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func requestEmailChange(c *fiber.Ctx) error {
	var data struct {
		NewEmail string `json:"new_email" validate:"required,email"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	token, err := services.RequestEmailChange(localUser(c), data.NewEmail)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

func changeEmail(c *fiber.Ctx) error {
	var data struct {
		Token string `json:"token" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if err := services.ChangeEmail(localUser(c), data.Token); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
