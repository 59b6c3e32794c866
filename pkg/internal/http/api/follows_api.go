package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func followUser(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}
	follow, err := services.FollowUser(localUser(c), target)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

func unfollowUser(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.UnfollowUser(localUser(c), target); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func createFollowRequest(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}
	request, err := services.CreateFollowRequest(localUser(c), target)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

func approveFollowRequest(c *fiber.Ctx) error {
	requester, err := userParam(c)
	if err != nil {
		return err
	}
	follow, err := services.ApproveFollowRequest(localUser(c), requester)
	if err != nil {
		return err
	}
	return c.JSON(follow)
}

func deleteFollowRequest(c *fiber.Ctx) error {
	requester, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.DeleteFollowRequest(localUser(c), requester); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func blockUser(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}
	block, err := services.BlockUser(localUser(c), target)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(block)
}

func unblockUser(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.UnblockUser(localUser(c), target); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func connectWithUser(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}

	var data struct {
		CircleIDs []uint `json:"circle_ids"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	connection, err := services.ConnectWithUser(localUser(c), target, data.CircleIDs)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(connection)
}

func updateConnectionCircles(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}

	var data struct {
		CircleIDs []uint `json:"circle_ids" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	connection, err := services.UpdateConnectionCircles(localUser(c), target, data.CircleIDs)
	if err != nil {
		return err
	}
	return c.JSON(connection)
}

func disconnectFromUser(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.DisconnectFromUser(localUser(c), target); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func subscribeToUser(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.EnableNewPostNotificationsForUser(localUser(c), target); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func unsubscribeFromUser(c *fiber.Ctx) error {
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.DisableNewPostNotificationsForUser(localUser(c), target); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}
