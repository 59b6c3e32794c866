package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func userParam(c *fiber.Ctx) (models.User, error) {
	user, err := services.GetUserWithUsername(database.C, c.Params("username"))
	if err != nil {
		return user, fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	return user, nil
}

func communityParam(c *fiber.Ctx) (models.Community, error) {
	community, err := services.GetCommunityWithName(c.Params("community"))
	if err != nil {
		return community, fiber.NewError(fiber.StatusNotFound, "community not found")
	}
	return community, nil
}

func postParam(c *fiber.Ctx) (models.Post, error) {
	var post models.Post
	id, err := c.ParamsInt("postId")
	if err != nil {
		return post, fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}
	post, err = services.GetPost(database.C, uint(id))
	if err != nil {
		return post, fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	return post, nil
}

func commentParam(c *fiber.Ctx) (models.PostComment, error) {
	var comment models.PostComment
	id, err := c.ParamsInt("commentId")
	if err != nil {
		return comment, fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}
	comment, err = services.GetComment(database.C, uint(id))
	if err != nil {
		return comment, fiber.NewError(fiber.StatusNotFound, "comment not found")
	}
	return comment, nil
}

func moderatedObjectParam(c *fiber.Ctx) (models.ModeratedObject, error) {
	var mo models.ModeratedObject
	id, err := c.ParamsInt("objectId")
	if err != nil {
		return mo, fiber.NewError(fiber.StatusBadRequest, "invalid moderated object id")
	}
	mo, err = services.GetModeratedObject(database.C, uint(id))
	if err != nil {
		return mo, fiber.NewError(fiber.StatusNotFound, "moderated object not found")
	}
	return mo, nil
}
