package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/services"
	"github.com/grovesocial/grove/pkg/internal/services/queries"
	"gorm.io/datatypes"
)

func listVisiblePosts(c *fiber.Ctx) error {
	user := localUser(c)
	take := c.QueryInt("take", 20)
	maxID := uint(c.QueryInt("max_id", 0))
	minID := uint(c.QueryInt("min_id", 0))

	tx := queries.VisiblePosts(database.C, user.ID)
	posts, err := services.ListPost(tx, take, maxID, minID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(posts)
}

func getPost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	if err := services.Checks.CheckCanSeePost(localUser(c), post); err != nil {
		return err
	}
	return c.JSON(post)
}

func createPost(c *fiber.Ctx) error {
	var data struct {
		Text      *string           `json:"text"`
		CircleIDs []uint            `json:"circle_ids"`
		Community string            `json:"community"`
		Media     datatypes.JSONMap `json:"media"`
		Publish   bool              `json:"publish"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user := localUser(c)

	var community *models.Community
	if len(data.Community) > 0 {
		item, err := services.GetCommunityWithName(data.Community)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "community not found")
		}
		community = &item
	}

	post, err := services.CreatePost(user, data.Text, data.CircleIDs, community, data.Media)
	if err != nil {
		return err
	}
	if data.Publish {
		if post, err = services.PublishPost(user, post); err != nil {
			return err
		}
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func publishPost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	post, err = services.PublishPost(localUser(c), post)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

func updatePost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}

	var data struct {
		Text *string `json:"text"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	post, err = services.UpdatePost(localUser(c), post, data.Text)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

func deletePost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	if err := services.DeletePost(localUser(c), post); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func closePost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	if err := services.ClosePost(localUser(c), post); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func openPost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	if err := services.OpenPost(localUser(c), post); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func mutePost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	if err := services.MutePost(localUser(c), post); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func unmutePost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	if err := services.UnmutePost(localUser(c), post); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func reportPost(c *fiber.Ctx) error {
	post, err := postParam(c)
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

	if err := services.ReportPost(localUser(c), post, data.CategoryID, data.Description); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func translatePost(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	request, err := services.TranslatePost(localUser(c), post)
	if err != nil {
		return err
	}
	return c.JSON(request)
}

func getPostLinkPreview(c *fiber.Ctx) error {
	post, err := postParam(c)
	if err != nil {
		return err
	}
	link, err := services.GetPreviewLink(localUser(c), post)
	if err != nil {
		return err
	}
	return c.JSON(link)
}

func getHashtagFeed(c *fiber.Ctx) error {
	user := localUser(c)
	take := c.QueryInt("take", 20)
	maxID := uint(c.QueryInt("max_id", 0))
	minID := uint(c.QueryInt("min_id", 0))

	hashtag, err := services.GetHashtagWithName(c.Params("hashtag"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "hashtag not found")
	}

	tx := queries.HashtagFeed(database.C, hashtag.Name, user.ID)
	posts, err := services.ListPost(tx, take, maxID, minID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(posts)
}

func getProfileFeed(c *fiber.Ctx) error {
	user := localUser(c)
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.Checks.CheckTargetUserVisible(user, target); err != nil {
		return err
	}

	take := c.QueryInt("take", 20)
	maxID := uint(c.QueryInt("max_id", 0))
	minID := uint(c.QueryInt("min_id", 0))
	withCommunityPosts := c.QueryBool("community_posts", true)

	tx := queries.ProfileFeed(database.C, target.ID, user.ID, withCommunityPosts)
	posts, err := services.ListPost(tx, take, maxID, minID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(posts)
}

func reportHashtag(c *fiber.Ctx) error {
	hashtag, err := services.GetHashtagWithName(c.Params("hashtag"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "hashtag not found")
	}

	var data struct {
		CategoryID  uint    `json:"category_id" validate:"required"`
		Description *string `json:"description"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.ReportHashtag(localUser(c), hashtag, data.CategoryID, data.Description); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}
