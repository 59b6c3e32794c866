package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/http/exts"
	"github.com/grovesocial/grove/pkg/internal/services"
)

func createCommunity(c *fiber.Ctx) error {
	var data struct {
		Name  string `json:"name" validate:"required,min=3,max=64"`
		Title string `json:"title"`
		Type  string `json:"type" validate:"omitempty,oneof=public private"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	community, err := services.CreateCommunity(localUser(c), data.Name, data.Title, data.Type)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(community)
}

func getCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.Checks.CheckCanGetCommunity(localUser(c), community); err != nil {
		return err
	}
	return c.JSON(community)
}

func updateCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}

	var data struct {
		Name *string `json:"name"`
		Type *string `json:"type"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	community, err = services.UpdateCommunity(localUser(c), community, data.Name, data.Type)
	if err != nil {
		return err
	}
	return c.JSON(community)
}

func deleteCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.DeleteCommunity(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func joinCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	membership, err := services.JoinCommunity(localUser(c), community)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(membership)
}

func leaveCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.LeaveCommunity(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func listCommunityMembers(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	memberships, err := services.ListCommunityMembers(localUser(c), community, c.QueryInt("take", 20))
	if err != nil {
		return err
	}
	return c.JSON(memberships)
}

func listCommunityPosts(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	posts, err := services.ListCommunityPosts(localUser(c), community, c.QueryInt("take", 20))
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

func listCommunityClosedPosts(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	posts, err := services.ListCommunityClosedPosts(localUser(c), community, c.QueryInt("take", 20))
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

func listCommunityAdministrators(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	memberships, err := services.ListCommunityAdministrators(localUser(c), community)
	if err != nil {
		return err
	}
	return c.JSON(memberships)
}

func listCommunityModerators(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	memberships, err := services.ListCommunityModerators(localUser(c), community)
	if err != nil {
		return err
	}
	return c.JSON(memberships)
}

func listCommunityBannedUsers(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	users, err := services.ListCommunityBannedUsers(localUser(c), community)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func inviteUserToCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	target, err := userParam(c)
	if err != nil {
		return err
	}
	invite, err := services.InviteUserToCommunity(localUser(c), target, community)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(invite)
}

func uninviteUserFromCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.UninviteUserFromCommunity(localUser(c), target, community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func banUserFromCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.BanUserFromCommunity(localUser(c), target, community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func unbanUserFromCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.UnbanUserFromCommunity(localUser(c), target, community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func addCommunityAdministrator(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.AddCommunityAdministrator(localUser(c), target, community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func removeCommunityAdministrator(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.RemoveCommunityAdministrator(localUser(c), target, community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func addCommunityModerator(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.AddCommunityModerator(localUser(c), target, community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func removeCommunityModerator(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	target, err := userParam(c)
	if err != nil {
		return err
	}
	if err := services.RemoveCommunityModerator(localUser(c), target, community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func favoriteCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.FavoriteCommunity(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func unfavoriteCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.UnfavoriteCommunity(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func excludeCommunityFromTopPosts(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.ExcludeCommunityFromTopPosts(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func removeTopPostsCommunityExclusion(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.RemoveTopPostsCommunityExclusion(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func excludeCommunityFromProfilePosts(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.ExcludeCommunityFromProfilePosts(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func removeProfilePostsCommunityExclusion(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.RemoveProfilePostsCommunityExclusion(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func subscribeToCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.EnableCommunityNewPostNotifications(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func unsubscribeFromCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	if err := services.DisableCommunityNewPostNotifications(localUser(c), community); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func setPostCommentsEnabled(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	post, err := postParam(c)
	if err != nil {
		return err
	}

	var data struct {
		Enabled bool `json:"enabled"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.EnableDisableCommentsForPost(localUser(c), community, post, data.Enabled); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

func reportCommunity(c *fiber.Ctx) error {
	community, err := communityParam(c)
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

	if err := services.ReportCommunity(localUser(c), community, data.CategoryID, data.Description); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

func listCommunityModeratedObjects(c *fiber.Ctx) error {
	community, err := communityParam(c)
	if err != nil {
		return err
	}
	objects, err := services.ListCommunityModeratedObjects(localUser(c), community, c.QueryInt("take", 20))
	if err != nil {
		return err
	}
	return c.JSON(objects)
}
