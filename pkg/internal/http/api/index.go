package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grovesocial/grove/pkg/internal/models"
)

func localUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals("user").(models.User)
	return user
}

// MapAPIs mounts every route. Everything except signup, login, and the
// password-reset entry points requires a bearer access token.
func MapAPIs(app *fiber.App, baseURL string, auth fiber.Handler) {
	open := app.Group(baseURL)
	{
		open.Post("/auth/signup", signup)
		open.Post("/auth/login", login)
		open.Post("/auth/password-reset", resetPassword)
	}

	api := app.Group(baseURL, auth)
	{
		me := api.Group("/users/me")
		{
			me.Get("/", getMe)
			me.Put("/language", setUserLanguage)
			me.Post("/guidelines/accept", acceptGuidelines)
			me.Post("/password-reset/request", requestPasswordReset)
			me.Post("/email-change/request", requestEmailChange)
			me.Post("/email-change", changeEmail)
		}

		users := api.Group("/users")
		{
			users.Get("/:username", getUser)
			users.Post("/:username/follow", followUser)
			users.Delete("/:username/follow", unfollowUser)
			users.Post("/:username/follow-requests", createFollowRequest)
			users.Post("/:username/follow-requests/approve", approveFollowRequest)
			users.Delete("/:username/follow-requests", deleteFollowRequest)
			users.Post("/:username/block", blockUser)
			users.Delete("/:username/block", unblockUser)
			users.Post("/:username/connect", connectWithUser)
			users.Put("/:username/connect/circles", updateConnectionCircles)
			users.Delete("/:username/connect", disconnectFromUser)
			users.Post("/:username/notifications/subscribe", subscribeToUser)
			users.Delete("/:username/notifications/subscribe", unsubscribeFromUser)
			users.Post("/:username/report", reportUser)
		}

		circles := api.Group("/circles")
		{
			circles.Get("/", listCircles)
			circles.Post("/", createCircle)
			circles.Put("/:circleId", updateCircle)
			circles.Delete("/:circleId", deleteCircle)
		}

		lists := api.Group("/lists")
		{
			lists.Get("/", listLists)
			lists.Post("/", createList)
			lists.Put("/:listId", updateList)
			lists.Delete("/:listId", deleteList)
		}

		posts := api.Group("/posts")
		{
			posts.Get("/", listVisiblePosts)
			posts.Post("/", createPost)
			posts.Get("/:postId", getPost)
			posts.Put("/:postId", updatePost)
			posts.Delete("/:postId", deletePost)
			posts.Post("/:postId/publish", publishPost)
			posts.Post("/:postId/close", closePost)
			posts.Post("/:postId/open", openPost)
			posts.Post("/:postId/mute", mutePost)
			posts.Delete("/:postId/mute", unmutePost)
			posts.Post("/:postId/report", reportPost)
			posts.Post("/:postId/translate", translatePost)
			posts.Get("/:postId/link-preview", getPostLinkPreview)

			posts.Post("/:postId/reactions", reactToPost)
			posts.Delete("/:postId/reactions/:reactionId", deletePostReaction)

			posts.Get("/:postId/comments", listComments)
			posts.Post("/:postId/comments", commentOnPost)
			posts.Put("/:postId/comments/:commentId", editComment)
			posts.Delete("/:postId/comments/:commentId", deleteComment)
			posts.Post("/:postId/comments/:commentId/replies", replyToComment)
		}

		comments := api.Group("/comments")
		{
			comments.Post("/:commentId/mute", muteComment)
			comments.Delete("/:commentId/mute", unmuteComment)
			comments.Post("/:commentId/report", reportComment)
			comments.Post("/:commentId/translate", translateComment)
			comments.Post("/:commentId/reactions", reactToComment)
			comments.Delete("/:commentId/reactions", deleteCommentReaction)
		}

		feeds := api.Group("/feeds")
		{
			feeds.Get("/hashtags/:hashtag", getHashtagFeed)
			feeds.Get("/users/:username", getProfileFeed)
		}

		hashtags := api.Group("/hashtags")
		{
			hashtags.Post("/:hashtag/report", reportHashtag)
		}

		communities := api.Group("/communities")
		{
			communities.Post("/", createCommunity)
			communities.Get("/:community", getCommunity)
			communities.Put("/:community", updateCommunity)
			communities.Delete("/:community", deleteCommunity)
			communities.Post("/:community/join", joinCommunity)
			communities.Post("/:community/leave", leaveCommunity)
			communities.Get("/:community/members", listCommunityMembers)
			communities.Get("/:community/posts", listCommunityPosts)
			communities.Get("/:community/closed-posts", listCommunityClosedPosts)
			communities.Get("/:community/administrators", listCommunityAdministrators)
			communities.Get("/:community/moderators", listCommunityModerators)
			communities.Get("/:community/banned-users", listCommunityBannedUsers)
			communities.Post("/:community/invites/:username", inviteUserToCommunity)
			communities.Delete("/:community/invites/:username", uninviteUserFromCommunity)
			communities.Post("/:community/bans/:username", banUserFromCommunity)
			communities.Delete("/:community/bans/:username", unbanUserFromCommunity)
			communities.Post("/:community/administrators/:username", addCommunityAdministrator)
			communities.Delete("/:community/administrators/:username", removeCommunityAdministrator)
			communities.Post("/:community/moderators/:username", addCommunityModerator)
			communities.Delete("/:community/moderators/:username", removeCommunityModerator)
			communities.Post("/:community/favorite", favoriteCommunity)
			communities.Delete("/:community/favorite", unfavoriteCommunity)
			communities.Post("/:community/top-posts-exclusion", excludeCommunityFromTopPosts)
			communities.Delete("/:community/top-posts-exclusion", removeTopPostsCommunityExclusion)
			communities.Post("/:community/profile-posts-exclusion", excludeCommunityFromProfilePosts)
			communities.Delete("/:community/profile-posts-exclusion", removeProfilePostsCommunityExclusion)
			communities.Post("/:community/notifications/subscribe", subscribeToCommunity)
			communities.Delete("/:community/notifications/subscribe", unsubscribeFromCommunity)
			communities.Put("/:community/posts/:postId/comments-enabled", setPostCommentsEnabled)
			communities.Post("/:community/report", reportCommunity)
			communities.Get("/:community/moderated-objects", listCommunityModeratedObjects)
		}

		moderation := api.Group("/moderated-objects")
		{
			moderation.Get("/", listGlobalModeratedObjects)
			moderation.Get("/:objectId", getModeratedObject)
			moderation.Put("/:objectId", updateModeratedObject)
			moderation.Post("/:objectId/report", reportModeratedObject)
			moderation.Post("/:objectId/approve", approveModeratedObject)
			moderation.Post("/:objectId/reject", rejectModeratedObject)
			moderation.Post("/:objectId/verify", verifyModeratedObject)
			moderation.Post("/:objectId/unverify", unverifyModeratedObject)
		}

		invites := api.Group("/invites")
		{
			invites.Get("/", listInvites)
			invites.Post("/", createInvite)
			invites.Post("/:inviteId/email", sendInviteEmail)
			invites.Delete("/:inviteId", deleteInvite)
		}

		devices := api.Group("/devices")
		{
			devices.Get("/", listDevices)
			devices.Post("/", createDevice)
			devices.Put("/:uuid", updateDevice)
			devices.Delete("/:uuid", deleteDevice)
		}

		notifications := api.Group("/notifications")
		{
			notifications.Get("/", listNotifications)
			notifications.Post("/read", readAllNotifications)
			notifications.Post("/:notificationId/read", readNotification)
			notifications.Delete("/:notificationId", deleteNotification)
		}

		proxy := api.Group("/proxy")
		{
			proxy.Get("/check", checkProxyURL)
		}
	}
}
