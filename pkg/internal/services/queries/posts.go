// Package queries composes visibility predicates over the post collection.
// Every filter takes and returns a *gorm.DB and is free of side effects;
// composites are plain chains of the fragments.
package queries

import (
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"gorm.io/gorm"
)

func FilterPostWithMaxID(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Where("posts.id < ?", id)
}

func FilterPostWithMinID(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Where("posts.id > ?", id)
}

func FilterPostWithHashtag(tx *gorm.DB, name string) *gorm.DB {
	return tx.Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
		Joins("JOIN hashtags ON hashtags.id = post_hashtags.hashtag_id").
		Where("hashtags.name = ?", name)
}

func FilterPostForCreator(tx *gorm.DB, userID uint) *gorm.DB {
	return tx.Where("posts.creator_id = ?", userID)
}

func FilterPostPublished(tx *gorm.DB) *gorm.DB {
	return tx.Where("posts.status = ?", models.PostStatusPublished)
}

func FilterPostNotDeleted(tx *gorm.DB) *gorm.DB {
	return tx.Where("posts.is_deleted = ?", false)
}

func FilterPostNotClosed(tx *gorm.DB) *gorm.DB {
	return tx.Where("posts.is_closed = ?", false)
}

// FilterPostNotReportedAndApproved drops posts whose moderated object has
// reached the approved status.
func FilterPostNotReportedAndApproved(tx *gorm.DB) *gorm.DB {
	approved := database.C.Table("moderated_objects").
		Select("post_id").
		Where("post_id IS NOT NULL AND status = ?", models.ModeratedObjectStatusApproved)
	return tx.Where("posts.id NOT IN (?)", approved)
}

func FilterPostNotReportedBy(tx *gorm.DB, userID uint) *gorm.DB {
	reported := database.C.Table("moderated_objects").
		Select("moderated_objects.post_id").
		Joins("JOIN moderation_reports ON moderation_reports.moderated_object_id = moderated_objects.id").
		Where("moderated_objects.post_id IS NOT NULL AND moderation_reports.reporter_id = ?", userID)
	return tx.Where("posts.id NOT IN (?)", reported)
}

func FilterPostNotCommunityBannedFor(tx *gorm.DB, userID uint) *gorm.DB {
	banned := database.C.Table("community_bans").
		Select("community_id").
		Where("user_id = ?", userID)
	return tx.Where("posts.community_id IS NULL OR posts.community_id NOT IN (?)", banned)
}

// FilterPostNotBlockedFor drops posts whose creator is in a block relation
// with the user, in either direction.
func FilterPostNotBlockedFor(tx *gorm.DB, userID uint) *gorm.DB {
	blocked := database.C.Table("blocks").
		Select("blocked_user_id").
		Where("blocker_id = ?", userID)
	blockers := database.C.Table("blocks").
		Select("blocker_id").
		Where("blocked_user_id = ?", userID)
	return tx.Where(
		"posts.creator_id NOT IN (?) AND posts.creator_id NOT IN (?)",
		blocked, blockers,
	)
}

// FilterPostNotBlockedForInCommunity is the community-feed variant of the
// block filter: creators who are staff of the community bypass blocks.
func FilterPostNotBlockedForInCommunity(tx *gorm.DB, userID uint, communityID uint) *gorm.DB {
	blocked := database.C.Table("blocks").
		Select("blocked_user_id").
		Where("blocker_id = ?", userID)
	blockers := database.C.Table("blocks").
		Select("blocker_id").
		Where("blocked_user_id = ?", userID)
	staff := database.C.Table("community_memberships").
		Select("user_id").
		Where("community_id = ? AND (is_administrator = ? OR is_moderator = ?)", communityID, true, true)
	creator := database.C.Table("communities").
		Select("creator_id").
		Where("id = ?", communityID)
	return tx.Where(
		"(posts.creator_id NOT IN (?) AND posts.creator_id NOT IN (?)) OR posts.creator_id IN (?) OR posts.creator_id IN (?)",
		blocked, blockers, staff, creator,
	)
}

// FilterPostPublic keeps public-community posts and world-circle posts.
func FilterPostPublic(tx *gorm.DB) *gorm.DB {
	publicCommunities := database.C.Table("communities").
		Select("id").
		Where("type = ?", models.CommunityTypePublic)
	worldPosts := database.C.Table("post_circles").
		Select("post_circles.post_id").
		Joins("JOIN circles ON circles.id = post_circles.circle_id").
		Where("circles.kind = ?", models.CircleKindWorld)
	return tx.Where(
		"posts.community_id IN (?) OR posts.id IN (?)",
		publicCommunities, worldPosts,
	)
}

// FilterPostVisibleCommunityFor keeps community posts whose community is
// public or has the user as a member.
func FilterPostVisibleCommunityFor(tx *gorm.DB, userID uint) *gorm.DB {
	publicCommunities := database.C.Table("communities").
		Select("id").
		Where("type = ?", models.CommunityTypePublic)
	memberCommunities := database.C.Table("community_memberships").
		Select("community_id").
		Where("user_id = ?", userID)
	return tx.Where(
		"posts.community_id IN (?) OR posts.community_id IN (?)",
		publicCommunities, memberCommunities,
	)
}

// FilterPostInCirclesConnectedTo keeps encircled posts the user can reach:
// world-circle posts, the user's own posts, and posts whose circle set
// contains a circle the post creator assigned to their connection with the
// user.
func FilterPostInCirclesConnectedTo(tx *gorm.DB, userID uint) *gorm.DB {
	reachableCircles := database.C.Table("connection_circles").
		Select("connection_circles.circle_id").
		Joins("JOIN connections ON connections.id = connection_circles.connection_id").
		Where("connections.target_user_id = ?", userID)
	circled := database.C.Table("post_circles").
		Select("post_circles.post_id").
		Joins("JOIN circles ON circles.id = post_circles.circle_id").
		Where("circles.kind = ?", models.CircleKindWorld).
		Or("circles.id IN (?)", reachableCircles)
	return tx.Where(
		"posts.community_id IS NULL AND (posts.creator_id = ? OR posts.id IN (?))",
		userID, circled,
	)
}
