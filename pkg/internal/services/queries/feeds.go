package queries

import (
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"gorm.io/gorm"
)

// HashtagFeed composes the filter chain for the public feed of one hashtag as
// seen by the given user. Clients page with max_id / min_id on descending id.
func HashtagFeed(tx *gorm.DB, hashtag string, userID uint) *gorm.DB {
	tx = tx.Model(&models.Post{})
	tx = FilterPostWithHashtag(tx, hashtag)
	tx = FilterPostPublic(tx)
	tx = FilterPostNotDeleted(tx)
	tx = FilterPostNotBlockedFor(tx, userID)
	tx = FilterPostPublished(tx)
	tx = FilterPostNotReportedAndApproved(tx)
	tx = FilterPostNotReportedBy(tx, userID)
	tx = FilterPostNotCommunityBannedFor(tx, userID)
	tx = FilterPostNotClosed(tx)
	return tx.Distinct("posts.*").Order("posts.id DESC")
}

// ProfileFeed composes the posts-for-user feed: target's posts as visible to
// the source user. Community posts are included only when asked for.
func ProfileFeed(tx *gorm.DB, targetID, sourceID uint, withCommunityPosts bool) *gorm.DB {
	tx = tx.Model(&models.Post{})
	tx = FilterPostForCreator(tx, targetID)
	tx = FilterPostNotClosed(tx)
	tx = FilterPostNotDeleted(tx)
	tx = FilterPostPublished(tx)

	if withCommunityPosts {
		circleReachable := FilterPostInCirclesConnectedTo(database.C.Model(&models.Post{}).Select("posts.id"), sourceID)
		communityReachable := FilterPostVisibleCommunityFor(database.C.Model(&models.Post{}).Select("posts.id").Where("posts.community_id IS NOT NULL"), sourceID)
		tx = tx.Where("posts.id IN (?) OR posts.id IN (?)", circleReachable, communityReachable)
	} else {
		tx = FilterPostInCirclesConnectedTo(tx, sourceID)
	}

	profileExcluded := database.C.Table("profile_post_community_exclusions").
		Select("community_id").
		Where("user_id = ?", targetID)
	tx = tx.Where("posts.community_id IS NULL OR posts.community_id NOT IN (?)", profileExcluded)

	tx = FilterPostNotReportedBy(tx, sourceID)
	tx = FilterPostNotReportedAndApproved(tx)
	tx = FilterPostNotBlockedFor(tx, sourceID)
	tx = FilterPostNotCommunityBannedFor(tx, sourceID)

	return tx.Distinct("posts.*").Order("posts.id DESC")
}

// VisiblePosts narrows a post query to everything the user is allowed to see:
// own posts, reachable encircled posts, and visible community posts (minus
// communities the user is banned from).
func VisiblePosts(tx *gorm.DB, userID uint) *gorm.DB {
	tx = tx.Model(&models.Post{})

	circleReachable := FilterPostInCirclesConnectedTo(
		database.C.Model(&models.Post{}).Select("posts.id"), userID)
	communityReachable := FilterPostVisibleCommunityFor(
		database.C.Model(&models.Post{}).Select("posts.id").Where("posts.community_id IS NOT NULL"), userID)

	tx = tx.Where(
		"posts.creator_id = ? OR posts.id IN (?) OR posts.id IN (?)",
		userID, circleReachable, communityReachable,
	)
	tx = FilterPostNotCommunityBannedFor(tx, userID)
	tx = FilterPostNotBlockedFor(tx, userID)
	tx = FilterPostNotDeleted(tx)

	// Creators still see their own drafts; everyone else only published posts.
	tx = tx.Where("posts.status = ? OR posts.creator_id = ?", models.PostStatusPublished, userID)

	return tx.Distinct("posts.*")
}
