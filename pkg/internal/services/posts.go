package services

import (
	"fmt"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/services/queries"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var post models.Post
	if err := tx.
		Preload("Creator").
		Preload("Community").
		Preload("Circles").
		Preload("Hashtags").
		Where("posts.id = ?", id).
		First(&post).Error; err != nil {
		return post, err
	}
	return post, nil
}

func ListPost(tx *gorm.DB, take int, maxID, minID uint) ([]models.Post, error) {
	if take <= 0 || take > 100 {
		take = 100
	}
	if maxID > 0 {
		tx = queries.FilterPostWithMaxID(tx, maxID)
	}
	if minID > 0 {
		tx = queries.FilterPostWithMinID(tx, minID)
	}

	var posts []models.Post
	if err := tx.
		Preload("Creator").
		Preload("Community").
		Preload("Hashtags").
		Limit(take).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost writes a draft post into the given circles or community. Hashtag
// and link extraction plus language assignment run before publication.
func CreatePost(user models.User, text *string, circleIDs []uint, community *models.Community, media datatypes.JSONMap) (models.Post, error) {
	var post models.Post

	if community != nil {
		if err := Checks.CheckCanPostToCommunity(user, *community); err != nil {
			return post, err
		}
	} else if err := Checks.CheckCanPostToCircles(user, circleIDs); err != nil {
		return post, err
	}

	post = models.Post{
		CreatorID:       user.ID,
		Text:            text,
		Media:           media,
		Status:          models.PostStatusDraft,
		CommentsEnabled: true,
	}
	if community != nil {
		post.CommunityID = &community.ID
	}

	tx := database.C.Begin()
	if err := tx.Create(&post).Error; err != nil {
		tx.Rollback()
		return post, err
	}
	if community == nil && len(circleIDs) > 0 {
		var circles []models.Circle
		if err := tx.Where("id IN ?", circleIDs).Find(&circles).Error; err != nil {
			tx.Rollback()
			return post, fmt.Errorf("unable to load circles: %v", err)
		}
		if err := tx.Model(&post).Association("Circles").Replace(circles); err != nil {
			tx.Rollback()
			return post, err
		}
	}
	return post, tx.Commit().Error
}

// PublishPost moves a draft through processing into the published status,
// running hashtag, link and language assignment on the way.
func PublishPost(user models.User, post models.Post) (models.Post, error) {
	if post.CreatorID != user.ID {
		return post, Checks.CheckCanUpdatePost(user, post)
	}
	if post.Status == models.PostStatusPublished {
		return post, nil
	}

	if err := database.C.Model(&post).Update("status", models.PostStatusProcessing).Error; err != nil {
		return post, err
	}
	if err := ProcessPostHashtags(&post); err != nil {
		return post, err
	}
	if err := ProcessPostLinks(&post); err != nil {
		return post, err
	}
	AssignPostLanguage(&post)

	err := database.C.Model(&post).Update("status", models.PostStatusPublished).Error
	post.Status = models.PostStatusPublished
	return post, err
}

func UpdatePost(user models.User, post models.Post, text *string) (models.Post, error) {
	if err := Checks.CheckCanUpdatePost(user, post); err != nil {
		return post, err
	}

	tx := database.C.Begin()
	if err := tx.Model(&post).Update("text", text).Error; err != nil {
		tx.Rollback()
		return post, err
	}
	post.Text = text
	if err := tx.Commit().Error; err != nil {
		return post, err
	}
	if err := ProcessPostHashtags(&post); err != nil {
		return post, err
	}
	return post, ProcessPostLinks(&post)
}

func ClosePost(user models.User, post models.Post) error {
	if err := Checks.CheckCanCloseOrOpenPost(user, post); err != nil {
		return err
	}
	return database.C.Model(&post).Update("is_closed", true).Error
}

func OpenPost(user models.User, post models.Post) error {
	if err := Checks.CheckCanCloseOrOpenPost(user, post); err != nil {
		return err
	}
	return database.C.Model(&post).Update("is_closed", false).Error
}

// DeletePost soft-deletes; when community staff remove someone else's post
// the audit entry commits in the same transaction as the delete.
func DeletePost(user models.User, post models.Post) error {
	if err := Checks.CheckCanDeletePost(user, post); err != nil {
		return err
	}

	tx := database.C.Begin()
	if err := tx.Model(&post).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return err
	}
	if post.CreatorID != user.ID && post.CommunityID != nil {
		var community models.Community
		if err := tx.First(&community, *post.CommunityID).Error; err != nil {
			tx.Rollback()
			return err
		}
		if err := NewCommunityLogEntry(tx, community, user, &post.CreatorID, models.CommunityLogActionRemovePost); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit().Error
}

func MutePost(user models.User, post models.Post) error {
	if err := Checks.CheckCanMutePost(user, post); err != nil {
		return err
	}
	return database.C.Create(&models.PostMute{PostID: post.ID, MuterID: user.ID}).Error
}

func UnmutePost(user models.User, post models.Post) error {
	if err := Checks.CheckCanUnmutePost(user, post); err != nil {
		return err
	}
	return database.C.
		Where("post_id = ? AND muter_id = ?", post.ID, user.ID).
		Delete(&models.PostMute{}).Error
}

// GetPreviewLink returns the first previewable link of the post.
func GetPreviewLink(user models.User, post models.Post) (models.PostLink, error) {
	var link models.PostLink
	if err := Checks.CheckCanGetPreviewLinkData(user, post); err != nil {
		return link, err
	}
	var links []models.PostLink
	if err := database.C.Where("post_id = ?", post.ID).Order("id ASC").Find(&links).Error; err != nil {
		return link, fmt.Errorf("unable to load post links: %v", err)
	}
	link, ok := lo.Find(links, func(item models.PostLink) bool { return item.HasPreview })
	if !ok && len(links) > 0 {
		link = links[0]
	}
	return link, nil
}
