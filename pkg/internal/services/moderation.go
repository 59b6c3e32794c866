package services

import (
	"fmt"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"gorm.io/gorm"
)

func GetModeratedObject(tx *gorm.DB, id uint) (models.ModeratedObject, error) {
	var mo models.ModeratedObject
	if err := tx.
		Preload("Post").
		// Taken-down comments are soft deleted and must still resolve here,
		// otherwise unverify could not restore them.
		Preload("PostComment", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		Preload("Community").
		Preload("Category").
		Preload("Reports").
		Where("moderated_objects.id = ?", id).
		First(&mo).Error; err != nil {
		return mo, err
	}
	return mo, nil
}

func ListGlobalModeratedObjects(user models.User, take int) ([]models.ModeratedObject, error) {
	if err := Checks.CheckCanGetGlobalModeratedObjects(user); err != nil {
		return nil, err
	}
	if take <= 0 || take > 100 {
		take = 100
	}
	var objects []models.ModeratedObject
	if err := database.C.
		Preload("Category").
		Order("id DESC").
		Limit(take).
		Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}

func ListCommunityModeratedObjects(user models.User, community models.Community, take int) ([]models.ModeratedObject, error) {
	if err := Checks.CheckCanGetCommunityModeratedObjects(user, community); err != nil {
		return nil, err
	}
	if take <= 0 || take > 100 {
		take = 100
	}
	var objects []models.ModeratedObject
	if err := database.C.
		Preload("Category").
		Where("community_id = ?", community.ID).
		Order("id DESC").
		Limit(take).
		Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}

// getOrCreateModeratedObject looks up the moderated object wrapping the given
// content column, creating a pending one if no report has come in before.
func getOrCreateModeratedObject(tx *gorm.DB, column string, contentID uint, communityID *uint, categoryID uint, description *string) (models.ModeratedObject, error) {
	var mo models.ModeratedObject
	err := tx.Where(fmt.Sprintf("%s = ?", column), contentID).First(&mo).Error
	if err == nil {
		return mo, nil
	}
	if err != gorm.ErrRecordNotFound {
		return mo, err
	}

	mo = models.ModeratedObject{
		CommunityID: communityID,
		CategoryID:  categoryID,
		Description: description,
		Status:      models.ModeratedObjectStatusPending,
	}
	switch column {
	case "post_id":
		mo.PostID = &contentID
	case "post_comment_id":
		mo.PostCommentID = &contentID
	case "user_id":
		mo.UserID = &contentID
	case "reported_community_id":
		mo.ReportedCommunityID = &contentID
	case "hashtag_id":
		mo.HashtagID = &contentID
	}
	return mo, tx.Create(&mo).Error
}

func fileReport(column string, contentID uint, communityID *uint, reporter models.User, categoryID uint, description *string) error {
	tx := database.C.Begin()
	mo, err := getOrCreateModeratedObject(tx, column, contentID, communityID, categoryID, description)
	if err != nil {
		tx.Rollback()
		return err
	}
	report := models.ModerationReport{
		ModeratedObjectID: mo.ID,
		ReporterID:        reporter.ID,
		CategoryID:        categoryID,
		Description:       description,
	}
	if err := tx.Create(&report).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func ReportPost(user models.User, post models.Post, categoryID uint, description *string) error {
	if err := Checks.CheckCanReportPost(user, post); err != nil {
		return err
	}
	return fileReport("post_id", post.ID, post.CommunityID, user, categoryID, description)
}

func ReportComment(user models.User, comment models.PostComment, categoryID uint, description *string) error {
	if err := Checks.CheckCanReportComment(user, comment); err != nil {
		return err
	}
	var post models.Post
	if err := database.C.First(&post, comment.PostID).Error; err != nil {
		return fmt.Errorf("unable to load commented post: %v", err)
	}
	return fileReport("post_comment_id", comment.ID, post.CommunityID, user, categoryID, description)
}

func ReportUser(user, target models.User, categoryID uint, description *string) error {
	if err := Checks.CheckCanReportUser(user, target); err != nil {
		return err
	}
	return fileReport("user_id", target.ID, nil, user, categoryID, description)
}

func ReportCommunity(user models.User, community models.Community, categoryID uint, description *string) error {
	if err := Checks.CheckCanReportCommunity(user, community); err != nil {
		return err
	}
	return fileReport("reported_community_id", community.ID, nil, user, categoryID, description)
}

func ReportHashtag(user models.User, hashtag models.Hashtag, categoryID uint, description *string) error {
	if err := Checks.CheckCanReportHashtag(user, hashtag); err != nil {
		return err
	}
	return fileReport("hashtag_id", hashtag.ID, nil, user, categoryID, description)
}

// ReportModeratedObject joins an already-opened case directly instead of going
// through the wrapped content.
func ReportModeratedObject(user models.User, mo models.ModeratedObject, categoryID uint, description *string) error {
	if err := Checks.CheckCanReportModeratedObject(user, mo); err != nil {
		return err
	}
	report := models.ModerationReport{
		ModeratedObjectID: mo.ID,
		ReporterID:        user.ID,
		CategoryID:        categoryID,
		Description:       description,
	}
	return database.C.Create(&report).Error
}

func UpdateModeratedObject(user models.User, mo models.ModeratedObject, categoryID *uint, description *string) (models.ModeratedObject, error) {
	if err := Checks.CheckCanUpdateModeratedObject(user, mo); err != nil {
		return mo, err
	}

	updates := map[string]any{}
	if categoryID != nil {
		updates["category_id"] = *categoryID
		mo.CategoryID = *categoryID
	}
	if description != nil {
		updates["description"] = *description
		mo.Description = description
	}
	if len(updates) == 0 {
		return mo, nil
	}
	return mo, database.C.Model(&mo).Updates(updates).Error
}

func ApproveModeratedObject(user models.User, mo models.ModeratedObject) error {
	if err := Checks.CheckCanApproveModeratedObject(user, mo); err != nil {
		return err
	}
	return database.C.Model(&mo).Update("status", models.ModeratedObjectStatusApproved).Error
}

func RejectModeratedObject(user models.User, mo models.ModeratedObject) error {
	if err := Checks.CheckCanRejectModeratedObject(user, mo); err != nil {
		return err
	}
	return database.C.Model(&mo).Update("status", models.ModeratedObjectStatusRejected).Error
}

// VerifyModeratedObject seals the verdict. Verifying an approved object takes
// the wrapped content down in the same transaction.
func VerifyModeratedObject(user models.User, mo models.ModeratedObject) error {
	if err := Checks.CheckCanVerifyModeratedObject(user, mo); err != nil {
		return err
	}

	tx := database.C.Begin()
	if err := tx.Model(&mo).Update("verified", true).Error; err != nil {
		tx.Rollback()
		return err
	}
	if mo.Status == models.ModeratedObjectStatusApproved {
		content := mo.Content()
		switch {
		case content.Post != nil:
			if err := tx.Model(content.Post).Update("is_deleted", true).Error; err != nil {
				tx.Rollback()
				return err
			}
		case content.PostComment != nil:
			if err := tx.Delete(&models.PostComment{}, content.PostComment.ID).Error; err != nil {
				tx.Rollback()
				return err
			}
		}
	}
	return tx.Commit().Error
}

// UnverifyModeratedObject reopens the verdict and restores content taken down
// by an approved verification.
func UnverifyModeratedObject(user models.User, mo models.ModeratedObject) error {
	if err := Checks.CheckCanUnverifyModeratedObject(user, mo); err != nil {
		return err
	}

	tx := database.C.Begin()
	if err := tx.Model(&mo).Update("verified", false).Error; err != nil {
		tx.Rollback()
		return err
	}
	if mo.Status == models.ModeratedObjectStatusApproved {
		content := mo.Content()
		switch {
		case content.Post != nil:
			if err := tx.Model(content.Post).Update("is_deleted", false).Error; err != nil {
				tx.Rollback()
				return err
			}
		case content.PostComment != nil:
			if err := tx.Unscoped().Model(&models.PostComment{}).
				Where("id = ?", content.PostComment.ID).
				Update("deleted_at", nil).Error; err != nil {
				tx.Rollback()
				return err
			}
		}
	}
	return tx.Commit().Error
}
