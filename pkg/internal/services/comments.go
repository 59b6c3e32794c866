package services

import (
	"fmt"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"gorm.io/gorm"
)

func GetComment(tx *gorm.DB, id uint) (models.PostComment, error) {
	var comment models.PostComment
	if err := tx.
		Preload("Commenter").
		Preload("Post").
		Where("post_comments.id = ?", id).
		First(&comment).Error; err != nil {
		return comment, err
	}
	return comment, nil
}

func ListComments(post models.Post, take int) ([]models.PostComment, error) {
	if take <= 0 || take > 100 {
		take = 100
	}
	var comments []models.PostComment
	if err := database.C.
		Preload("Commenter").
		Where("post_id = ?", post.ID).
		Order("id ASC").
		Limit(take).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func CommentOnPost(user models.User, post models.Post, text *string) (models.PostComment, error) {
	var comment models.PostComment
	if err := Checks.CheckCanSeePost(user, post); err != nil {
		return comment, err
	}
	if err := Checks.CheckCommentsEnabledOnPost(user, post); err != nil {
		return comment, err
	}

	comment = models.PostComment{
		PostID:      post.ID,
		CommenterID: user.ID,
		Text:        text,
	}
	if err := database.C.Create(&comment).Error; err != nil {
		return comment, err
	}
	if err := ProcessCommentHashtags(&comment); err != nil {
		return comment, err
	}
	AssignCommentLanguage(&comment)
	return comment, nil
}

func ReplyToComment(user models.User, parent models.PostComment, post models.Post, text *string) (models.PostComment, error) {
	var reply models.PostComment
	if err := Checks.CheckCanReplyToComment(user, parent, post); err != nil {
		return reply, err
	}

	reply = models.PostComment{
		PostID:          post.ID,
		CommenterID:     user.ID,
		ParentCommentID: &parent.ID,
		Text:            text,
	}
	if err := database.C.Create(&reply).Error; err != nil {
		return reply, err
	}
	if err := ProcessCommentHashtags(&reply); err != nil {
		return reply, err
	}
	AssignCommentLanguage(&reply)
	return reply, nil
}

func EditComment(user models.User, commentID uint, post models.Post, text *string) (models.PostComment, error) {
	var comment models.PostComment
	if err := Checks.CheckCanEditComment(user, commentID, post); err != nil {
		return comment, err
	}
	if err := database.C.First(&comment, commentID).Error; err != nil {
		return comment, fmt.Errorf("unable to load comment: %v", err)
	}

	if err := database.C.Model(&comment).Update("text", text).Error; err != nil {
		return comment, err
	}
	comment.Text = text
	return comment, ProcessCommentHashtags(&comment)
}

// DeleteComment removes the comment; when community staff delete someone
// else's comment the audit entry commits in the same transaction, with the
// action telling a top-level comment apart from a reply.
func DeleteComment(user models.User, commentID uint, post models.Post) error {
	comment, err := Checks.CheckCanDeleteComment(user, commentID, post)
	if err != nil {
		return err
	}

	tx := database.C.Begin()
	if err := tx.Delete(&models.PostComment{}, comment.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if comment.CommenterID != user.ID && post.CommunityID != nil {
		var community models.Community
		if err := tx.First(&community, *post.CommunityID).Error; err != nil {
			tx.Rollback()
			return err
		}
		action := models.CommunityLogActionRemovePostComment
		if comment.IsReply() {
			action = models.CommunityLogActionRemovePostCommentReply
		}
		if err := NewCommunityLogEntry(tx, community, user, &comment.CommenterID, action); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit().Error
}

func MuteComment(user models.User, comment models.PostComment) error {
	if err := Checks.CheckCanMuteComment(user, comment); err != nil {
		return err
	}
	return database.C.Create(&models.PostCommentMute{PostCommentID: comment.ID, MuterID: user.ID}).Error
}

func UnmuteComment(user models.User, comment models.PostComment) error {
	if err := Checks.CheckCanUnmuteComment(user, comment); err != nil {
		return err
	}
	return database.C.
		Where("post_comment_id = ? AND muter_id = ?", comment.ID, user.ID).
		Delete(&models.PostCommentMute{}).Error
}
