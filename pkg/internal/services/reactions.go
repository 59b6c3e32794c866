package services

import (
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
)

func ReactToPost(user models.User, post models.Post, emojiID uint) (models.PostReaction, error) {
	var reaction models.PostReaction
	if err := Checks.CheckCanReactToPost(user, post); err != nil {
		return reaction, err
	}
	if err := Checks.CheckCanReactWithEmoji(emojiID); err != nil {
		return reaction, err
	}

	reaction = models.PostReaction{
		PostID:    post.ID,
		ReactorID: user.ID,
		EmojiID:   emojiID,
	}
	return reaction, database.C.Create(&reaction).Error
}

func DeletePostReaction(user models.User, reaction models.PostReaction, post models.Post) error {
	if err := Checks.CheckCanDeletePostReaction(user, reaction, post); err != nil {
		return err
	}
	return database.C.Delete(&models.PostReaction{}, reaction.ID).Error
}

func ReactToComment(user models.User, comment models.PostComment, emojiID uint) (models.PostCommentReaction, error) {
	var reaction models.PostCommentReaction
	if err := Checks.CheckCanReactToComment(user, comment, emojiID); err != nil {
		return reaction, err
	}

	reaction = models.PostCommentReaction{
		PostCommentID: comment.ID,
		ReactorID:     user.ID,
		EmojiID:       emojiID,
	}
	return reaction, database.C.Create(&reaction).Error
}

func DeleteCommentReaction(user models.User, comment models.PostComment) error {
	return database.C.
		Where("post_comment_id = ? AND reactor_id = ?", comment.ID, user.ID).
		Delete(&models.PostCommentReaction{}).Error
}
