package checkers

import (
	"github.com/grovesocial/grove/pkg/internal/localize"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/services/queries"
)

func (k *Checkers) canSeePost(user models.User, post models.Post) bool {
	var count int64
	if err := queries.VisiblePosts(k.db, user.ID).
		Where("posts.id = ?", post.ID).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func (k *Checkers) CheckCanSeePost(user models.User, post models.Post) error {
	if !k.canSeePost(user, post) {
		return newValidation(localize.MsgPostPrivate)
	}
	return nil
}

func (k *Checkers) CheckCanSeeComment(user models.User, comment models.PostComment) error {
	var post models.Post
	if err := k.db.First(&post, comment.PostID).Error; err != nil {
		return newValidation(localize.MsgPostPrivate)
	}
	if err := k.CheckCanSeePost(user, post); err != nil {
		return err
	}
	if k.hasBlockEitherWay(user.ID, comment.CommenterID) {
		return newValidation(localize.MsgCommentPrivate)
	}
	return nil
}

// CheckCanPostToCircles requires every circle to be owned by the user, the
// world circle being the one exception.
func (k *Checkers) CheckCanPostToCircles(user models.User, circleIDs []uint) error {
	for _, circleID := range circleIDs {
		var circle models.Circle
		if err := k.db.First(&circle, circleID).Error; err != nil {
			return newValidation(localize.MsgCircleDoesNotExist)
		}
		if circle.IsWorld() {
			continue
		}
		if circle.OwnerID == nil || *circle.OwnerID != user.ID {
			return newValidation(localize.MsgCannotPostToCircle)
		}
	}
	return nil
}

func (k *Checkers) CheckCanPostToCommunity(user models.User, community models.Community) error {
	if !k.isMemberOf(user.ID, community.ID) {
		return newValidation(localize.MsgNotCommunityMember)
	}
	return nil
}

func (k *Checkers) CheckCanUpdatePost(user models.User, post models.Post) error {
	if post.CreatorID != user.ID {
		return newValidation(localize.MsgPostNotOwned)
	}
	if post.IsClosed && post.CommunityID != nil {
		var community models.Community
		if err := k.db.First(&community, *post.CommunityID).Error; err != nil {
			return newValidation(localize.MsgPostNotOwned)
		}
		if !k.isStaffOf(user.ID, community) {
			return newPermissionDenied(localize.MsgClosedPostStaffOnly)
		}
	}
	return nil
}

func (k *Checkers) CheckCanCloseOrOpenPost(user models.User, post models.Post) error {
	if post.CommunityID == nil {
		return newValidation(localize.MsgOnlyCommunityPostsClose)
	}
	var community models.Community
	if err := k.db.First(&community, *post.CommunityID).Error; err != nil {
		return newValidation(localize.MsgOnlyCommunityPostsClose)
	}
	if !k.isStaffOf(user.ID, community) {
		return newPermissionDenied(localize.MsgClosePostStaffOnly)
	}
	return nil
}

// CheckCanDeletePost allows the owner, or community staff for community
// posts. Staff deletions of non-owned posts are audited by the delete service.
func (k *Checkers) CheckCanDeletePost(user models.User, post models.Post) error {
	if post.CreatorID == user.ID {
		return nil
	}
	if post.CommunityID != nil {
		var community models.Community
		if err := k.db.First(&community, *post.CommunityID).Error; err != nil {
			return newValidation(localize.MsgCannotDeletePost)
		}
		if k.isStaffOf(user.ID, community) {
			return nil
		}
	}
	return newValidation(localize.MsgCannotDeletePost)
}

func (k *Checkers) CheckCanEnableDisableCommentsForPostsInCommunity(user models.User, community models.Community) error {
	if !k.isAdministratorOf(user.ID, community) && !k.isModeratorOf(user.ID, community) {
		return newPermissionDenied(localize.MsgCommentsToggleStaffOnly)
	}
	return nil
}

func (k *Checkers) CheckCommentsEnabledOnPost(user models.User, post models.Post) error {
	if post.CommunityID == nil {
		return nil
	}
	var community models.Community
	if err := k.db.First(&community, *post.CommunityID).Error; err != nil {
		return newValidation(localize.MsgCommentsDisabled)
	}
	if k.isStaffOf(user.ID, community) {
		return nil
	}
	if !post.CommentsEnabled {
		return newValidation(localize.MsgCommentsDisabled)
	}
	return nil
}

func (k *Checkers) CheckCanReactToPost(user models.User, post models.Post) error {
	return k.CheckCanSeePost(user, post)
}

// CheckCanReactWithEmoji requires the emoji to come from a reaction group.
func (k *Checkers) CheckCanReactWithEmoji(emojiID uint) error {
	var emoji models.Emoji
	if err := k.db.Preload("Group").First(&emoji, emojiID).Error; err != nil {
		return newValidation(localize.MsgEmojiNotReaction)
	}
	if !emoji.Group.IsReactionGroup {
		return newValidation(localize.MsgEmojiNotReaction)
	}
	return nil
}

func (k *Checkers) CheckCanReactToComment(user models.User, comment models.PostComment, emojiID uint) error {
	if err := k.CheckCanReactWithEmoji(emojiID); err != nil {
		return err
	}
	if err := k.CheckCanSeeComment(user, comment); err != nil {
		return err
	}

	var post models.Post
	if err := k.db.First(&post, comment.PostID).Error; err != nil {
		return newValidation(localize.MsgPostPrivate)
	}
	if post.IsClosed && post.CommunityID != nil {
		var community models.Community
		if err := k.db.First(&community, *post.CommunityID).Error; err != nil {
			return newPermissionDenied(localize.MsgClosedPostCommentReact)
		}
		if !k.isStaffOf(user.ID, community) {
			return newPermissionDenied(localize.MsgClosedPostCommentReact)
		}
	}
	return nil
}

// CheckCanDeletePostReaction lets the post owner prune any reaction on their
// post; everyone else may only delete their own reactions.
func (k *Checkers) CheckCanDeletePostReaction(user models.User, reaction models.PostReaction, post models.Post) error {
	if post.CreatorID == user.ID {
		if reaction.PostID != post.ID {
			return newValidation(localize.MsgReactionNotInPost)
		}
		return nil
	}
	if reaction.ReactorID != user.ID {
		return newValidation(localize.MsgReactionNotOwned)
	}
	return nil
}

func (k *Checkers) commentInPost(commentID uint, post models.Post) (models.PostComment, *Error) {
	var comment models.PostComment
	if err := k.db.Where("id = ? AND post_id = ?", commentID, post.ID).First(&comment).Error; err != nil {
		return comment, newValidation(localize.MsgCommentNotInPost)
	}
	return comment, nil
}

func (k *Checkers) CheckCanEditComment(user models.User, commentID uint, post models.Post) error {
	if err := k.CheckCanSeePost(user, post); err != nil {
		return err
	}
	if _, cerr := k.commentInPost(commentID, post); cerr != nil {
		return cerr
	}
	if post.IsClosed && post.CommunityID != nil {
		var community models.Community
		if err := k.db.First(&community, *post.CommunityID).Error; err != nil {
			return newPermissionDenied(localize.MsgClosedPostCommentEdit)
		}
		if !k.isStaffOf(user.ID, community) {
			return newPermissionDenied(localize.MsgClosedPostCommentEdit)
		}
	}
	return nil
}

// CheckCanDeleteComment authorizes the delete and returns the comment looked
// up along the way, so the delete service can emit its audit entry without a
// second fetch. Community staff may delete any comment; owners their own.
func (k *Checkers) CheckCanDeleteComment(user models.User, commentID uint, post models.Post) (models.PostComment, error) {
	var comment models.PostComment
	if err := k.CheckCanSeePost(user, post); err != nil {
		return comment, err
	}
	comment, cerr := k.commentInPost(commentID, post)
	if cerr != nil {
		return comment, cerr
	}
	if comment.CommenterID == user.ID {
		return comment, nil
	}
	if post.CommunityID != nil {
		var community models.Community
		if err := k.db.First(&community, *post.CommunityID).Error; err != nil {
			return comment, newValidation(localize.MsgCommentNotOwned)
		}
		if k.isStaffOf(user.ID, community) {
			return comment, nil
		}
	}
	return comment, newValidation(localize.MsgCommentNotOwned)
}

func (k *Checkers) CheckCanReplyToComment(user models.User, comment models.PostComment, post models.Post) error {
	if comment.PostID != post.ID {
		return newValidation(localize.MsgCommentNotInPost)
	}
	if err := k.CheckCanSeeComment(user, comment); err != nil {
		return err
	}
	if err := k.CheckCommentsEnabledOnPost(user, post); err != nil {
		return err
	}
	if comment.IsReply() {
		return newValidation(localize.MsgCannotReplyToReply)
	}
	return nil
}

// Translation requires public (non-encircled) content with text and an
// assigned language, and a translation language on the requesting user.

func (k *Checkers) CheckCanTranslatePost(user models.User, post models.Post) error {
	if post.IsEncircled() {
		return newValidation(localize.MsgTranslatePrivatePost)
	}
	if post.Text == nil || *post.Text == "" {
		return newValidation(localize.MsgTranslateNoText)
	}
	if post.LanguageID == nil {
		return newValidation(localize.MsgTranslateNoLanguage)
	}
	if user.TranslationLanguageID == nil {
		return newValidation(localize.MsgTranslateNoUserLanguage)
	}
	return nil
}

func (k *Checkers) CheckCanTranslateComment(user models.User, comment models.PostComment) error {
	var post models.Post
	if err := k.db.First(&post, comment.PostID).Error; err != nil {
		return newValidation(localize.MsgPostPrivate)
	}
	if post.IsEncircled() {
		return newValidation(localize.MsgTranslatePrivatePost)
	}
	if comment.Text == nil || *comment.Text == "" {
		return newValidation(localize.MsgTranslateNoText)
	}
	if comment.LanguageID == nil {
		return newValidation(localize.MsgTranslateNoLanguage)
	}
	if user.TranslationLanguageID == nil {
		return newValidation(localize.MsgTranslateNoUserLanguage)
	}
	return nil
}

func (k *Checkers) CheckCanGetPreviewLinkData(user models.User, post models.Post) error {
	if err := k.CheckCanSeePost(user, post); err != nil {
		return err
	}
	if !k.exists(&models.PostLink{}, "post_id = ?", post.ID) {
		return newValidation(localize.MsgPostHasNoLinks)
	}
	return nil
}

// Mutes: toggling must change state, and the content must be visible.

func (k *Checkers) CheckCanMutePost(user models.User, post models.Post) error {
	if err := k.CheckCanSeePost(user, post); err != nil {
		return err
	}
	if k.exists(&models.PostMute{}, "post_id = ? AND muter_id = ?", post.ID, user.ID) {
		return newValidation(localize.MsgPostAlreadyMuted)
	}
	return nil
}

func (k *Checkers) CheckCanUnmutePost(user models.User, post models.Post) error {
	if err := k.CheckCanSeePost(user, post); err != nil {
		return err
	}
	if !k.exists(&models.PostMute{}, "post_id = ? AND muter_id = ?", post.ID, user.ID) {
		return newValidation(localize.MsgPostNotMuted)
	}
	return nil
}

func (k *Checkers) CheckCanMuteComment(user models.User, comment models.PostComment) error {
	if err := k.CheckCanSeeComment(user, comment); err != nil {
		return err
	}
	if k.exists(&models.PostCommentMute{}, "post_comment_id = ? AND muter_id = ?", comment.ID, user.ID) {
		return newValidation(localize.MsgCommentAlreadyMuted)
	}
	return nil
}

func (k *Checkers) CheckCanUnmuteComment(user models.User, comment models.PostComment) error {
	if err := k.CheckCanSeeComment(user, comment); err != nil {
		return err
	}
	if !k.exists(&models.PostCommentMute{}, "post_comment_id = ? AND muter_id = ?", comment.ID, user.ID) {
		return newValidation(localize.MsgCommentNotMuted)
	}
	return nil
}
