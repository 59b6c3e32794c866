package checkers

import (
	"github.com/grovesocial/grove/pkg/internal/localize"
	"github.com/grovesocial/grove/pkg/internal/models"
)

// isModeratorOfObject resolves the authority over the wrapped content: staff
// of the content's community or a global moderator for community posts,
// global moderators only otherwise. Comments recurse to their post. Wrapped
// kinds other than posts and comments are rejected outright.
func (k *Checkers) isModeratorOfObject(user models.User, mo models.ModeratedObject) *Error {
	switch {
	case mo.PostCommentID != nil:
		var comment models.PostComment
		if err := k.db.First(&comment, *mo.PostCommentID).Error; err != nil {
			return newValidation(localize.MsgOnlyPostsAndComments)
		}
		parent := mo
		parent.PostCommentID = nil
		parent.PostID = &comment.PostID
		return k.isModeratorOfObject(user, parent)
	case mo.PostID != nil:
		var post models.Post
		if err := k.db.First(&post, *mo.PostID).Error; err != nil {
			return newValidation(localize.MsgOnlyPostsAndComments)
		}
		if user.IsGlobalModerator {
			return nil
		}
		if post.CommunityID != nil {
			var community models.Community
			if err := k.db.First(&community, *post.CommunityID).Error; err == nil && k.isStaffOf(user.ID, community) {
				return nil
			}
		}
		return newPermissionDenied(localize.MsgModeratedObjectUpdateDenied)
	default:
		return newValidation(localize.MsgOnlyPostsAndComments)
	}
}

func (k *Checkers) CheckCanUpdateModeratedObject(user models.User, mo models.ModeratedObject) error {
	if err := k.isModeratorOfObject(user, mo); err != nil {
		return err
	}
	if mo.Verified {
		return newValidation(localize.MsgModeratedObjectVerified)
	}
	if mo.Status != models.ModeratedObjectStatusPending && !user.IsGlobalModerator {
		return newValidation(localize.MsgModeratedObjectNotPendingEdit)
	}
	return nil
}

func (k *Checkers) CheckCanApproveModeratedObject(user models.User, mo models.ModeratedObject) error {
	if err := k.isModeratorOfObject(user, mo); err != nil {
		return err
	}
	if mo.Verified {
		return newValidation(localize.MsgModeratedObjectVerified)
	}
	return nil
}

func (k *Checkers) CheckCanRejectModeratedObject(user models.User, mo models.ModeratedObject) error {
	return k.CheckCanApproveModeratedObject(user, mo)
}

// CheckCanVerifyModeratedObject requires an approved or rejected object; a
// pending one cannot be verified.
func (k *Checkers) CheckCanVerifyModeratedObject(user models.User, mo models.ModeratedObject) error {
	if err := k.CheckIsGlobalModerator(user); err != nil {
		return err
	}
	if mo.Verified {
		return newValidation(localize.MsgModeratedObjectVerified)
	}
	if mo.Status == models.ModeratedObjectStatusPending {
		return newValidation(localize.MsgCannotVerifyPending)
	}
	return nil
}

func (k *Checkers) CheckCanUnverifyModeratedObject(user models.User, mo models.ModeratedObject) error {
	if err := k.CheckIsGlobalModerator(user); err != nil {
		return err
	}
	if !mo.Verified {
		return newValidation(localize.MsgNotVerified)
	}
	return nil
}

func (k *Checkers) CheckCanGetGlobalModeratedObjects(user models.User) error {
	if !user.IsGlobalModerator {
		return newPermissionDenied(localize.MsgGlobalModeratedListDenied)
	}
	return nil
}

func (k *Checkers) CheckCanGetCommunityModeratedObjects(user models.User, community models.Community) error {
	if !k.isStaffOf(user.ID, community) {
		return newPermissionDenied(localize.MsgCommunityModeratedListDenied)
	}
	return nil
}

func (k *Checkers) CheckCanGetModeratedObject(user models.User, mo models.ModeratedObject) error {
	if user.IsGlobalModerator {
		return nil
	}
	if mo.CommunityID != nil {
		var community models.Community
		if err := k.db.First(&community, *mo.CommunityID).Error; err == nil && k.isStaffOf(user.ID, community) {
			return nil
		}
	}
	return newPermissionDenied(localize.MsgModeratedObjectDenied)
}

func (k *Checkers) CheckCanReportModeratedObject(user models.User, mo models.ModeratedObject) error {
	if k.exists(&models.ModerationReport{}, "moderated_object_id = ? AND reporter_id = ?", mo.ID, user.ID) {
		return newValidation(localize.MsgAlreadyReportedObject)
	}
	return nil
}

// Reporting content. Reports are non-self and non-duplicate; posts and
// comments additionally require visibility.

func (k *Checkers) hasReported(user models.User, column string, id uint) bool {
	var count int64
	if err := k.db.Table("moderation_reports").
		Joins("JOIN moderated_objects ON moderated_objects.id = moderation_reports.moderated_object_id").
		Where("moderation_reports.reporter_id = ?", user.ID).
		Where(column+" = ?", id).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func (k *Checkers) CheckCanReportPost(user models.User, post models.Post) error {
	if err := k.CheckCanSeePost(user, post); err != nil {
		return err
	}
	if post.CreatorID == user.ID {
		return newValidation(localize.MsgCannotReportOwnPost)
	}
	if k.hasReported(user, "moderated_objects.post_id", post.ID) {
		return newValidation(localize.MsgPostAlreadyReported)
	}
	return nil
}

func (k *Checkers) CheckCanReportComment(user models.User, comment models.PostComment) error {
	if err := k.CheckCanSeeComment(user, comment); err != nil {
		return err
	}
	if comment.CommenterID == user.ID {
		return newValidation(localize.MsgCannotReportOwnComment)
	}
	if k.hasReported(user, "moderated_objects.post_comment_id", comment.ID) {
		return newValidation(localize.MsgCommentAlreadyReported)
	}
	return nil
}

func (k *Checkers) CheckCanReportUser(user, target models.User) error {
	if user.ID == target.ID {
		return newValidation(localize.MsgCannotReportSelf)
	}
	if k.hasReported(user, "moderated_objects.user_id", target.ID) {
		return newValidation(localize.MsgUserAlreadyReported)
	}
	return nil
}

func (k *Checkers) CheckCanReportCommunity(user models.User, community models.Community) error {
	if community.CreatorID == user.ID {
		return newValidation(localize.MsgCannotReportOwnCommunity)
	}
	if k.hasReported(user, "moderated_objects.reported_community_id", community.ID) {
		return newValidation(localize.MsgCommunityAlreadyReported)
	}
	return nil
}

func (k *Checkers) CheckCanReportHashtag(user models.User, hashtag models.Hashtag) error {
	if k.hasReported(user, "moderated_objects.hashtag_id", hashtag.ID) {
		return newValidation(localize.MsgHashtagAlreadyReported)
	}
	return nil
}
