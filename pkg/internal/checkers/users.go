package checkers

import (
	"errors"
	"strings"

	"github.com/grovesocial/grove/pkg/internal/localize"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// CheckPasswordMatches compares the given plaintext against the stored hash.
func (k *Checkers) CheckPasswordMatches(user models.User, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return newAuthenticationFailed(localize.MsgWrongPassword)
	}
	return nil
}

func (k *Checkers) mapTokenError(err error) *Error {
	switch {
	case errors.Is(err, security.ErrTokenExpired):
		return newValidation(localize.MsgTokenExpired)
	case errors.Is(err, security.ErrTokenMalformed):
		return newValidation(localize.MsgTokenMalformed)
	case errors.Is(err, security.ErrTokenMissingClaim):
		return newValidation(localize.MsgTokenMissingClaim)
	case errors.Is(err, security.ErrTokenWrongType):
		return newValidation(localize.MsgTokenWrongType)
	default:
		return newValidation(localize.MsgTokenInvalid)
	}
}

// CheckPasswordResetToken validates a password-reset token for the user and
// returns the claimed user id.
func (k *Checkers) CheckPasswordResetToken(user models.User, token string) (uint, error) {
	claims, err := k.tokens.Verify(token, security.TokenTypePasswordReset)
	if err != nil {
		return 0, k.mapTokenError(err)
	}
	if claims.UserID != user.ID {
		return 0, newValidation(localize.MsgTokenWrongUser)
	}
	return claims.UserID, nil
}

// CheckEmailChangeToken validates an email-change token for the user and
// returns the new email it carries.
func (k *Checkers) CheckEmailChangeToken(user models.User, token string) (string, error) {
	claims, err := k.tokens.Verify(token, security.TokenTypeChangeEmail)
	if err != nil {
		return "", k.mapTokenError(err)
	}
	if claims.UserID != user.ID {
		return "", newValidation(localize.MsgTokenWrongUser)
	}
	if claims.Email != user.Email {
		return "", newValidation(localize.MsgTokenWrongEmail)
	}
	if claims.NewEmail == "" {
		return "", newValidation(localize.MsgTokenMissingClaim)
	}
	return claims.NewEmail, nil
}

func (k *Checkers) CheckCanAcceptGuidelines(user models.User) error {
	if user.AreGuidelinesAccepted {
		return newValidation(localize.MsgGuidelinesAlreadyAccepted)
	}
	return nil
}

func (k *Checkers) CheckCanSetLanguage(languageID uint) error {
	if !k.exists(&models.Language{}, "id = ?", languageID) {
		return newValidation(localize.MsgLanguageNotSupported)
	}
	return nil
}

// Uniqueness checks treat "same as current value" as a no-op rename.

func (k *Checkers) CheckEmailNotTaken(user models.User, email string) error {
	email = strings.ToLower(email)
	if email == strings.ToLower(user.Email) {
		return nil
	}
	if k.exists(&models.User{}, "lower(email) = ?", email) {
		return newValidation(localize.MsgEmailTaken)
	}
	return nil
}

func (k *Checkers) CheckUsernameNotTaken(user models.User, username string) error {
	username = strings.ToLower(username)
	if username == strings.ToLower(user.Username) {
		return nil
	}
	if k.exists(&models.User{}, "lower(username) = ?", username) {
		return newValidation(localize.MsgUsernameTaken)
	}
	return nil
}

func (k *Checkers) CheckCommunityNameNotTaken(name string, existing *models.Community) error {
	name = strings.ToLower(name)
	if existing != nil && name == strings.ToLower(existing.Name) {
		return nil
	}
	if k.exists(&models.Community{}, "lower(name) = ?", name) {
		return newValidation(localize.MsgCommunityNameTaken)
	}
	return nil
}

func (k *Checkers) CheckCircleNameNotTaken(user models.User, name string, existing *models.Circle) error {
	if existing != nil && name == existing.Name {
		return nil
	}
	if k.exists(&models.Circle{}, "owner_id = ? AND name = ?", user.ID, name) {
		return newValidation(localize.MsgCircleNameTaken)
	}
	return nil
}

func (k *Checkers) CheckListNameNotTaken(user models.User, name string, existing *models.List) error {
	if existing != nil && name == existing.Name {
		return nil
	}
	if k.exists(&models.List{}, "owner_id = ? AND name = ?", user.ID, name) {
		return newValidation(localize.MsgListNameTaken)
	}
	return nil
}

// Social graph

func (k *Checkers) CheckCanFollowUser(user, target models.User, preApproved bool) error {
	if user.ID == target.ID {
		return newValidation(localize.MsgCannotFollowSelf)
	}
	if k.isFollowing(user.ID, target.ID) {
		return newValidation(localize.MsgAlreadyFollowing)
	}
	if k.hasBlockEitherWay(user.ID, target.ID) {
		return newPermissionDenied(localize.MsgAccountBlocked)
	}
	if k.countOf(&models.Follow{}, "user_id = ?", user.ID) >= int64(k.cfg.MaxFollows) {
		return newValidation(localize.MsgMaxFollowsReached)
	}
	if !preApproved && target.Visibility == models.UserVisibilityPrivate {
		return newValidation(localize.MsgUserPrivate)
	}
	return nil
}

func (k *Checkers) CheckCanCreateFollowRequest(user, target models.User) error {
	if err := k.CheckCanFollowUser(user, target, true); err != nil {
		return err
	}
	if target.Visibility != models.UserVisibilityPrivate {
		return newValidation(localize.MsgUserNotPrivate)
	}
	if k.exists(&models.FollowRequest{}, "creator_id = ? AND target_user_id = ?", user.ID, target.ID) {
		return newValidation(localize.MsgFollowRequestExists)
	}
	return nil
}

func (k *Checkers) CheckCanApproveFollowRequest(user, requester models.User) error {
	if !k.exists(&models.FollowRequest{}, "creator_id = ? AND target_user_id = ?", requester.ID, user.ID) {
		return newValidation(localize.MsgFollowRequestMissing)
	}
	return nil
}

func (k *Checkers) CheckCanDeleteFollowRequest(user, requester models.User) error {
	return k.CheckCanApproveFollowRequest(user, requester)
}

func (k *Checkers) CheckCanConnectWithUser(user, target models.User) error {
	if user.ID == target.ID {
		return newValidation(localize.MsgCannotConnectSelf)
	}
	if err := k.CheckTargetUserVisible(user, target); err != nil {
		return err
	}
	if k.hasBlockEitherWay(user.ID, target.ID) {
		return newPermissionDenied(localize.MsgAccountBlocked)
	}
	if k.isConnectedWith(user.ID, target.ID) {
		return newValidation(localize.MsgAlreadyConnected)
	}
	// Strict > is historical; the follow counterpart uses >=.
	if k.countOf(&models.Connection{}, "user_id = ?", user.ID) > int64(k.cfg.MaxConnections) {
		return newValidation(localize.MsgMaxConnectionsReached)
	}
	return nil
}

// CheckCanUpdateConnectionCircles requires each circle to be owned by the
// user and to not be the world circle.
func (k *Checkers) CheckCanUpdateConnectionCircles(user models.User, circleIDs []uint) error {
	for _, circleID := range circleIDs {
		var circle models.Circle
		if err := k.db.First(&circle, circleID).Error; err != nil {
			return newValidation(localize.MsgCircleDoesNotExist)
		}
		if circle.IsWorld() {
			return newValidation(localize.MsgWorldCircleImmutable)
		}
		if circle.OwnerID == nil || *circle.OwnerID != user.ID {
			return newValidation(localize.MsgCircleNotOwned)
		}
	}
	return nil
}

// CheckCanUpdateCircle also covers deletion. The world and connections
// circles are fixed rows and never change.
func (k *Checkers) CheckCanUpdateCircle(user models.User, circle models.Circle) error {
	if circle.IsWorld() || circle.IsConnections() {
		return newValidation(localize.MsgCircleImmutable)
	}
	if circle.OwnerID == nil || *circle.OwnerID != user.ID {
		return newValidation(localize.MsgCircleNotOwned)
	}
	return nil
}

func (k *Checkers) CheckCanUpdateList(user models.User, list models.List) error {
	if list.OwnerID != user.ID {
		return newValidation(localize.MsgListNotOwned)
	}
	return nil
}

func (k *Checkers) CheckCanBlockUser(user, target models.User) error {
	if user.ID == target.ID {
		return newValidation(localize.MsgCannotBlockSelf)
	}
	if k.hasBlockEitherWay(user.ID, target.ID) {
		return newValidation(localize.MsgAccountAlreadyBlocked)
	}
	return nil
}

func (k *Checkers) CheckCanUnblockUser(user, target models.User) error {
	if !k.exists(&models.Block{}, "blocker_id = ? AND blocked_user_id = ?", user.ID, target.ID) {
		return newValidation(localize.MsgAccountNotBlocked)
	}
	return nil
}

// Visibility

// CheckTargetUserVisible refuses when the target is private and the user is
// not an approved follower.
func (k *Checkers) CheckTargetUserVisible(user, target models.User) error {
	if target.Visibility != models.UserVisibilityPrivate || user.ID == target.ID {
		return nil
	}
	if k.isFollowing(user.ID, target.ID) {
		return nil
	}
	return newValidation(localize.MsgUserPrivateFollowHint)
}

// Devices and notification subscriptions

func (k *Checkers) CheckDeviceWithUUIDExists(user models.User, uuid string) error {
	if !k.exists(&models.Device{}, "owner_id = ? AND uuid = ?", user.ID, uuid) {
		return newNotFound(localize.MsgDeviceNotFound)
	}
	return nil
}

func (k *Checkers) CheckCanCreateDevice(user models.User, uuid string) error {
	if k.exists(&models.Device{}, "owner_id = ? AND uuid = ?", user.ID, uuid) {
		return newValidation(localize.MsgDeviceUUIDTaken)
	}
	return nil
}

func (k *Checkers) CheckNotificationOwned(user models.User, notificationID uint) error {
	if !k.exists(&models.Notification{}, "id = ? AND owner_id = ?", notificationID, user.ID) {
		return newNotFound(localize.MsgNotificationNotOwned)
	}
	return nil
}

func (k *Checkers) CheckCanEnableNewPostNotificationsForUser(user, target models.User) error {
	if user.ID == target.ID {
		return newValidation(localize.MsgCannotSubscribeSelf)
	}
	if k.hasBlockEitherWay(user.ID, target.ID) {
		return newPermissionDenied(localize.MsgAccountBlocked)
	}
	if k.exists(&models.UserNotificationSubscription{}, "subscriber_id = ? AND target_user_id = ?", user.ID, target.ID) {
		return newValidation(localize.MsgAlreadySubscribedUser)
	}
	return nil
}

func (k *Checkers) CheckCanDisableNewPostNotificationsForUser(user, target models.User) error {
	if user.ID == target.ID {
		return newValidation(localize.MsgCannotSubscribeSelf)
	}
	if !k.exists(&models.UserNotificationSubscription{}, "subscriber_id = ? AND target_user_id = ?", user.ID, target.ID) {
		return newValidation(localize.MsgNotSubscribedUser)
	}
	return nil
}

// Invites

func (k *Checkers) CheckCanCreateInvite(user models.User, nickname string) error {
	if user.InviteCount <= 0 {
		return newValidation(localize.MsgNoInvitesLeft)
	}
	if k.exists(&models.UserInvite{}, "creator_id = ? AND nickname = ?", user.ID, nickname) {
		return newValidation(localize.MsgInviteNicknameTaken)
	}
	return nil
}

func (k *Checkers) CheckCanSendInviteEmail(user models.User, inviteID uint, email string) error {
	var invite models.UserInvite
	if err := k.db.Where("id = ? AND creator_id = ?", inviteID, user.ID).First(&invite).Error; err != nil {
		return newValidation(localize.MsgInviteDoesNotExist)
	}
	if invite.Email != nil && strings.EqualFold(*invite.Email, email) {
		return newValidation(localize.MsgInviteEmailSame)
	}
	return nil
}

func (k *Checkers) CheckCanDeleteInvite(user models.User, inviteID uint) error {
	var invite models.UserInvite
	if err := k.db.Where("id = ? AND creator_id = ?", inviteID, user.ID).First(&invite).Error; err != nil {
		return newValidation(localize.MsgInviteDoesNotExist)
	}
	if invite.CreatedUserID != nil {
		return newValidation(localize.MsgInviteAlreadyUsed)
	}
	return nil
}

// CheckIsGlobalModerator gates global-only moderation operations.
func (k *Checkers) CheckIsGlobalModerator(user models.User) error {
	if !user.IsGlobalModerator {
		return newPermissionDenied(localize.MsgGlobalModeratorOnly)
	}
	return nil
}
