package checkers

import (
	"github.com/grovesocial/grove/pkg/internal/localize"
	"github.com/grovesocial/grove/pkg/internal/models"
)

func (k *Checkers) CheckCanCreateCommunity(name string) error {
	return k.CheckCommunityNameNotTaken(name, nil)
}

// CheckCanUpdateCommunity requires administrator authority. Renames go
// through the uniqueness check; a private community can never become public.
func (k *Checkers) CheckCanUpdateCommunity(user models.User, community models.Community, newName, newType *string) error {
	if !k.isAdministratorOf(user.ID, community) {
		return newPermissionDenied(localize.MsgCommunityUpdateAdminOnly)
	}
	if newName != nil {
		if err := k.CheckCommunityNameNotTaken(*newName, &community); err != nil {
			return err
		}
	}
	if newType != nil && community.Type == models.CommunityTypePrivate && *newType == models.CommunityTypePublic {
		return newValidation(localize.MsgPrivateCommunityStaysSo)
	}
	return nil
}

func (k *Checkers) CheckCanDeleteCommunity(user models.User, community models.Community) error {
	if community.CreatorID != user.ID {
		return newPermissionDenied(localize.MsgCommunityDeleteCreatorOnly)
	}
	return nil
}

func (k *Checkers) CheckCanJoinCommunity(user models.User, community models.Community) error {
	if k.isBannedFrom(user.ID, community.ID) {
		return newPermissionDenied(localize.MsgCommunityBanned)
	}
	if k.isMemberOf(user.ID, community.ID) {
		return newValidation(localize.MsgAlreadyCommunityMember)
	}
	if community.Type == models.CommunityTypePrivate {
		if !k.exists(&models.CommunityInvite{}, "community_id = ? AND invited_user_id = ?", community.ID, user.ID) {
			return newValidation(localize.MsgNotInvitedToCommunity)
		}
	}
	return nil
}

func (k *Checkers) CheckCanLeaveCommunity(user models.User, community models.Community) error {
	if !k.isMemberOf(user.ID, community.ID) {
		return newValidation(localize.MsgNotCommunityMember)
	}
	if community.CreatorID == user.ID {
		return newValidation(localize.MsgCreatorCannotLeave)
	}
	return nil
}

func (k *Checkers) CheckCanInviteUserToCommunity(user, target models.User, community models.Community) error {
	if !k.isMemberOf(user.ID, community.ID) {
		return newValidation(localize.MsgNotCommunityMember)
	}
	if k.exists(&models.CommunityInvite{}, "community_id = ? AND creator_id = ? AND invited_user_id = ?", community.ID, user.ID, target.ID) {
		return newValidation(localize.MsgAlreadyInvitedUser)
	}
	if k.isMemberOf(target.ID, community.ID) {
		return newValidation(localize.MsgInvitedUserAlreadyMember)
	}
	if !community.InvitesEnabled {
		if !k.isAdministratorOf(user.ID, community) && !k.isModeratorOf(user.ID, community) {
			return newPermissionDenied(localize.MsgInvitesDisabled)
		}
	}
	return nil
}

func (k *Checkers) CheckCanUninviteUserFromCommunity(user, target models.User, community models.Community) error {
	if !k.exists(&models.CommunityInvite{}, "community_id = ? AND creator_id = ? AND invited_user_id = ?", community.ID, user.ID, target.ID) {
		return newValidation(localize.MsgCommunityInviteMissing)
	}
	return nil
}

func (k *Checkers) CheckCanBanUserFromCommunity(user, target models.User, community models.Community) error {
	if !k.isAdministratorOf(user.ID, community) && !k.isModeratorOf(user.ID, community) {
		return newPermissionDenied(localize.MsgBanStaffOnly)
	}
	if k.isBannedFrom(target.ID, community.ID) {
		return newValidation(localize.MsgUserAlreadyBanned)
	}
	if k.isStaffOf(target.ID, community) {
		return newValidation(localize.MsgCannotBanStaff)
	}
	return nil
}

func (k *Checkers) CheckCanUnbanUserFromCommunity(user, target models.User, community models.Community) error {
	if !k.isAdministratorOf(user.ID, community) && !k.isModeratorOf(user.ID, community) {
		return newPermissionDenied(localize.MsgBanStaffOnly)
	}
	if !k.isBannedFrom(target.ID, community.ID) {
		return newValidation(localize.MsgUserNotBanned)
	}
	return nil
}

// Administrator management is reserved to the community creator.

func (k *Checkers) CheckCanAddCommunityAdministrator(user, target models.User, community models.Community) error {
	if community.CreatorID != user.ID {
		return newPermissionDenied(localize.MsgAdminManageCreatorOnly)
	}
	membership, ok := k.membershipOf(target.ID, community.ID)
	if !ok {
		return newValidation(localize.MsgTargetNotCommunityMember)
	}
	if membership.IsAdministrator {
		return newValidation(localize.MsgAlreadyAdministrator)
	}
	return nil
}

func (k *Checkers) CheckCanRemoveCommunityAdministrator(user, target models.User, community models.Community) error {
	if community.CreatorID != user.ID {
		return newPermissionDenied(localize.MsgAdminManageCreatorOnly)
	}
	membership, ok := k.membershipOf(target.ID, community.ID)
	if !ok || !membership.IsAdministrator {
		return newValidation(localize.MsgNotAdministrator)
	}
	return nil
}

func (k *Checkers) CheckCanAddCommunityModerator(user, target models.User, community models.Community) error {
	if !k.isAdministratorOf(user.ID, community) {
		return newPermissionDenied(localize.MsgModeratorManageAdminOnly)
	}
	membership, ok := k.membershipOf(target.ID, community.ID)
	if !ok {
		return newValidation(localize.MsgTargetNotCommunityMember)
	}
	if membership.IsAdministrator {
		return newValidation(localize.MsgAdministratorAsModerator)
	}
	if membership.IsModerator {
		return newValidation(localize.MsgAlreadyModerator)
	}
	return nil
}

func (k *Checkers) CheckCanRemoveCommunityModerator(user, target models.User, community models.Community) error {
	if !k.isAdministratorOf(user.ID, community) {
		return newPermissionDenied(localize.MsgModeratorManageAdminOnly)
	}
	membership, ok := k.membershipOf(target.ID, community.ID)
	if !ok || !membership.IsModerator {
		return newValidation(localize.MsgNotModerator)
	}
	return nil
}

// Listing permissions

func (k *Checkers) CheckCanGetCommunity(user models.User, community models.Community) error {
	if k.isBannedFrom(user.ID, community.ID) {
		return newPermissionDenied(localize.MsgCommunityBanned)
	}
	return nil
}

func (k *Checkers) checkPrivateCommunityListing(user models.User, community models.Community) error {
	if err := k.CheckCanGetCommunity(user, community); err != nil {
		return err
	}
	if community.Type == models.CommunityTypePrivate && !k.isMemberOf(user.ID, community.ID) {
		return newPermissionDenied(localize.MsgMembersOnly)
	}
	return nil
}

func (k *Checkers) CheckCanGetCommunityMembers(user models.User, community models.Community) error {
	return k.checkPrivateCommunityListing(user, community)
}

func (k *Checkers) CheckCanGetCommunityPosts(user models.User, community models.Community) error {
	return k.checkPrivateCommunityListing(user, community)
}

func (k *Checkers) CheckCanGetCommunityAdministrators(user models.User, community models.Community) error {
	return k.CheckCanGetCommunity(user, community)
}

func (k *Checkers) CheckCanGetCommunityModerators(user models.User, community models.Community) error {
	return k.CheckCanGetCommunity(user, community)
}

func (k *Checkers) CheckCanGetCommunityBannedUsers(user models.User, community models.Community) error {
	if !k.isAdministratorOf(user.ID, community) && !k.isModeratorOf(user.ID, community) {
		return newPermissionDenied(localize.MsgBanStaffOnly)
	}
	return nil
}

func (k *Checkers) CheckCanGetCommunityClosedPosts(user models.User, community models.Community) error {
	if !k.isStaffOf(user.ID, community) {
		return newPermissionDenied(localize.MsgClosedPostsStaffOnly)
	}
	return nil
}

// Favorites and exclusions

func (k *Checkers) CheckCanFavoriteCommunity(user models.User, community models.Community) error {
	if !k.isMemberOf(user.ID, community.ID) {
		return newValidation(localize.MsgFavoriteRequiresMembership)
	}
	if k.exists(&models.FavoriteCommunity{}, "user_id = ? AND community_id = ?", user.ID, community.ID) {
		return newValidation(localize.MsgCommunityAlreadyFavorite)
	}
	return nil
}

func (k *Checkers) CheckCanUnfavoriteCommunity(user models.User, community models.Community) error {
	if !k.exists(&models.FavoriteCommunity{}, "user_id = ? AND community_id = ?", user.ID, community.ID) {
		return newValidation(localize.MsgCommunityNotFavorite)
	}
	return nil
}

// CheckCanExcludeCommunityFromTopPosts keeps its historical check order: the
// duplicate-exclusion check runs before the private-community rejection.
func (k *Checkers) CheckCanExcludeCommunityFromTopPosts(user models.User, community models.Community) error {
	if k.exists(&models.TopPostCommunityExclusion{}, "user_id = ? AND community_id = ?", user.ID, community.ID) {
		return newValidation(localize.MsgTopPostsAlreadyExcluded)
	}
	if community.Type == models.CommunityTypePrivate {
		return newValidation(localize.MsgPrivateCommunityTopPosts)
	}
	return nil
}

func (k *Checkers) CheckCanRemoveTopPostsCommunityExclusion(user models.User, community models.Community) error {
	if !k.exists(&models.TopPostCommunityExclusion{}, "user_id = ? AND community_id = ?", user.ID, community.ID) {
		return newValidation(localize.MsgTopPostsNotExcluded)
	}
	return nil
}

func (k *Checkers) CheckCanExcludeCommunityFromProfilePosts(user models.User, community models.Community) error {
	if !k.isMemberOf(user.ID, community.ID) {
		return newValidation(localize.MsgNotCommunityMember)
	}
	if k.exists(&models.ProfilePostCommunityExclusion{}, "user_id = ? AND community_id = ?", user.ID, community.ID) {
		return newValidation(localize.MsgProfilePostsAlreadyExcluded)
	}
	return nil
}

func (k *Checkers) CheckCanRemoveProfilePostsCommunityExclusion(user models.User, community models.Community) error {
	if !k.exists(&models.ProfilePostCommunityExclusion{}, "user_id = ? AND community_id = ?", user.ID, community.ID) {
		return newValidation(localize.MsgProfilePostsNotExcluded)
	}
	return nil
}

// New-post notification subscriptions on a community

func (k *Checkers) CheckCanEnableNewPostNotificationsForCommunity(user models.User, community models.Community) error {
	if k.exists(&models.CommunityNotificationSubscription{}, "subscriber_id = ? AND community_id = ?", user.ID, community.ID) {
		return newValidation(localize.MsgAlreadySubscribedCommunity)
	}
	if k.isBannedFrom(user.ID, community.ID) {
		return newPermissionDenied(localize.MsgCommunityBanned)
	}
	if !k.isMemberOf(user.ID, community.ID) {
		return newValidation(localize.MsgNotCommunityMember)
	}
	return nil
}

func (k *Checkers) CheckCanDisableNewPostNotificationsForCommunity(user models.User, community models.Community) error {
	if !k.exists(&models.CommunityNotificationSubscription{}, "subscriber_id = ? AND community_id = ?", user.ID, community.ID) {
		return newValidation(localize.MsgNotSubscribedCommunity)
	}
	return nil
}
