package localize

// Message catalogue. These strings are returned verbatim to clients, so they
// are part of the API contract and must not drift between releases.
const (
	// Identity and credentials
	MsgWrongPassword              = "Wrong password."
	MsgTokenInvalid               = "The token is invalid."
	MsgTokenExpired               = "The token has expired."
	MsgTokenMalformed             = "The token is malformed."
	MsgTokenMissingClaim          = "The token is missing a required claim."
	MsgTokenWrongType             = "The token is of the wrong type."
	MsgTokenWrongUser             = "The token does not belong to you."
	MsgTokenWrongEmail            = "The token was issued for a different email."
	MsgGuidelinesAlreadyAccepted  = "You have already accepted the guidelines."
	MsgLanguageNotSupported       = "The language is not supported."

	// Uniqueness
	MsgEmailTaken         = "An account with that email already exists."
	MsgUsernameTaken      = "The username is already taken."
	MsgCommunityNameTaken = "A community with that name already exists."
	MsgCircleNameTaken    = "You already have a circle with that name"
	MsgListNameTaken      = "You already have a list with that name"
	MsgListDoesNotExist   = "List does not exist."
	MsgCircleDoesNotExist = "Circle does not exist."

	// Social graph
	MsgCannotFollowSelf        = "You cannot follow yourself."
	MsgAlreadyFollowing        = "Already following user"
	MsgAccountBlocked          = "This account is blocked."
	MsgMaxFollowsReached       = "Maximum number of follows reached."
	MsgUserPrivate             = "This user is private."
	MsgUserNotPrivate          = "Follow requests can only be sent to private users."
	MsgFollowRequestExists     = "Follow request already exists."
	MsgFollowRequestMissing    = "Follow request does not exist."
	MsgCannotConnectSelf       = "You cannot connect with yourself."
	MsgAlreadyConnected        = "Already connected with user."
	MsgMaxConnectionsReached   = "Maximum number of connections reached."
	MsgCannotBlockSelf         = "You cannot block yourself."
	MsgAccountAlreadyBlocked   = "This account is already blocked."
	MsgAccountNotBlocked       = "This account is not blocked."
	MsgCircleNotOwned          = "The circle does not belong to you."
	MsgWorldCircleImmutable    = "The world circle cannot be used here."
	MsgCircleImmutable         = "The world and connections circles cannot be modified."
	MsgListNotOwned            = "The list does not belong to you."
	MsgUserPrivateFollowHint   = "This user is private. Send a follow request to see their profile."

	// Posts
	MsgPostPrivate              = "This post is private."
	MsgCommentPrivate           = "This comment is private."
	MsgCannotPostToCircle       = "You cannot post to a circle that does not belong to you."
	MsgNotCommunityMember       = "You are not a member of this community."
	MsgPostNotOwned             = "You cannot update a post that does not belong to you."
	MsgClosedPostStaffOnly      = "Only staff members can update a closed post."
	MsgOnlyCommunityPostsClose  = "Only community posts can be closed or opened."
	MsgClosePostStaffOnly       = "Only staff members can close or open posts."
	MsgCannotDeletePost         = "You cannot delete a post that does not belong to you."
	MsgCommentsToggleStaffOnly  = "Only moderators and administrators can enable or disable comments."
	MsgCommentsDisabled         = "Comments are disabled for this post."
	MsgEmojiNotReaction         = "The emoji does not belong to a reaction group."
	MsgClosedPostCommentReact   = "Only staff members can react to comments on a closed post."
	MsgReactionNotInPost        = "The reaction does not belong to the given post."
	MsgReactionNotOwned         = "You cannot delete a reaction that does not belong to you."
	MsgCommentNotInPost         = "The comment does not belong to the given post."
	MsgClosedPostCommentEdit    = "Only staff members can edit comments on a closed post."
	MsgCommentNotOwned          = "You cannot delete a comment that does not belong to you."
	MsgCannotReplyToReply       = "You cannot reply to a reply."
	MsgTranslatePrivatePost     = "Only public posts can be translated."
	MsgTranslateNoText          = "There is no text to translate."
	MsgTranslateNoLanguage      = "The content has no language assigned."
	MsgTranslateNoUserLanguage  = "You must set a translation language first."
	MsgPostHasNoLinks           = "The post has no links to preview."
	MsgPostNotPublished         = "The post has not been published."

	// Communities
	MsgCommunityBanned             = "You are banned from this community."
	MsgAlreadyCommunityMember      = "You are already a member of this community."
	MsgNotInvitedToCommunity       = "You are not invited to join this community."
	MsgCreatorCannotLeave          = "The creator cannot leave the community."
	MsgCommunityUpdateAdminOnly    = "Only administrators can update the community."
	MsgPrivateCommunityStaysSo     = "A private community cannot be made public."
	MsgCommunityDeleteCreatorOnly  = "Only the creator can delete the community."
	MsgAlreadyInvitedUser          = "You have already invited this user."
	MsgInvitedUserAlreadyMember    = "This user is already a member."
	MsgInvitesDisabled             = "Only administrators and moderators can invite when invites are disabled."
	MsgCommunityInviteMissing      = "The invite does not exist."
	MsgBanStaffOnly                = "Only administrators and moderators can ban users."
	MsgUserAlreadyBanned           = "This user is already banned."
	MsgUserNotBanned               = "This user is not banned."
	MsgCannotBanStaff              = "You cannot ban a staff member."
	MsgAdminManageCreatorOnly      = "Only the creator can manage administrators."
	MsgTargetNotCommunityMember    = "This user is not a member of this community."
	MsgAlreadyAdministrator        = "This user is already an administrator."
	MsgNotAdministrator            = "This user is not an administrator."
	MsgModeratorManageAdminOnly    = "Only administrators can manage moderators."
	MsgAdministratorAsModerator    = "Administrators cannot be made moderators."
	MsgAlreadyModerator            = "This user is already a moderator."
	MsgNotModerator                = "This user is not a moderator."
	MsgMembersOnly                 = "Only members can see this."
	MsgClosedPostsStaffOnly        = "Only staff members can see closed posts."
	MsgFavoriteRequiresMembership  = "You must be a member to favorite a community."
	MsgCommunityAlreadyFavorite    = "You have already favorited this community."
	MsgCommunityNotFavorite       = "You have not favorited this community."
	MsgTopPostsAlreadyExcluded     = "You have already excluded this community from top posts."
	MsgTopPostsNotExcluded         = "You have not excluded this community from top posts."
	MsgPrivateCommunityTopPosts    = "Private communities are always excluded from top posts."
	MsgProfilePostsAlreadyExcluded = "You have already excluded this community from your profile posts."
	MsgProfilePostsNotExcluded     = "You have not excluded this community from your profile posts."
	MsgAlreadySubscribedCommunity  = "You are already subscribed to new post notifications."
	MsgNotSubscribedCommunity      = "You are not subscribed to new post notifications."

	// Notifications and devices
	MsgCannotSubscribeSelf     = "You cannot subscribe to your own posts."
	MsgAlreadySubscribedUser   = "You are already subscribed to this user's posts."
	MsgNotSubscribedUser       = "You are not subscribed to this user's posts."
	MsgDeviceNotFound          = "Device does not exist."
	MsgDeviceUUIDTaken         = "You already have a device with that UUID."
	MsgNotificationNotOwned    = "The notification does not belong to you."

	// Mutes
	MsgPostAlreadyMuted    = "The post is already muted."
	MsgPostNotMuted        = "The post is not muted."
	MsgCommentAlreadyMuted = "The comment is already muted."
	MsgCommentNotMuted     = "The comment is not muted."

	// Reporting
	MsgCannotReportSelf         = "You cannot report yourself."
	MsgCannotReportOwnPost      = "You cannot report your own post."
	MsgCannotReportOwnComment   = "You cannot report your own comment."
	MsgCannotReportOwnCommunity = "You cannot report your own community."
	MsgPostAlreadyReported     = "You have already reported this post."
	MsgCommentAlreadyReported  = "You have already reported this comment."
	MsgUserAlreadyReported     = "You have already reported this user."
	MsgCommunityAlreadyReported = "You have already reported this community."
	MsgHashtagAlreadyReported  = "You have already reported this hashtag."
	MsgAlreadyReportedObject   = "You have already reported this moderated object."

	// Invites
	MsgNoInvitesLeft       = "You have no invites left."
	MsgInviteNicknameTaken = "You already have an invite with that nickname."
	MsgInviteDoesNotExist  = "The invite does not exist."
	MsgInviteEmailSame     = "The invite was already sent to that email."
	MsgInviteAlreadyUsed   = "The invite has already been used."

	// Proxy
	MsgNoValidURL       = "No valid URL given"
	MsgURLNotProxiable  = "The URL is not allowed to be proxied."

	// Moderation
	MsgGlobalModeratorOnly          = "Only global moderators can do this."
	MsgModeratedObjectUpdateDenied  = "Only moderators can update a moderated object."
	MsgModeratedObjectVerified      = "The moderated object has already been verified."
	MsgModeratedObjectNotPendingEdit = "Only global moderators can edit a non-pending moderated object."
	MsgCannotVerifyPending          = "You cannot verify a moderated object with status pending."
	MsgNotVerified                  = "The moderated object is not verified."
	MsgOnlyPostsAndComments         = "Only posts and post comments can be moderated."
	MsgGlobalModeratedListDenied    = "Only global moderators can see global moderated objects."
	MsgCommunityModeratedListDenied = "Only staff members can see the community moderated objects."
	MsgModeratedObjectDenied        = "You cannot see this moderated object."
)
