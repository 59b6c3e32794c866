package models

const (
	CommunityTypePublic  = "public"
	CommunityTypePrivate = "private"
)

type Community struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`

	Type           string `json:"type" gorm:"default:public"`
	CreatorID      uint   `json:"creator_id"`
	Creator        User   `json:"creator"`
	InvitesEnabled bool   `json:"invites_enabled" gorm:"default:true"`

	Memberships []CommunityMembership `json:"memberships" gorm:"foreignKey:CommunityID"`
	Bans        []CommunityBan        `json:"bans" gorm:"foreignKey:CommunityID"`
}

type CommunityMembership struct {
	BaseModel

	CommunityID uint `json:"community_id" gorm:"uniqueIndex:idx_membership_pair"`
	UserID      uint `json:"user_id" gorm:"uniqueIndex:idx_membership_pair"`

	IsAdministrator bool `json:"is_administrator"`
	IsModerator     bool `json:"is_moderator"`

	Community Community `json:"community"`
	User      User      `json:"user"`
}

type CommunityBan struct {
	BaseModel

	CommunityID uint `json:"community_id" gorm:"uniqueIndex:idx_community_ban_pair"`
	UserID      uint `json:"user_id" gorm:"uniqueIndex:idx_community_ban_pair"`
}

type CommunityInvite struct {
	BaseModel

	CommunityID   uint `json:"community_id"`
	CreatorID     uint `json:"creator_id"`
	InvitedUserID uint `json:"invited_user_id"`

	Community   Community `json:"community"`
	Creator     User      `json:"creator"`
	InvitedUser User      `json:"invited_user"`
}

const (
	CommunityLogActionRemovePost             = "remove_post"
	CommunityLogActionRemovePostComment      = "remove_post_comment"
	CommunityLogActionRemovePostCommentReply = "remove_post_comment_reply"
	CommunityLogActionBan                    = "ban"
	CommunityLogActionUnban                  = "unban"
)

// CommunityLogEntry is the audit trail for staff actions inside a community.
type CommunityLogEntry struct {
	BaseModel

	CommunityID  uint   `json:"community_id"`
	SourceUserID uint   `json:"source_user_id"`
	TargetUserID *uint  `json:"target_user_id"`
	Action       string `json:"action"`

	SourceUser User  `json:"source_user"`
	TargetUser *User `json:"target_user"`
}

type CommunityNotificationSubscription struct {
	BaseModel

	CommunityID  uint `json:"community_id" gorm:"uniqueIndex:idx_community_notify_pair"`
	SubscriberID uint `json:"subscriber_id" gorm:"uniqueIndex:idx_community_notify_pair"`
}

type FavoriteCommunity struct {
	BaseModel

	CommunityID uint `json:"community_id" gorm:"uniqueIndex:idx_favorite_community_pair"`
	UserID      uint `json:"user_id" gorm:"uniqueIndex:idx_favorite_community_pair"`
}

// TopPostCommunityExclusion hides a community from the user's top-posts feed.
type TopPostCommunityExclusion struct {
	BaseModel

	CommunityID uint `json:"community_id" gorm:"uniqueIndex:idx_top_exclusion_pair"`
	UserID      uint `json:"user_id" gorm:"uniqueIndex:idx_top_exclusion_pair"`
}

// ProfilePostCommunityExclusion hides a community's posts from the user's profile.
type ProfilePostCommunityExclusion struct {
	BaseModel

	CommunityID uint `json:"community_id" gorm:"uniqueIndex:idx_profile_exclusion_pair"`
	UserID      uint `json:"user_id" gorm:"uniqueIndex:idx_profile_exclusion_pair"`
}
