package models

const (
	UserVisibilityPublic    = "public"
	UserVisibilityPrivate   = "private"
	UserVisibilityGroveOnly = "grove-only"
)

type User struct {
	BaseModel

	Username string `json:"username" gorm:"uniqueIndex"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`

	Visibility            string `json:"visibility" gorm:"default:public"`
	IsGlobalModerator     bool   `json:"is_global_moderator"`
	InviteCount           int    `json:"invite_count"`
	AreGuidelinesAccepted bool   `json:"are_guidelines_accepted"`

	TranslationLanguageID *uint     `json:"translation_language_id"`
	TranslationLanguage   *Language `json:"translation_language"`

	Circles []Circle `json:"circles" gorm:"foreignKey:OwnerID"`
	Lists   []List   `json:"lists" gorm:"foreignKey:OwnerID"`
	Devices []Device `json:"devices" gorm:"foreignKey:OwnerID"`
}

const (
	CircleKindWorld       = "world"
	CircleKindConnections = "connections"
	CircleKindCustom      = "custom"
)

// Circle groups the audience of encircled posts. The world circle is a single
// ownerless row; each user gets an auto-populated connections circle.
type Circle struct {
	BaseModel

	OwnerID *uint  `json:"owner_id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Kind    string `json:"kind" gorm:"default:custom"`
}

func (c Circle) IsWorld() bool       { return c.Kind == CircleKindWorld }
func (c Circle) IsConnections() bool { return c.Kind == CircleKindConnections }

type List struct {
	BaseModel

	OwnerID uint   `json:"owner_id"`
	Name    string `json:"name"`
	EmojiID *uint  `json:"emoji_id"`
}

type Follow struct {
	BaseModel

	UserID         uint  `json:"user_id" gorm:"uniqueIndex:idx_follow_pair"`
	FollowedUserID uint  `json:"followed_user_id" gorm:"uniqueIndex:idx_follow_pair"`
	ListID         *uint `json:"list_id"`

	User         User `json:"user"`
	FollowedUser User `json:"followed_user"`
}

type FollowRequest struct {
	BaseModel

	CreatorID    uint `json:"creator_id" gorm:"uniqueIndex:idx_follow_request_pair"`
	TargetUserID uint `json:"target_user_id" gorm:"uniqueIndex:idx_follow_request_pair"`

	Creator    User `json:"creator"`
	TargetUser User `json:"target_user"`
}

type Block struct {
	BaseModel

	BlockerID     uint `json:"blocker_id" gorm:"uniqueIndex:idx_block_pair"`
	BlockedUserID uint `json:"blocked_user_id" gorm:"uniqueIndex:idx_block_pair"`

	Blocker     User `json:"blocker"`
	BlockedUser User `json:"blocked_user"`
}

type Connection struct {
	BaseModel

	UserID       uint `json:"user_id" gorm:"uniqueIndex:idx_connection_pair"`
	TargetUserID uint `json:"target_user_id" gorm:"uniqueIndex:idx_connection_pair"`

	User       User     `json:"user"`
	TargetUser User     `json:"target_user"`
	Circles    []Circle `json:"circles" gorm:"many2many:connection_circles"`
}

type Device struct {
	BaseModel

	OwnerID uint   `json:"owner_id" gorm:"uniqueIndex:idx_device_owner_uuid"`
	UUID    string `json:"uuid" gorm:"uniqueIndex:idx_device_owner_uuid"`
	Name    string `json:"name"`
}

type Language struct {
	BaseModel

	Code string `json:"code" gorm:"uniqueIndex"`
	Name string `json:"name"`
}

type Notification struct {
	BaseModel

	OwnerID uint   `json:"owner_id"`
	Kind    string `json:"kind"`
	Read    bool   `json:"read"`
}

// UserNotificationSubscription marks that the subscriber wants a push whenever
// the target user publishes a new post.
type UserNotificationSubscription struct {
	BaseModel

	SubscriberID uint `json:"subscriber_id" gorm:"uniqueIndex:idx_user_notify_pair"`
	TargetUserID uint `json:"target_user_id" gorm:"uniqueIndex:idx_user_notify_pair"`
}
