package models

import (
	"gorm.io/datatypes"
)

const (
	PostStatusDraft      = "draft"
	PostStatusProcessing = "processing"
	PostStatusPublished  = "published"
)

type Post struct {
	BaseModel

	CreatorID uint `json:"creator_id"`
	Creator   User `json:"creator"`

	CommunityID *uint      `json:"community_id"`
	Community   *Community `json:"community"`

	Status          string `json:"status" gorm:"default:draft"`
	IsClosed        bool   `json:"is_closed"`
	IsDeleted       bool   `json:"is_deleted"`
	CommentsEnabled bool   `json:"comments_enabled" gorm:"default:true"`

	Text       *string           `json:"text"`
	LanguageID *uint             `json:"language_id"`
	Language   *Language         `json:"language"`
	Media      datatypes.JSONMap `json:"media"`

	// Circles is ignored when the post belongs to a community.
	Circles  []Circle   `json:"circles" gorm:"many2many:post_circles"`
	Hashtags []Hashtag  `json:"hashtags" gorm:"many2many:post_hashtags"`
	Links    []PostLink `json:"links" gorm:"foreignKey:PostID"`
}

func (p Post) IsEncircled() bool { return p.CommunityID == nil }

type PostLink struct {
	BaseModel

	PostID     uint   `json:"post_id"`
	Link       string `json:"link"`
	HasPreview bool   `json:"has_preview"`
}

type PostComment struct {
	BaseModel

	PostID      uint `json:"post_id"`
	Post        Post `json:"post"`
	CommenterID uint `json:"commenter_id"`
	Commenter   User `json:"commenter"`

	// One-level replies only. A comment that has a parent cannot be replied to.
	ParentCommentID *uint        `json:"parent_comment_id"`
	ParentComment   *PostComment `json:"parent_comment"`

	Text       *string   `json:"text"`
	LanguageID *uint     `json:"language_id"`
	Language   *Language `json:"language"`

	Hashtags []Hashtag `json:"hashtags" gorm:"many2many:post_comment_hashtags"`
}

func (c PostComment) IsReply() bool { return c.ParentCommentID != nil }

type PostReaction struct {
	BaseModel

	PostID    uint  `json:"post_id" gorm:"uniqueIndex:idx_post_reaction"`
	ReactorID uint  `json:"reactor_id" gorm:"uniqueIndex:idx_post_reaction"`
	EmojiID   uint  `json:"emoji_id"`
	Emoji     Emoji `json:"emoji"`
}

type PostCommentReaction struct {
	BaseModel

	PostCommentID uint  `json:"post_comment_id" gorm:"uniqueIndex:idx_comment_reaction"`
	ReactorID     uint  `json:"reactor_id" gorm:"uniqueIndex:idx_comment_reaction"`
	EmojiID       uint  `json:"emoji_id"`
	Emoji         Emoji `json:"emoji"`
}

type PostMute struct {
	BaseModel

	PostID  uint `json:"post_id" gorm:"uniqueIndex:idx_post_mute_pair"`
	MuterID uint `json:"muter_id" gorm:"uniqueIndex:idx_post_mute_pair"`
}

type PostCommentMute struct {
	BaseModel

	PostCommentID uint `json:"post_comment_id" gorm:"uniqueIndex:idx_comment_mute_pair"`
	MuterID       uint `json:"muter_id" gorm:"uniqueIndex:idx_comment_mute_pair"`
}

type EmojiGroup struct {
	BaseModel

	Keyword         string `json:"keyword" gorm:"uniqueIndex"`
	IsReactionGroup bool   `json:"is_reaction_group"`

	Emojis []Emoji `json:"emojis" gorm:"foreignKey:GroupID"`
}

type Emoji struct {
	BaseModel

	GroupID uint       `json:"group_id"`
	Group   EmojiGroup `json:"group"`
	Keyword string     `json:"keyword"`
	Image   string     `json:"image"`
}

type Hashtag struct {
	BaseModel

	Name      string `json:"name" gorm:"uniqueIndex"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
}
