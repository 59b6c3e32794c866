package models

const (
	ModeratedObjectStatusPending  = "pending"
	ModeratedObjectStatusApproved = "approved"
	ModeratedObjectStatusRejected = "rejected"
)

type ModerationCategory struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    int    `json:"severity"`
}

// ModeratedObject wraps a reported piece of content together with its
// moderation state. Exactly one target foreign key is set: PostID or
// PostCommentID for content the moderation pipeline acts on, or one of the
// bookkeeping keys below for report targets it does not.
type ModeratedObject struct {
	BaseModel

	PostID        *uint        `json:"post_id"`
	Post          *Post        `json:"post"`
	PostCommentID *uint        `json:"post_comment_id"`
	PostComment   *PostComment `json:"post_comment"`

	// Reports may also target users, communities, and hashtags. The moderation
	// authority rejects these kinds; they exist for report bookkeeping only.
	UserID              *uint `json:"user_id"`
	ReportedCommunityID *uint `json:"reported_community_id"`
	HashtagID           *uint `json:"hashtag_id"`

	// CommunityID is the community of the wrapped content, nil for
	// non-community content.
	CommunityID *uint      `json:"community_id"`
	Community   *Community `json:"community"`

	CategoryID  uint               `json:"category_id"`
	Category    ModerationCategory `json:"category"`
	Description *string            `json:"description"`

	Status   string `json:"status" gorm:"default:pending"`
	Verified bool   `json:"verified"`

	Reports []ModerationReport `json:"reports" gorm:"foreignKey:ModeratedObjectID"`
}

type ModeratedContent struct {
	Post        *Post
	PostComment *PostComment
}

// Content returns the tagged variant of the wrapped content. Both fields nil
// means the object wraps a kind the moderation pipeline does not handle.
func (mo ModeratedObject) Content() ModeratedContent {
	return ModeratedContent{Post: mo.Post, PostComment: mo.PostComment}
}

type ModerationReport struct {
	BaseModel

	ModeratedObjectID uint `json:"moderated_object_id" gorm:"uniqueIndex:idx_moderation_report_pair"`
	ReporterID        uint `json:"reporter_id" gorm:"uniqueIndex:idx_moderation_report_pair"`

	CategoryID  uint    `json:"category_id"`
	Description *string `json:"description"`
}
