package models

type UserInvite struct {
	BaseModel

	CreatorID uint   `json:"creator_id" gorm:"uniqueIndex:idx_invite_nickname"`
	Nickname  string `json:"nickname" gorm:"uniqueIndex:idx_invite_nickname"`
	Email     *string `json:"email"`
	Token     string  `json:"-"`

	// CreatedUserID binds the invite to the account it materialized into.
	// Once set the invite is a historical record and cannot be deleted.
	CreatedUserID *uint `json:"created_user_id"`
	CreatedUser   *User `json:"created_user"`
}
