package database

import (
	"github.com/grovesocial/grove/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Language{},
	&models.User{},
	&models.Circle{},
	&models.List{},
	&models.Follow{},
	&models.FollowRequest{},
	&models.Block{},
	&models.Connection{},
	&models.Device{},
	&models.Notification{},
	&models.UserNotificationSubscription{},
	&models.Community{},
	&models.CommunityMembership{},
	&models.CommunityBan{},
	&models.CommunityInvite{},
	&models.CommunityLogEntry{},
	&models.CommunityNotificationSubscription{},
	&models.FavoriteCommunity{},
	&models.TopPostCommunityExclusion{},
	&models.ProfilePostCommunityExclusion{},
	&models.EmojiGroup{},
	&models.Emoji{},
	&models.Hashtag{},
	&models.Post{},
	&models.PostLink{},
	&models.PostComment{},
	&models.PostMute{},
	&models.PostCommentMute{},
	&models.UserInvite{},
	&models.ModerationCategory{},
	&models.ModeratedObject{},
	&models.ModerationReport{},
	&models.ProxyWhitelistDomain{},
	&models.ProxyBlacklistedDomain{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.PostReaction{},
			&models.PostCommentReaction{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
