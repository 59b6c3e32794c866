package services

import (
	"fmt"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/services/queries"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func GetCommunityWithName(name string) (models.Community, error) {
	var community models.Community
	if err := database.C.Where("lower(name) = lower(?)", name).First(&community).Error; err != nil {
		return community, fmt.Errorf("unable to get community by name: %v", err)
	}
	return community, nil
}

func CreateCommunity(user models.User, name, title, communityType string) (models.Community, error) {
	var community models.Community
	if err := Checks.CheckCanCreateCommunity(name); err != nil {
		return community, err
	}

	community = models.Community{
		Name:      name,
		Title:     title,
		Type:      communityType,
		CreatorID: user.ID,
	}

	tx := database.C.Begin()
	if err := tx.Create(&community).Error; err != nil {
		tx.Rollback()
		return community, err
	}
	membership := models.CommunityMembership{
		CommunityID:     community.ID,
		UserID:          user.ID,
		IsAdministrator: true,
	}
	if err := tx.Create(&membership).Error; err != nil {
		tx.Rollback()
		return community, err
	}
	return community, tx.Commit().Error
}

func UpdateCommunity(user models.User, community models.Community, newName, newType *string) (models.Community, error) {
	if err := Checks.CheckCanUpdateCommunity(user, community, newName, newType); err != nil {
		return community, err
	}

	updates := map[string]any{}
	if newName != nil {
		updates["name"] = *newName
	}
	if newType != nil {
		updates["type"] = *newType
	}
	if len(updates) == 0 {
		return community, nil
	}
	err := database.C.Model(&community).Updates(updates).Error
	return community, err
}

func DeleteCommunity(user models.User, community models.Community) error {
	if err := Checks.CheckCanDeleteCommunity(user, community); err != nil {
		return err
	}

	tx := database.C.Begin()
	for _, model := range []any{
		&models.CommunityMembership{},
		&models.CommunityBan{},
		&models.CommunityInvite{},
		&models.CommunityLogEntry{},
		&models.CommunityNotificationSubscription{},
		&models.FavoriteCommunity{},
		&models.TopPostCommunityExclusion{},
		&models.ProfilePostCommunityExclusion{},
	} {
		if err := tx.Where("community_id = ?", community.ID).Delete(model).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Delete(&community).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func JoinCommunity(user models.User, community models.Community) (models.CommunityMembership, error) {
	var membership models.CommunityMembership
	if err := Checks.CheckCanJoinCommunity(user, community); err != nil {
		return membership, err
	}

	tx := database.C.Begin()
	membership = models.CommunityMembership{
		CommunityID: community.ID,
		UserID:      user.ID,
	}
	if err := tx.Create(&membership).Error; err != nil {
		tx.Rollback()
		return membership, err
	}
	// Joining consumes any outstanding invites.
	if err := tx.Where("community_id = ? AND invited_user_id = ?", community.ID, user.ID).
		Delete(&models.CommunityInvite{}).Error; err != nil {
		tx.Rollback()
		return membership, err
	}
	return membership, tx.Commit().Error
}

func LeaveCommunity(user models.User, community models.Community) error {
	if err := Checks.CheckCanLeaveCommunity(user, community); err != nil {
		return err
	}
	return database.C.
		Where("community_id = ? AND user_id = ?", community.ID, user.ID).
		Delete(&models.CommunityMembership{}).Error
}

func InviteUserToCommunity(user, target models.User, community models.Community) (models.CommunityInvite, error) {
	var invite models.CommunityInvite
	if err := Checks.CheckCanInviteUserToCommunity(user, target, community); err != nil {
		return invite, err
	}

	invite = models.CommunityInvite{
		CommunityID:   community.ID,
		CreatorID:     user.ID,
		InvitedUserID: target.ID,
	}
	err := database.C.Create(&invite).Error
	return invite, err
}

func UninviteUserFromCommunity(user, target models.User, community models.Community) error {
	if err := Checks.CheckCanUninviteUserFromCommunity(user, target, community); err != nil {
		return err
	}
	return database.C.
		Where("community_id = ? AND creator_id = ? AND invited_user_id = ?", community.ID, user.ID, target.ID).
		Delete(&models.CommunityInvite{}).Error
}

// NewCommunityLogEntry appends an audit row to the community's log. Callers
// inside a transaction pass it so the entry commits with the action it records.
func NewCommunityLogEntry(tx *gorm.DB, community models.Community, sourceUser models.User, targetUserID *uint, action string) error {
	entry := models.CommunityLogEntry{
		CommunityID:  community.ID,
		SourceUserID: sourceUser.ID,
		TargetUserID: targetUserID,
		Action:       action,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("unable to append community log entry: %v", err)
	}
	return nil
}

func BanUserFromCommunity(user, target models.User, community models.Community) error {
	if err := Checks.CheckCanBanUserFromCommunity(user, target, community); err != nil {
		return err
	}

	tx := database.C.Begin()
	ban := models.CommunityBan{
		CommunityID: community.ID,
		UserID:      target.ID,
	}
	if err := tx.Create(&ban).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("community_id = ? AND user_id = ?", community.ID, target.ID).
		Delete(&models.CommunityMembership{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := NewCommunityLogEntry(tx, community, user, &target.ID, models.CommunityLogActionBan); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func UnbanUserFromCommunity(user, target models.User, community models.Community) error {
	if err := Checks.CheckCanUnbanUserFromCommunity(user, target, community); err != nil {
		return err
	}

	tx := database.C.Begin()
	if err := tx.Where("community_id = ? AND user_id = ?", community.ID, target.ID).
		Delete(&models.CommunityBan{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := NewCommunityLogEntry(tx, community, user, &target.ID, models.CommunityLogActionUnban); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func setMembershipFlag(target models.User, community models.Community, column string, value bool) error {
	return database.C.Model(&models.CommunityMembership{}).
		Where("community_id = ? AND user_id = ?", community.ID, target.ID).
		Update(column, value).Error
}

func AddCommunityAdministrator(user, target models.User, community models.Community) error {
	if err := Checks.CheckCanAddCommunityAdministrator(user, target, community); err != nil {
		return err
	}
	return setMembershipFlag(target, community, "is_administrator", true)
}

func RemoveCommunityAdministrator(user, target models.User, community models.Community) error {
	if err := Checks.CheckCanRemoveCommunityAdministrator(user, target, community); err != nil {
		return err
	}
	return setMembershipFlag(target, community, "is_administrator", false)
}

func AddCommunityModerator(user, target models.User, community models.Community) error {
	if err := Checks.CheckCanAddCommunityModerator(user, target, community); err != nil {
		return err
	}
	return setMembershipFlag(target, community, "is_moderator", true)
}

func RemoveCommunityModerator(user, target models.User, community models.Community) error {
	if err := Checks.CheckCanRemoveCommunityModerator(user, target, community); err != nil {
		return err
	}
	return setMembershipFlag(target, community, "is_moderator", false)
}

func FavoriteCommunity(user models.User, community models.Community) error {
	if err := Checks.CheckCanFavoriteCommunity(user, community); err != nil {
		return err
	}
	return database.C.Create(&models.FavoriteCommunity{
		CommunityID: community.ID,
		UserID:      user.ID,
	}).Error
}

func UnfavoriteCommunity(user models.User, community models.Community) error {
	if err := Checks.CheckCanUnfavoriteCommunity(user, community); err != nil {
		return err
	}
	return database.C.
		Where("community_id = ? AND user_id = ?", community.ID, user.ID).
		Delete(&models.FavoriteCommunity{}).Error
}

func ExcludeCommunityFromTopPosts(user models.User, community models.Community) error {
	if err := Checks.CheckCanExcludeCommunityFromTopPosts(user, community); err != nil {
		return err
	}
	return database.C.Create(&models.TopPostCommunityExclusion{
		CommunityID: community.ID,
		UserID:      user.ID,
	}).Error
}

func RemoveTopPostsCommunityExclusion(user models.User, community models.Community) error {
	if err := Checks.CheckCanRemoveTopPostsCommunityExclusion(user, community); err != nil {
		return err
	}
	return database.C.
		Where("community_id = ? AND user_id = ?", community.ID, user.ID).
		Delete(&models.TopPostCommunityExclusion{}).Error
}

func ExcludeCommunityFromProfilePosts(user models.User, community models.Community) error {
	if err := Checks.CheckCanExcludeCommunityFromProfilePosts(user, community); err != nil {
		return err
	}
	return database.C.Create(&models.ProfilePostCommunityExclusion{
		CommunityID: community.ID,
		UserID:      user.ID,
	}).Error
}

func RemoveProfilePostsCommunityExclusion(user models.User, community models.Community) error {
	if err := Checks.CheckCanRemoveProfilePostsCommunityExclusion(user, community); err != nil {
		return err
	}
	return database.C.
		Where("community_id = ? AND user_id = ?", community.ID, user.ID).
		Delete(&models.ProfilePostCommunityExclusion{}).Error
}

func EnableCommunityNewPostNotifications(user models.User, community models.Community) error {
	if err := Checks.CheckCanEnableNewPostNotificationsForCommunity(user, community); err != nil {
		return err
	}
	return database.C.Create(&models.CommunityNotificationSubscription{
		CommunityID:  community.ID,
		SubscriberID: user.ID,
	}).Error
}

func DisableCommunityNewPostNotifications(user models.User, community models.Community) error {
	if err := Checks.CheckCanDisableNewPostNotificationsForCommunity(user, community); err != nil {
		return err
	}
	return database.C.
		Where("community_id = ? AND subscriber_id = ?", community.ID, user.ID).
		Delete(&models.CommunityNotificationSubscription{}).Error
}

func ListCommunityMembers(user models.User, community models.Community, take int) ([]models.CommunityMembership, error) {
	if err := Checks.CheckCanGetCommunityMembers(user, community); err != nil {
		return nil, err
	}
	if take <= 0 || take > 100 {
		take = 100
	}
	var memberships []models.CommunityMembership
	if err := database.C.
		Preload("User").
		Where("community_id = ?", community.ID).
		Order("id ASC").
		Limit(take).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

func ListCommunityAdministrators(user models.User, community models.Community) ([]models.CommunityMembership, error) {
	if err := Checks.CheckCanGetCommunityAdministrators(user, community); err != nil {
		return nil, err
	}
	var memberships []models.CommunityMembership
	if err := database.C.
		Preload("User").
		Where("community_id = ? AND is_administrator = ?", community.ID, true).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

func ListCommunityModerators(user models.User, community models.Community) ([]models.CommunityMembership, error) {
	if err := Checks.CheckCanGetCommunityModerators(user, community); err != nil {
		return nil, err
	}
	var memberships []models.CommunityMembership
	if err := database.C.
		Preload("User").
		Where("community_id = ? AND is_moderator = ?", community.ID, true).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

func ListCommunityBannedUsers(user models.User, community models.Community) ([]models.User, error) {
	if err := Checks.CheckCanGetCommunityBannedUsers(user, community); err != nil {
		return nil, err
	}
	var users []models.User
	if err := database.C.
		Where("id IN (?)", database.C.Model(&models.CommunityBan{}).
			Select("user_id").
			Where("community_id = ?", community.ID)).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func ListCommunityPosts(user models.User, community models.Community, take int) ([]models.Post, error) {
	if err := Checks.CheckCanGetCommunityPosts(user, community); err != nil {
		return nil, err
	}
	if take <= 0 || take > 100 {
		take = 100
	}
	var posts []models.Post
	tx := queries.FilterPostNotBlockedForInCommunity(database.C, user.ID, community.ID)
	tx = queries.FilterPostPublished(tx)
	tx = queries.FilterPostNotDeleted(tx)
	tx = queries.FilterPostNotClosed(tx)
	if err := tx.
		Preload("Creator").
		Where("posts.community_id = ?", community.ID).
		Order("posts.id DESC").
		Limit(take).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func ListCommunityClosedPosts(user models.User, community models.Community, take int) ([]models.Post, error) {
	if err := Checks.CheckCanGetCommunityClosedPosts(user, community); err != nil {
		return nil, err
	}
	if take <= 0 || take > 100 {
		take = 100
	}
	var posts []models.Post
	if err := database.C.
		Preload("Creator").
		Where("community_id = ? AND is_closed = ? AND is_deleted = ?", community.ID, true, false).
		Order("id DESC").
		Limit(take).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func EnableDisableCommentsForPost(user models.User, community models.Community, post models.Post, enabled bool) error {
	if err := Checks.CheckCanEnableDisableCommentsForPostsInCommunity(user, community); err != nil {
		return err
	}
	if err := database.C.Model(&post).Update("comments_enabled", enabled).Error; err != nil {
		return err
	}
	log.Debug().Uint("post", post.ID).Bool("enabled", enabled).Msg("Toggled post comments.")
	return nil
}
