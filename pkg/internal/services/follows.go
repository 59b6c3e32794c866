package services

import (
	"fmt"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
)

func FollowUser(user, target models.User) (models.Follow, error) {
	var follow models.Follow
	if err := Checks.CheckCanFollowUser(user, target, false); err != nil {
		return follow, err
	}

	follow = models.Follow{
		UserID:         user.ID,
		FollowedUserID: target.ID,
	}
	err := database.C.Create(&follow).Error
	return follow, err
}

func UnfollowUser(user, target models.User) error {
	return database.C.
		Where("user_id = ? AND followed_user_id = ?", user.ID, target.ID).
		Delete(&models.Follow{}).Error
}

func CreateFollowRequest(user, target models.User) (models.FollowRequest, error) {
	var request models.FollowRequest
	if err := Checks.CheckCanCreateFollowRequest(user, target); err != nil {
		return request, err
	}

	request = models.FollowRequest{
		CreatorID:    user.ID,
		TargetUserID: target.ID,
	}
	err := database.C.Create(&request).Error
	return request, err
}

// ApproveFollowRequest turns the request into a follow inside one transaction.
func ApproveFollowRequest(user, requester models.User) (models.Follow, error) {
	var follow models.Follow
	if err := Checks.CheckCanApproveFollowRequest(user, requester); err != nil {
		return follow, err
	}
	if err := Checks.CheckCanFollowUser(requester, user, true); err != nil {
		return follow, err
	}

	tx := database.C.Begin()
	if err := tx.Where("creator_id = ? AND target_user_id = ?", requester.ID, user.ID).
		Delete(&models.FollowRequest{}).Error; err != nil {
		tx.Rollback()
		return follow, fmt.Errorf("unable to consume follow request: %v", err)
	}
	follow = models.Follow{
		UserID:         requester.ID,
		FollowedUserID: user.ID,
	}
	if err := tx.Create(&follow).Error; err != nil {
		tx.Rollback()
		return follow, err
	}
	return follow, tx.Commit().Error
}

func DeleteFollowRequest(user, requester models.User) error {
	if err := Checks.CheckCanDeleteFollowRequest(user, requester); err != nil {
		return err
	}
	return database.C.
		Where("creator_id = ? AND target_user_id = ?", requester.ID, user.ID).
		Delete(&models.FollowRequest{}).Error
}

// BlockUser severs follows in both directions along with creating the block.
func BlockUser(user, target models.User) (models.Block, error) {
	var block models.Block
	if err := Checks.CheckCanBlockUser(user, target); err != nil {
		return block, err
	}

	tx := database.C.Begin()
	block = models.Block{
		BlockerID:     user.ID,
		BlockedUserID: target.ID,
	}
	if err := tx.Create(&block).Error; err != nil {
		tx.Rollback()
		return block, err
	}
	if err := tx.Where(
		"(user_id = ? AND followed_user_id = ?) OR (user_id = ? AND followed_user_id = ?)",
		user.ID, target.ID, target.ID, user.ID,
	).Delete(&models.Follow{}).Error; err != nil {
		tx.Rollback()
		return block, fmt.Errorf("unable to sever follows: %v", err)
	}
	return block, tx.Commit().Error
}

func UnblockUser(user, target models.User) error {
	if err := Checks.CheckCanUnblockUser(user, target); err != nil {
		return err
	}
	return database.C.
		Where("blocker_id = ? AND blocked_user_id = ?", user.ID, target.ID).
		Delete(&models.Block{}).Error
}
