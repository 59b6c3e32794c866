package services

import (
	"github.com/google/uuid"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// CreateInvite consumes one unit of the creator's invite quota.
func CreateInvite(user models.User, nickname string) (models.UserInvite, error) {
	var invite models.UserInvite
	if err := Checks.CheckCanCreateInvite(user, nickname); err != nil {
		return invite, err
	}

	invite = models.UserInvite{
		CreatorID: user.ID,
		Nickname:  nickname,
		Token:     uuid.NewString(),
	}

	tx := database.C.Begin()
	if err := tx.Create(&invite).Error; err != nil {
		tx.Rollback()
		return invite, err
	}
	if err := tx.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("invite_count", user.InviteCount-1).Error; err != nil {
		tx.Rollback()
		return invite, err
	}
	return invite, tx.Commit().Error
}

// SendInviteEmail records the target address. Actual mail delivery is handed
// off to the outer platform.
func SendInviteEmail(user models.User, inviteID uint, email string) error {
	if err := Checks.CheckCanSendInviteEmail(user, inviteID, email); err != nil {
		return err
	}
	if err := database.C.Model(&models.UserInvite{}).
		Where("id = ?", inviteID).
		Update("email", email).Error; err != nil {
		return err
	}
	log.Info().Uint("invite", inviteID).Str("email", email).Msg("Invite email queued...")
	return nil
}

func DeleteInvite(user models.User, inviteID uint) error {
	if err := Checks.CheckCanDeleteInvite(user, inviteID); err != nil {
		return err
	}
	return database.C.Delete(&models.UserInvite{}, inviteID).Error
}

func ListInvites(user models.User) ([]models.UserInvite, error) {
	var invites []models.UserInvite
	if err := database.C.
		Where("creator_id = ?", user.ID).
		Order("id DESC").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}
