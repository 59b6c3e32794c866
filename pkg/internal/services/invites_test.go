package services

import (
	"testing"

	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCreateInviteConsumesQuota(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")

	invite, err := CreateInvite(alice, "pal")
	require.NoError(t, err)
	require.NotEmpty(t, invite.Token)
	require.Equal(t, alice.ID, invite.CreatorID)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, alice.ID).Error)
	require.Equal(t, alice.InviteCount-1, reloaded.InviteCount)

	// Same nickname again is refused; the quota stays untouched.
	_, err = CreateInvite(reloaded, "pal")
	require.Error(t, err)
	require.NoError(t, db.First(&reloaded, alice.ID).Error)
	require.Equal(t, alice.InviteCount-1, reloaded.InviteCount)
}

func TestCreateInviteRefusedWithoutQuota(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	require.NoError(t, db.Model(&alice).Update("invite_count", 0).Error)
	alice.InviteCount = 0

	_, err := CreateInvite(alice, "pal")
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.UserInvite{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestDeleteInviteOnlyWhileUnused(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")

	invite, err := CreateInvite(alice, "pal")
	require.NoError(t, err)
	require.NoError(t, DeleteInvite(alice, invite.ID))

	used, err := CreateInvite(alice, "taken")
	require.NoError(t, err)
	newcomer := createUser(t, db, "newcomer")
	require.NoError(t, db.Model(&models.UserInvite{}).
		Where("id = ?", used.ID).
		Update("created_user_id", newcomer.ID).Error)

	require.Error(t, DeleteInvite(alice, used.ID))
}
