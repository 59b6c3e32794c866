package services

import (
	"testing"

	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUserCreatesConnectionsCircle(t *testing.T) {
	db := newTestDB(t)

	user, err := NewUser("Alice", "Alice@Grove.Test", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice@grove.test", user.Email)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2")))

	var circle models.Circle
	require.NoError(t, db.Where("owner_id = ?", user.ID).First(&circle).Error)
	require.Equal(t, models.CircleKindConnections, circle.Kind)
}

func TestNewUserUniquenessIsCaseInsensitive(t *testing.T) {
	newTestDB(t)

	_, err := NewUser("alice", "alice@grove.test", "hunter2")
	require.NoError(t, err)

	_, err = NewUser("ALICE", "other@grove.test", "hunter2")
	require.Error(t, err)
	_, err = NewUser("someone", "ALICE@grove.test", "hunter2")
	require.Error(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	db := newTestDB(t)

	user, err := NewUser("alice", "alice@grove.test", "hunter2")
	require.NoError(t, err)

	token, err := RequestPasswordReset(user)
	require.NoError(t, err)
	require.NoError(t, ResetPassword(user, token, "correct horse"))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.NoError(t, Checks.CheckPasswordMatches(reloaded, "correct horse"))
	require.Error(t, Checks.CheckPasswordMatches(reloaded, "hunter2"))

	require.Error(t, ResetPassword(user, "bogus-token", "whatever"))
}

func TestEmailChangeFlow(t *testing.T) {
	db := newTestDB(t)

	user, err := NewUser("alice", "alice@grove.test", "hunter2")
	require.NoError(t, err)

	token, err := RequestEmailChange(user, "New@Grove.Test")
	require.NoError(t, err)
	require.NoError(t, ChangeEmail(user, token))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.Equal(t, "new@grove.test", reloaded.Email)
}

func TestEmailChangeRefusedWhenAddressTakenMeanwhile(t *testing.T) {
	newTestDB(t)

	user, err := NewUser("alice", "alice@grove.test", "hunter2")
	require.NoError(t, err)

	token, err := RequestEmailChange(user, "new@grove.test")
	require.NoError(t, err)

	// Another account claims the address between request and confirmation.
	_, err = NewUser("bob", "new@grove.test", "hunter2")
	require.NoError(t, err)

	require.Error(t, ChangeEmail(user, token))
}

func TestNormalizeUsernames(t *testing.T) {
	db := newTestDB(t)

	mixed := models.User{Username: "MixedCase", Email: "mixed@grove.test"}
	require.NoError(t, db.Create(&mixed).Error)
	plain := models.User{Username: "plain", Email: "plain@grove.test"}
	require.NoError(t, db.Create(&plain).Error)

	require.NoError(t, NormalizeUsernames())

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, mixed.ID).Error)
	require.Equal(t, "mixedcase", reloaded.Username)

	user, err := GetUserWithUsername(db, "MixedCase")
	require.NoError(t, err)
	require.Equal(t, mixed.ID, user.ID)
}
