package checkers

import (
	"testing"

	"github.com/grovesocial/grove/pkg/internal/localize"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckPasswordMatches(t *testing.T) {
	k := newTestCheckers(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Password: string(hash)}

	require.NoError(t, k.CheckPasswordMatches(user, "hunter2"))
	requireCheckerError(t,
		k.CheckPasswordMatches(user, "hunter3"),
		KindAuthenticationFailed, localize.MsgWrongPassword)
}

func TestCheckCanFollowUser(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")
	bob := seedUser(t, k.db, "bob")

	requireCheckerError(t,
		k.CheckCanFollowUser(alice, alice, false),
		KindValidation, localize.MsgCannotFollowSelf)

	require.NoError(t, k.CheckCanFollowUser(alice, bob, false))

	require.NoError(t, k.db.Create(&models.Follow{UserID: alice.ID, FollowedUserID: bob.ID}).Error)
	requireCheckerError(t,
		k.CheckCanFollowUser(alice, bob, false),
		KindValidation, localize.MsgAlreadyFollowing)

	carol := seedUser(t, k.db, "carol")
	require.NoError(t, k.db.Create(&models.Block{BlockerID: carol.ID, BlockedUserID: alice.ID}).Error)
	requireCheckerError(t,
		k.CheckCanFollowUser(alice, carol, false),
		KindPermissionDenied, localize.MsgAccountBlocked)
}

func TestFollowQuotaCountsExistingFollows(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")

	// The limit is 3 in the test config; the third existing follow already
	// exhausts it.
	var first models.User
	for i := 0; i < 3; i++ {
		target := seedUser(t, k.db, "target"+string(rune('a'+i)))
		if i == 0 {
			first = target
		}
		require.NoError(t, k.db.Create(&models.Follow{UserID: alice.ID, FollowedUserID: target.ID}).Error)
	}

	next := seedUser(t, k.db, "onemore")
	requireCheckerError(t,
		k.CheckCanFollowUser(alice, next, false),
		KindValidation, localize.MsgMaxFollowsReached)

	// The quota counts live follows, so unfollowing frees a slot right away.
	require.NoError(t, k.db.
		Where("user_id = ? AND followed_user_id = ?", alice.ID, first.ID).
		Delete(&models.Follow{}).Error)
	require.NoError(t, k.CheckCanFollowUser(alice, next, false))
}

func TestFollowRequestFlow(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")
	bob := seedPrivateUser(t, k.db, "bob")
	carol := seedUser(t, k.db, "carol")

	// Following a private user directly is refused; the request path is open.
	requireCheckerError(t,
		k.CheckCanFollowUser(alice, bob, false),
		KindValidation, localize.MsgUserPrivate)
	require.NoError(t, k.CheckCanCreateFollowRequest(alice, bob))

	// Requests only make sense for private targets.
	requireCheckerError(t,
		k.CheckCanCreateFollowRequest(alice, carol),
		KindValidation, localize.MsgUserNotPrivate)

	require.NoError(t, k.db.Create(&models.FollowRequest{CreatorID: alice.ID, TargetUserID: bob.ID}).Error)
	requireCheckerError(t,
		k.CheckCanCreateFollowRequest(alice, bob),
		KindValidation, localize.MsgFollowRequestExists)

	require.NoError(t, k.CheckCanApproveFollowRequest(bob, alice))
	requireCheckerError(t,
		k.CheckCanApproveFollowRequest(bob, carol),
		KindValidation, localize.MsgFollowRequestMissing)

	// Once approved the follow itself is pre-approved.
	require.NoError(t, k.CheckCanFollowUser(alice, bob, true))
}

func TestConnectionQuotaIsStrictlyGreater(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")

	for i := 0; i < 3; i++ {
		target := seedUser(t, k.db, "peer"+string(rune('a'+i)))
		require.NoError(t, k.db.Create(&models.Connection{UserID: alice.ID, TargetUserID: target.ID}).Error)
	}

	// Exactly at the limit the connect is still allowed; the follow quota
	// would already refuse here.
	atLimit := seedUser(t, k.db, "atlimit")
	require.NoError(t, k.CheckCanConnectWithUser(alice, atLimit))

	extra := seedUser(t, k.db, "extra")
	require.NoError(t, k.db.Create(&models.Connection{UserID: alice.ID, TargetUserID: extra.ID}).Error)
	overLimit := seedUser(t, k.db, "overlimit")
	requireCheckerError(t,
		k.CheckCanConnectWithUser(alice, overLimit),
		KindValidation, localize.MsgMaxConnectionsReached)
}

func TestCheckTargetUserVisible(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")
	bob := seedPrivateUser(t, k.db, "bob")

	require.NoError(t, k.CheckTargetUserVisible(bob, bob))
	requireCheckerError(t,
		k.CheckTargetUserVisible(alice, bob),
		KindValidation, localize.MsgUserPrivateFollowHint)

	require.NoError(t, k.db.Create(&models.Follow{UserID: alice.ID, FollowedUserID: bob.ID}).Error)
	require.NoError(t, k.CheckTargetUserVisible(alice, bob))
}

func TestCheckCanUpdateCircle(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")
	bob := seedUser(t, k.db, "bob")

	world := seedWorldCircle(t, k.db)
	requireCheckerError(t,
		k.CheckCanUpdateCircle(alice, world),
		KindValidation, localize.MsgCircleImmutable)

	connections := models.Circle{OwnerID: &alice.ID, Name: "Connections", Kind: models.CircleKindConnections}
	require.NoError(t, k.db.Create(&connections).Error)
	requireCheckerError(t,
		k.CheckCanUpdateCircle(alice, connections),
		KindValidation, localize.MsgCircleImmutable)

	own := seedCircle(t, k.db, alice, "Friends")
	require.NoError(t, k.CheckCanUpdateCircle(alice, own))
	requireCheckerError(t,
		k.CheckCanUpdateCircle(bob, own),
		KindValidation, localize.MsgCircleNotOwned)
}

func TestCheckCanUpdateConnectionCircles(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")
	bob := seedUser(t, k.db, "bob")

	world := seedWorldCircle(t, k.db)
	own := seedCircle(t, k.db, alice, "Friends")
	foreign := seedCircle(t, k.db, bob, "Work")

	require.NoError(t, k.CheckCanUpdateConnectionCircles(alice, []uint{own.ID}))
	requireCheckerError(t,
		k.CheckCanUpdateConnectionCircles(alice, []uint{world.ID}),
		KindValidation, localize.MsgWorldCircleImmutable)
	requireCheckerError(t,
		k.CheckCanUpdateConnectionCircles(alice, []uint{foreign.ID}),
		KindValidation, localize.MsgCircleNotOwned)
	requireCheckerError(t,
		k.CheckCanUpdateConnectionCircles(alice, []uint{own.ID, 9999}),
		KindValidation, localize.MsgCircleDoesNotExist)
}

func TestInviteChecks(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")

	require.NoError(t, k.CheckCanCreateInvite(alice, "pal"))

	require.NoError(t, k.db.Create(&models.UserInvite{CreatorID: alice.ID, Nickname: "pal", Token: "tok"}).Error)
	requireCheckerError(t,
		k.CheckCanCreateInvite(alice, "pal"),
		KindValidation, localize.MsgInviteNicknameTaken)

	broke := seedUser(t, k.db, "broke")
	require.NoError(t, k.db.Model(&broke).Update("invite_count", 0).Error)
	broke.InviteCount = 0
	requireCheckerError(t,
		k.CheckCanCreateInvite(broke, "anyone"),
		KindValidation, localize.MsgNoInvitesLeft)
}

func TestPasswordResetTokenRoundTrip(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")
	bob := seedUser(t, k.db, "bob")

	token, err := k.Tokens().SignPasswordReset(alice.ID)
	require.NoError(t, err)

	userID, err := k.CheckPasswordResetToken(alice, token)
	require.NoError(t, err)
	require.Equal(t, alice.ID, userID)

	// A token issued for another user is rejected.
	_, err = k.CheckPasswordResetToken(bob, token)
	requireCheckerError(t, err, KindValidation, localize.MsgTokenWrongUser)

	_, err = k.CheckPasswordResetToken(alice, "not-a-token")
	requireCheckerError(t, err, KindValidation, localize.MsgTokenMalformed)
}

func TestEmailChangeToken(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")

	token, err := k.Tokens().SignChangeEmail(alice.ID, alice.Email, "new@grove.test")
	require.NoError(t, err)

	newEmail, err := k.CheckEmailChangeToken(alice, token)
	require.NoError(t, err)
	require.Equal(t, "new@grove.test", newEmail)

	// The token binds the email at issue time; a changed address voids it.
	changed := alice
	changed.Email = "elsewhere@grove.test"
	_, err = k.CheckEmailChangeToken(changed, token)
	requireCheckerError(t, err, KindValidation, localize.MsgTokenWrongEmail)
}
