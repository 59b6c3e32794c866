package checkers

import (
	"testing"

	"github.com/grovesocial/grove/pkg/internal/localize"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/stretchr/testify/require"
)

func seedModerationCategory(t *testing.T, k *Checkers) models.ModerationCategory {
	t.Helper()
	category := models.ModerationCategory{Name: "spam", Title: "Spam", Severity: 1}
	require.NoError(t, k.db.Create(&category).Error)
	return category
}

func seedModeratedPost(t *testing.T, k *Checkers, post models.Post, category models.ModerationCategory) models.ModeratedObject {
	t.Helper()
	mo := models.ModeratedObject{
		PostID:      &post.ID,
		CommunityID: post.CommunityID,
		CategoryID:  category.ID,
		Status:      models.ModeratedObjectStatusPending,
	}
	require.NoError(t, k.db.Create(&mo).Error)
	return mo
}

func TestModeratedObjectAuthority(t *testing.T) {
	k := newTestCheckers(t)
	creator := seedUser(t, k.db, "creator")
	moderator := seedUser(t, k.db, "moderator")
	member := seedUser(t, k.db, "member")
	global := seedUser(t, k.db, "global")
	require.NoError(t, k.db.Model(&global).Update("is_global_moderator", true).Error)
	global.IsGlobalModerator = true

	community := seedCommunity(t, k.db, creator, "watch", models.CommunityTypePublic)
	joinCommunity(t, k.db, moderator, community)
	joinCommunity(t, k.db, member, community)
	makeModerator(t, k.db, moderator, community)

	category := seedModerationCategory(t, k)
	post := seedPublishedPost(t, k.db, member, &community)
	mo := seedModeratedPost(t, k, post, category)

	require.NoError(t, k.CheckCanApproveModeratedObject(moderator, mo))
	require.NoError(t, k.CheckCanApproveModeratedObject(global, mo))
	requireCheckerError(t,
		k.CheckCanApproveModeratedObject(member, mo),
		KindPermissionDenied, localize.MsgModeratedObjectUpdateDenied)
}

func TestModeratedObjectOnlyPostsAndComments(t *testing.T) {
	k := newTestCheckers(t)
	global := seedUser(t, k.db, "global")
	require.NoError(t, k.db.Model(&global).Update("is_global_moderator", true).Error)
	global.IsGlobalModerator = true

	target := seedUser(t, k.db, "target")
	category := seedModerationCategory(t, k)
	mo := models.ModeratedObject{
		UserID:     &target.ID,
		CategoryID: category.ID,
		Status:     models.ModeratedObjectStatusPending,
	}
	require.NoError(t, k.db.Create(&mo).Error)

	// Wrapped users exist for report bookkeeping only; the moderation
	// authority refuses to act on them.
	requireCheckerError(t,
		k.CheckCanApproveModeratedObject(global, mo),
		KindValidation, localize.MsgOnlyPostsAndComments)
}

func TestVerifyModeratedObjectOrdering(t *testing.T) {
	k := newTestCheckers(t)
	creator := seedUser(t, k.db, "creator")
	global := seedUser(t, k.db, "global")
	require.NoError(t, k.db.Model(&global).Update("is_global_moderator", true).Error)
	global.IsGlobalModerator = true

	community := seedCommunity(t, k.db, creator, "patrol", models.CommunityTypePublic)
	category := seedModerationCategory(t, k)
	post := seedPublishedPost(t, k.db, creator, &community)
	mo := seedModeratedPost(t, k, post, category)

	// Verification requires a settled verdict and global authority.
	requireCheckerError(t,
		k.CheckCanVerifyModeratedObject(creator, mo),
		KindPermissionDenied, localize.MsgGlobalModeratorOnly)
	requireCheckerError(t,
		k.CheckCanVerifyModeratedObject(global, mo),
		KindValidation, localize.MsgCannotVerifyPending)

	mo.Status = models.ModeratedObjectStatusApproved
	require.NoError(t, k.CheckCanVerifyModeratedObject(global, mo))

	mo.Verified = true
	requireCheckerError(t,
		k.CheckCanVerifyModeratedObject(global, mo),
		KindValidation, localize.MsgModeratedObjectVerified)
	require.NoError(t, k.CheckCanUnverifyModeratedObject(global, mo))

	mo.Verified = false
	requireCheckerError(t,
		k.CheckCanUnverifyModeratedObject(global, mo),
		KindValidation, localize.MsgNotVerified)
}

func TestVerifiedObjectIsImmutable(t *testing.T) {
	k := newTestCheckers(t)
	creator := seedUser(t, k.db, "creator")
	global := seedUser(t, k.db, "global")
	require.NoError(t, k.db.Model(&global).Update("is_global_moderator", true).Error)
	global.IsGlobalModerator = true

	community := seedCommunity(t, k.db, creator, "locked", models.CommunityTypePublic)
	category := seedModerationCategory(t, k)
	post := seedPublishedPost(t, k.db, creator, &community)
	mo := seedModeratedPost(t, k, post, category)
	mo.Status = models.ModeratedObjectStatusApproved
	mo.Verified = true

	requireCheckerError(t,
		k.CheckCanUpdateModeratedObject(global, mo),
		KindValidation, localize.MsgModeratedObjectVerified)
	requireCheckerError(t,
		k.CheckCanApproveModeratedObject(global, mo),
		KindValidation, localize.MsgModeratedObjectVerified)
}

func TestNonPendingEditNeedsGlobalModerator(t *testing.T) {
	k := newTestCheckers(t)
	creator := seedUser(t, k.db, "creator")
	moderator := seedUser(t, k.db, "moderator")

	community := seedCommunity(t, k.db, creator, "redo", models.CommunityTypePublic)
	joinCommunity(t, k.db, moderator, community)
	makeModerator(t, k.db, moderator, community)

	category := seedModerationCategory(t, k)
	post := seedPublishedPost(t, k.db, creator, &community)
	mo := seedModeratedPost(t, k, post, category)
	mo.Status = models.ModeratedObjectStatusRejected

	requireCheckerError(t,
		k.CheckCanUpdateModeratedObject(moderator, mo),
		KindValidation, localize.MsgModeratedObjectNotPendingEdit)
}

func TestReportChecks(t *testing.T) {
	k := newTestCheckers(t)
	alice := seedUser(t, k.db, "alice")
	bob := seedUser(t, k.db, "bob")
	world := seedWorldCircle(t, k.db)

	post := seedPublishedPost(t, k.db, alice, nil, world)
	requireCheckerError(t,
		k.CheckCanReportPost(alice, post),
		KindValidation, localize.MsgCannotReportOwnPost)
	require.NoError(t, k.CheckCanReportPost(bob, post))

	category := seedModerationCategory(t, k)
	mo := seedModeratedPost(t, k, post, category)
	report := models.ModerationReport{
		ModeratedObjectID: mo.ID,
		ReporterID:        bob.ID,
		CategoryID:        category.ID,
	}
	require.NoError(t, k.db.Create(&report).Error)
	requireCheckerError(t,
		k.CheckCanReportPost(bob, post),
		KindValidation, localize.MsgPostAlreadyReported)

	requireCheckerError(t,
		k.CheckCanReportUser(alice, alice),
		KindValidation, localize.MsgCannotReportSelf)
	require.NoError(t, k.CheckCanReportUser(bob, alice))

	community := seedCommunity(t, k.db, alice, "garden", models.CommunityTypePublic)
	requireCheckerError(t,
		k.CheckCanReportCommunity(alice, community),
		KindValidation, localize.MsgCannotReportOwnCommunity)
	require.NoError(t, k.CheckCanReportCommunity(bob, community))

	// Reporting the case itself counts earlier reports by the same reporter.
	requireCheckerError(t,
		k.CheckCanReportModeratedObject(bob, mo),
		KindValidation, localize.MsgAlreadyReportedObject)
	require.NoError(t, k.CheckCanReportModeratedObject(alice, mo))
}

func TestModeratedObjectListingGates(t *testing.T) {
	k := newTestCheckers(t)
	creator := seedUser(t, k.db, "creator")
	member := seedUser(t, k.db, "member")
	global := seedUser(t, k.db, "global")
	require.NoError(t, k.db.Model(&global).Update("is_global_moderator", true).Error)
	global.IsGlobalModerator = true

	community := seedCommunity(t, k.db, creator, "board", models.CommunityTypePublic)
	joinCommunity(t, k.db, member, community)

	require.NoError(t, k.CheckCanGetGlobalModeratedObjects(global))
	requireCheckerError(t,
		k.CheckCanGetGlobalModeratedObjects(member),
		KindPermissionDenied, localize.MsgGlobalModeratedListDenied)

	require.NoError(t, k.CheckCanGetCommunityModeratedObjects(creator, community))
	requireCheckerError(t,
		k.CheckCanGetCommunityModeratedObjects(member, community),
		KindPermissionDenied, localize.MsgCommunityModeratedListDenied)
}
