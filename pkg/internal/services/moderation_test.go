package services

import (
	"testing"

	"github.com/grovesocial/grove/pkg/internal/checkers"
	"github.com/grovesocial/grove/pkg/internal/localize"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func globalModerator(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := createUser(t, db, username)
	require.NoError(t, db.Model(&user).Update("is_global_moderator", true).Error)
	user.IsGlobalModerator = true
	return user
}

func TestReportsShareOneModeratedObject(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	first := createUser(t, db, "first")
	second := createUser(t, db, "second")

	community := createCommunity(t, db, creator, "watch")
	addMember(t, db, first, community, false)
	addMember(t, db, second, community, false)

	category := models.ModerationCategory{Name: "spam", Title: "Spam"}
	require.NoError(t, db.Create(&category).Error)

	post := createCommunityPost(t, db, creator, community, "suspicious")

	require.NoError(t, ReportPost(first, post, category.ID, nil))
	require.NoError(t, ReportPost(second, post, category.ID, nil))

	var objects []models.ModeratedObject
	require.NoError(t, db.Where("post_id = ?", post.ID).Find(&objects).Error)
	require.Len(t, objects, 1)
	require.Equal(t, models.ModeratedObjectStatusPending, objects[0].Status)
	require.NotNil(t, objects[0].CommunityID)
	require.Equal(t, community.ID, *objects[0].CommunityID)

	var reports int64
	require.NoError(t, db.Model(&models.ModerationReport{}).
		Where("moderated_object_id = ?", objects[0].ID).
		Count(&reports).Error)
	require.EqualValues(t, 2, reports)

	// The same reporter cannot file twice.
	require.Error(t, ReportPost(first, post, category.ID, nil))
}

func TestReportModeratedObjectDirectly(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	first := createUser(t, db, "first")
	second := createUser(t, db, "second")

	community := createCommunity(t, db, creator, "watch")
	addMember(t, db, first, community, false)
	addMember(t, db, second, community, false)

	category := models.ModerationCategory{Name: "spam", Title: "Spam"}
	require.NoError(t, db.Create(&category).Error)

	post := createCommunityPost(t, db, creator, community, "suspicious")
	require.NoError(t, ReportPost(first, post, category.ID, nil))

	mo, err := GetModeratedObject(db, mustModeratedObjectID(t, db, post.ID))
	require.NoError(t, err)

	// A second reporter joins the case without touching the wrapped post.
	require.NoError(t, ReportModeratedObject(second, mo, category.ID, nil))

	var reports int64
	require.NoError(t, db.Model(&models.ModerationReport{}).
		Where("moderated_object_id = ?", mo.ID).
		Count(&reports).Error)
	require.EqualValues(t, 2, reports)

	// Filing twice fails before the insert, not on the unique index.
	err = ReportModeratedObject(second, mo, category.ID, nil)
	var checkErr *checkers.Error
	require.ErrorAs(t, err, &checkErr)
	require.Equal(t, checkers.KindValidation, checkErr.Kind)
	require.Equal(t, localize.MsgAlreadyReportedObject, checkErr.Key)
}

func mustModeratedObjectID(t *testing.T, db *gorm.DB, postID uint) uint {
	t.Helper()
	var mo models.ModeratedObject
	require.NoError(t, db.Where("post_id = ?", postID).First(&mo).Error)
	return mo.ID
}

func TestVerifyApprovedPostTakesItDown(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	global := globalModerator(t, db, "global")

	community := createCommunity(t, db, creator, "watch")
	category := models.ModerationCategory{Name: "spam", Title: "Spam"}
	require.NoError(t, db.Create(&category).Error)

	post := createCommunityPost(t, db, creator, community, "bad")
	mo := models.ModeratedObject{
		PostID:      &post.ID,
		CommunityID: &community.ID,
		CategoryID:  category.ID,
		Status:      models.ModeratedObjectStatusPending,
	}
	require.NoError(t, db.Create(&mo).Error)

	require.NoError(t, ApproveModeratedObject(global, mo))

	loaded, err := GetModeratedObject(db, mo.ID)
	require.NoError(t, err)
	require.Equal(t, models.ModeratedObjectStatusApproved, loaded.Status)

	require.NoError(t, VerifyModeratedObject(global, loaded))

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	require.True(t, reloaded.IsDeleted)

	// Unverify restores the content.
	loaded, err = GetModeratedObject(db, mo.ID)
	require.NoError(t, err)
	require.True(t, loaded.Verified)
	require.NoError(t, UnverifyModeratedObject(global, loaded))

	require.NoError(t, db.First(&reloaded, post.ID).Error)
	require.False(t, reloaded.IsDeleted)
}

func TestVerifyRejectedObjectKeepsContent(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	global := globalModerator(t, db, "global")

	community := createCommunity(t, db, creator, "watch")
	category := models.ModerationCategory{Name: "spam", Title: "Spam"}
	require.NoError(t, db.Create(&category).Error)

	post := createCommunityPost(t, db, creator, community, "fine")
	mo := models.ModeratedObject{
		PostID:      &post.ID,
		CommunityID: &community.ID,
		CategoryID:  category.ID,
		Status:      models.ModeratedObjectStatusPending,
	}
	require.NoError(t, db.Create(&mo).Error)

	require.NoError(t, RejectModeratedObject(global, mo))

	loaded, err := GetModeratedObject(db, mo.ID)
	require.NoError(t, err)
	require.NoError(t, VerifyModeratedObject(global, loaded))

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	require.False(t, reloaded.IsDeleted)
}

func TestVerifyApprovedCommentRemovesAndRestoresIt(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	commenter := createUser(t, db, "commenter")
	global := globalModerator(t, db, "global")

	community := createCommunity(t, db, creator, "watch")
	addMember(t, db, commenter, community, false)
	category := models.ModerationCategory{Name: "spam", Title: "Spam"}
	require.NoError(t, db.Create(&category).Error)

	post := createCommunityPost(t, db, creator, community, "hello")
	comment := createComment(t, db, commenter, post, nil)
	mo := models.ModeratedObject{
		PostCommentID: &comment.ID,
		CommunityID:   &community.ID,
		CategoryID:    category.ID,
		Status:        models.ModeratedObjectStatusApproved,
	}
	require.NoError(t, db.Create(&mo).Error)

	loaded, err := GetModeratedObject(db, mo.ID)
	require.NoError(t, err)
	require.NoError(t, VerifyModeratedObject(global, loaded))

	var count int64
	require.NoError(t, db.Model(&models.PostComment{}).Where("id = ?", comment.ID).Count(&count).Error)
	require.Zero(t, count)

	loaded, err = GetModeratedObject(db, mo.ID)
	require.NoError(t, err)
	require.NoError(t, UnverifyModeratedObject(global, loaded))

	require.NoError(t, db.Model(&models.PostComment{}).Where("id = ?", comment.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
