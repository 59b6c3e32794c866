package checkers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/security"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestCheckers(t *testing.T) *Checkers {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	// Query fragments build their subqueries off the process-wide handle.
	database.C = db

	tokens := security.NewTokens("unit-test-secret", "HS256", time.Hour)
	return New(db, Config{MaxFollows: 3, MaxConnections: 3}, tokens)
}

func requireCheckerError(t *testing.T, err error, kind ErrorKind, key string) {
	t.Helper()
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, kind, cerr.Kind)
	require.Equal(t, key, cerr.Key)
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username:    username,
		Email:       username + "@grove.test",
		Visibility:  models.UserVisibilityPublic,
		InviteCount: 5,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedPrivateUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := seedUser(t, db, username)
	require.NoError(t, db.Model(&user).Update("visibility", models.UserVisibilityPrivate).Error)
	user.Visibility = models.UserVisibilityPrivate
	return user
}

func seedWorldCircle(t *testing.T, db *gorm.DB) models.Circle {
	t.Helper()
	circle := models.Circle{Name: "World", Kind: models.CircleKindWorld}
	require.NoError(t, db.Create(&circle).Error)
	return circle
}

func seedCircle(t *testing.T, db *gorm.DB, owner models.User, name string) models.Circle {
	t.Helper()
	circle := models.Circle{OwnerID: &owner.ID, Name: name, Kind: models.CircleKindCustom}
	require.NoError(t, db.Create(&circle).Error)
	return circle
}

func seedCommunity(t *testing.T, db *gorm.DB, creator models.User, name, communityType string) models.Community {
	t.Helper()
	community := models.Community{
		Name:           name,
		Title:          name,
		Type:           communityType,
		CreatorID:      creator.ID,
		InvitesEnabled: true,
	}
	require.NoError(t, db.Create(&community).Error)
	membership := models.CommunityMembership{
		CommunityID:     community.ID,
		UserID:          creator.ID,
		IsAdministrator: true,
	}
	require.NoError(t, db.Create(&membership).Error)
	return community
}

func joinCommunity(t *testing.T, db *gorm.DB, user models.User, community models.Community) {
	t.Helper()
	membership := models.CommunityMembership{CommunityID: community.ID, UserID: user.ID}
	require.NoError(t, db.Create(&membership).Error)
}

func makeModerator(t *testing.T, db *gorm.DB, user models.User, community models.Community) {
	t.Helper()
	require.NoError(t, db.Model(&models.CommunityMembership{}).
		Where("community_id = ? AND user_id = ?", community.ID, user.ID).
		Update("is_moderator", true).Error)
}

func seedPublishedPost(t *testing.T, db *gorm.DB, creator models.User, community *models.Community, circles ...models.Circle) models.Post {
	t.Helper()
	text := "hello"
	post := models.Post{
		CreatorID: creator.ID,
		Status:    models.PostStatusPublished,
		Text:      &text,
	}
	if community != nil {
		post.CommunityID = &community.ID
	}
	post.CommentsEnabled = true
	require.NoError(t, db.Create(&post).Error)
	if len(circles) > 0 {
		require.NoError(t, db.Model(&post).Association("Circles").Append(&circles))
	}
	return post
}

func seedComment(t *testing.T, db *gorm.DB, commenter models.User, post models.Post, parent *models.PostComment) models.PostComment {
	t.Helper()
	text := "a comment"
	comment := models.PostComment{
		PostID:      post.ID,
		CommenterID: commenter.ID,
		Text:        &text,
	}
	if parent != nil {
		comment.ParentCommentID = &parent.ID
	}
	require.NoError(t, db.Create(&comment).Error)
	return comment
}
