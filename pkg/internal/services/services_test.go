package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/grovesocial/grove/pkg/internal/checkers"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/security"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	database.C = db
	Checks = checkers.New(db, checkers.Config{MaxFollows: 100, MaxConnections: 100},
		security.NewTokens("unit-test-secret", "HS256", time.Hour))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
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

func createCommunity(t *testing.T, db *gorm.DB, creator models.User, name string) models.Community {
	t.Helper()
	community := models.Community{
		Name:           name,
		Title:          name,
		Type:           models.CommunityTypePublic,
		CreatorID:      creator.ID,
		InvitesEnabled: true,
	}
	require.NoError(t, db.Create(&community).Error)
	require.NoError(t, db.Create(&models.CommunityMembership{
		CommunityID:     community.ID,
		UserID:          creator.ID,
		IsAdministrator: true,
	}).Error)
	return community
}

func addMember(t *testing.T, db *gorm.DB, user models.User, community models.Community, moderator bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.CommunityMembership{
		CommunityID: community.ID,
		UserID:      user.ID,
		IsModerator: moderator,
	}).Error)
}

func createCommunityPost(t *testing.T, db *gorm.DB, creator models.User, community models.Community, text string) models.Post {
	t.Helper()
	post := models.Post{
		CreatorID:       creator.ID,
		CommunityID:     &community.ID,
		Status:          models.PostStatusPublished,
		Text:            &text,
		CommentsEnabled: true,
	}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func createComment(t *testing.T, db *gorm.DB, commenter models.User, post models.Post, parent *models.PostComment) models.PostComment {
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

func communityLogEntries(t *testing.T, db *gorm.DB, community models.Community) []models.CommunityLogEntry {
	t.Helper()
	var entries []models.CommunityLogEntry
	require.NoError(t, db.Where("community_id = ?", community.ID).Order("id ASC").Find(&entries).Error)
	return entries
}
