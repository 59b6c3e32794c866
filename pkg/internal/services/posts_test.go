package services

import (
	"testing"

	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/stretchr/testify/require"
)

func TestStaffPostDeleteWritesAuditEntry(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	member := createUser(t, db, "member")
	moderator := createUser(t, db, "moderator")

	community := createCommunity(t, db, creator, "square")
	addMember(t, db, member, community, false)
	addMember(t, db, moderator, community, true)

	post := createCommunityPost(t, db, member, community, "to be removed")
	require.NoError(t, DeletePost(moderator, post))

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	require.True(t, reloaded.IsDeleted)

	entries := communityLogEntries(t, db, community)
	require.Len(t, entries, 1)
	require.Equal(t, models.CommunityLogActionRemovePost, entries[0].Action)
	require.Equal(t, moderator.ID, entries[0].SourceUserID)
	require.NotNil(t, entries[0].TargetUserID)
	require.Equal(t, member.ID, *entries[0].TargetUserID)
}

func TestOwnPostDeleteLeavesNoAuditTrail(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	member := createUser(t, db, "member")

	community := createCommunity(t, db, creator, "square")
	addMember(t, db, member, community, false)

	post := createCommunityPost(t, db, member, community, "mine")
	require.NoError(t, DeletePost(member, post))

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	require.True(t, reloaded.IsDeleted)
	require.Empty(t, communityLogEntries(t, db, community))
}

func TestPublishPostProcessesTextOnce(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	community := createCommunity(t, db, creator, "square")

	text := "launch day #release, details at https://example.com/notes"
	draft, err := CreatePost(creator, &text, nil, &community, nil)
	require.NoError(t, err)
	require.Equal(t, models.PostStatusDraft, draft.Status)

	published, err := PublishPost(creator, draft)
	require.NoError(t, err)
	require.Equal(t, models.PostStatusPublished, published.Status)

	var hashtags []models.Hashtag
	require.NoError(t, db.Model(&published).Association("Hashtags").Find(&hashtags))
	require.Len(t, hashtags, 1)
	require.Equal(t, "release", hashtags[0].Name)

	var links []models.PostLink
	require.NoError(t, db.Where("post_id = ?", published.ID).Find(&links).Error)
	require.Len(t, links, 1)
}
