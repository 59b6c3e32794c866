package services

import (
	"testing"

	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDeleteOwnCommentLeavesNoAuditTrail(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	commenter := createUser(t, db, "commenter")

	community := createCommunity(t, db, creator, "garden")
	addMember(t, db, commenter, community, false)

	post := createCommunityPost(t, db, creator, community, "hello")
	comment := createComment(t, db, commenter, post, nil)

	require.NoError(t, DeleteComment(commenter, comment.ID, post))

	var count int64
	require.NoError(t, db.Model(&models.PostComment{}).Where("id = ?", comment.ID).Count(&count).Error)
	require.Zero(t, count)
	require.Empty(t, communityLogEntries(t, db, community))
}

func TestStaffCommentDeleteWritesAuditEntry(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	commenter := createUser(t, db, "commenter")
	moderator := createUser(t, db, "moderator")

	community := createCommunity(t, db, creator, "garden")
	addMember(t, db, commenter, community, false)
	addMember(t, db, moderator, community, true)

	post := createCommunityPost(t, db, creator, community, "hello")
	comment := createComment(t, db, commenter, post, nil)

	require.NoError(t, DeleteComment(moderator, comment.ID, post))

	entries := communityLogEntries(t, db, community)
	require.Len(t, entries, 1)
	require.Equal(t, models.CommunityLogActionRemovePostComment, entries[0].Action)
	require.Equal(t, moderator.ID, entries[0].SourceUserID)
	require.NotNil(t, entries[0].TargetUserID)
	require.Equal(t, commenter.ID, *entries[0].TargetUserID)
}

func TestStaffReplyDeleteIsLoggedAsReplyRemoval(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	commenter := createUser(t, db, "commenter")
	moderator := createUser(t, db, "moderator")

	community := createCommunity(t, db, creator, "garden")
	addMember(t, db, commenter, community, false)
	addMember(t, db, moderator, community, true)

	post := createCommunityPost(t, db, creator, community, "hello")
	parent := createComment(t, db, creator, post, nil)
	reply := createComment(t, db, commenter, post, &parent)

	require.NoError(t, DeleteComment(moderator, reply.ID, post))

	entries := communityLogEntries(t, db, community)
	require.Len(t, entries, 1)
	require.Equal(t, models.CommunityLogActionRemovePostCommentReply, entries[0].Action)
}

func TestDeleteCommentRefusedForNonStaff(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	commenter := createUser(t, db, "commenter")
	member := createUser(t, db, "member")

	community := createCommunity(t, db, creator, "garden")
	addMember(t, db, commenter, community, false)
	addMember(t, db, member, community, false)

	post := createCommunityPost(t, db, creator, community, "hello")
	comment := createComment(t, db, commenter, post, nil)

	require.Error(t, DeleteComment(member, comment.ID, post))

	var count int64
	require.NoError(t, db.Model(&models.PostComment{}).Where("id = ?", comment.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
