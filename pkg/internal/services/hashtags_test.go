package services

import (
	"testing"

	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/stretchr/testify/require"
)

func TestExtractHashtagNames(t *testing.T) {
	names := extractHashtagNames("Sunset at the #Beach with #friends #beach")
	require.Equal(t, []string{"beach", "friends"}, names)

	require.Empty(t, extractHashtagNames("no tags in here"))

	// Unicode letters and digits count, punctuation ends the tag.
	names = extractHashtagNames("#café2024, right?")
	require.Equal(t, []string{"café2024"}, names)
}

func TestExtractHashtagNamesCapped(t *testing.T) {
	names := extractHashtagNames("#one #two #three #four #five #six #seven")
	require.Len(t, names, maxHashtagsPerContent)
	require.Equal(t, []string{"one", "two", "three", "four", "five"}, names)
}

func TestContrastingTextColor(t *testing.T) {
	require.Equal(t, "#000000", contrastingTextColor("#FFFFFF"))
	require.Equal(t, "#FFFFFF", contrastingTextColor("#000000"))
	require.Equal(t, "#FFFFFF", contrastingTextColor("#2196F3"))
	require.Equal(t, "#000000", contrastingTextColor("#FFEB3B"))
	// Unparseable input falls back to white text.
	require.Equal(t, "#FFFFFF", contrastingTextColor("teal"))
}

func TestProcessPostHashtags(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	community := createCommunity(t, db, creator, "tags")

	post := createCommunityPost(t, db, creator, community, "shots from the #beach at #dawn")
	require.NoError(t, ProcessPostHashtags(&post))

	var bound []models.Hashtag
	require.NoError(t, db.Model(&post).Association("Hashtags").Find(&bound))
	require.Len(t, bound, 2)

	// Reprocessing after an edit replaces the bindings.
	edited := "only the #beach now"
	require.NoError(t, db.Model(&post).Update("text", edited).Error)
	post.Text = &edited
	require.NoError(t, ProcessPostHashtags(&post))

	require.NoError(t, db.Model(&post).Association("Hashtags").Find(&bound))
	require.Len(t, bound, 1)
	require.Equal(t, "beach", bound[0].Name)

	// The dawn hashtag row itself survives for other content.
	var count int64
	require.NoError(t, db.Model(&models.Hashtag{}).Where("name = ?", "dawn").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProcessPostLinks(t *testing.T) {
	db := newTestDB(t)
	creator := createUser(t, db, "creator")
	community := createCommunity(t, db, creator, "links")

	post := createCommunityPost(t, db, creator, community,
		"read https://example.com/a and https://example.com/b plus https://example.com/a again")
	require.NoError(t, ProcessPostLinks(&post))

	var links []models.PostLink
	require.NoError(t, db.Where("post_id = ?", post.ID).Order("id ASC").Find(&links).Error)
	require.Len(t, links, 2)

	edited := "now only https://example.com/c"
	require.NoError(t, db.Model(&post).Update("text", edited).Error)
	post.Text = &edited
	require.NoError(t, ProcessPostLinks(&post))

	require.NoError(t, db.Where("post_id = ?", post.ID).Find(&links).Error)
	require.Len(t, links, 1)
	require.Equal(t, "https://example.com/c", links[0].Link)
}
