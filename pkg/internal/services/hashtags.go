package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"mvdan.cc/xurls/v2"
)

// At most this many hashtags are bound per post or comment; the rest of the
// text stays plain.
const maxHashtagsPerContent = 5

var hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

var hashtagPalette = []string{
	"#2196F3", "#4CAF50", "#9C27B0", "#FF9800", "#E91E63",
	"#00BCD4", "#795548", "#607D8B", "#F44336", "#3F51B5",
}

func extractHashtagNames(text string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(text, -1)
	names := lo.Map(matches, func(match []string, _ int) string {
		return strings.ToLower(match[1])
	})
	names = lo.Uniq(names)
	if len(names) > maxHashtagsPerContent {
		names = names[:maxHashtagsPerContent]
	}
	return names
}

func getOrCreateHashtags(names []string) ([]models.Hashtag, error) {
	hashtags := make([]models.Hashtag, 0, len(names))
	for _, name := range names {
		var hashtag models.Hashtag
		if err := database.C.Where("name = ?", name).First(&hashtag).Error; err != nil {
			hashtag = models.Hashtag{
				Name:      name,
				Color:     hashtagPalette[rand.Intn(len(hashtagPalette))],
				TextColor: "#FFFFFF",
			}
			if err := database.C.Create(&hashtag).Error; err != nil {
				return nil, fmt.Errorf("unable to create hashtag %s: %v", name, err)
			}
		}
		hashtags = append(hashtags, hashtag)
	}
	return hashtags, nil
}

func ProcessPostHashtags(post *models.Post) error {
	if post.Text == nil {
		return nil
	}
	hashtags, err := getOrCreateHashtags(extractHashtagNames(*post.Text))
	if err != nil {
		return err
	}
	return database.C.Model(post).Association("Hashtags").Replace(hashtags)
}

func ProcessCommentHashtags(comment *models.PostComment) error {
	if comment.Text == nil {
		return nil
	}
	hashtags, err := getOrCreateHashtags(extractHashtagNames(*comment.Text))
	if err != nil {
		return err
	}
	return database.C.Model(comment).Association("Hashtags").Replace(hashtags)
}

// ProcessPostLinks replaces the post's link rows with the URLs currently
// present in its text.
func ProcessPostLinks(post *models.Post) error {
	if err := database.C.Where("post_id = ?", post.ID).Delete(&models.PostLink{}).Error; err != nil {
		return err
	}
	if post.Text == nil {
		return nil
	}

	urls := lo.Uniq(xurls.Relaxed().FindAllString(*post.Text, -1))
	for _, raw := range urls {
		link := models.PostLink{PostID: post.ID, Link: raw}
		if err := database.C.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func GetHashtagWithName(name string) (models.Hashtag, error) {
	var hashtag models.Hashtag
	if err := database.C.Where("name = ?", strings.ToLower(name)).First(&hashtag).Error; err != nil {
		return hashtag, err
	}
	return hashtag, nil
}

// ProcessAllPostHashtags rebuilds every post's hashtag bindings from its text.
func ProcessAllPostHashtags() error {
	var posts []models.Post
	if err := database.C.Where("text IS NOT NULL").Find(&posts).Error; err != nil {
		return err
	}
	for idx := range posts {
		if err := ProcessPostHashtags(&posts[idx]); err != nil {
			log.Error().Err(err).Uint("post", posts[idx].ID).Msg("Unable to process post hashtags...")
		}
	}
	return nil
}

func ProcessAllPostCommentHashtags() error {
	var comments []models.PostComment
	if err := database.C.Where("text IS NOT NULL").Find(&comments).Error; err != nil {
		return err
	}
	for idx := range comments {
		if err := ProcessCommentHashtags(&comments[idx]); err != nil {
			log.Error().Err(err).Uint("comment", comments[idx].ID).Msg("Unable to process comment hashtags...")
		}
	}
	return nil
}

func ProcessAllPostLinks() error {
	var posts []models.Post
	if err := database.C.Find(&posts).Error; err != nil {
		return err
	}
	for idx := range posts {
		if err := ProcessPostLinks(&posts[idx]); err != nil {
			log.Error().Err(err).Uint("post", posts[idx].ID).Msg("Unable to process post links...")
		}
	}
	return nil
}

// UpdateHashtagColors assigns a palette color to hashtags that have none.
func UpdateHashtagColors() error {
	var hashtags []models.Hashtag
	if err := database.C.Where("color = ?", "").Find(&hashtags).Error; err != nil {
		return err
	}
	for _, hashtag := range hashtags {
		color := hashtagPalette[rand.Intn(len(hashtagPalette))]
		if err := database.C.Model(&hashtag).Update("color", color).Error; err != nil {
			return err
		}
	}
	return nil
}

// UpdateHashtagLuminance recomputes each hashtag's text color from the
// relative luminance of its background color.
func UpdateHashtagLuminance() error {
	var hashtags []models.Hashtag
	if err := database.C.Find(&hashtags).Error; err != nil {
		return err
	}
	for _, hashtag := range hashtags {
		textColor := contrastingTextColor(hashtag.Color)
		if textColor == hashtag.TextColor {
			continue
		}
		if err := database.C.Model(&hashtag).Update("text_color", textColor).Error; err != nil {
			return err
		}
	}
	return nil
}

func contrastingTextColor(hexColor string) string {
	raw := strings.TrimPrefix(hexColor, "#")
	if len(raw) != 6 {
		return "#FFFFFF"
	}
	r, errR := strconv.ParseInt(raw[0:2], 16, 0)
	g, errG := strconv.ParseInt(raw[2:4], 16, 0)
	b, errB := strconv.ParseInt(raw[4:6], 16, 0)
	if errR != nil || errG != nil || errB != nil {
		return "#FFFFFF"
	}

	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}
