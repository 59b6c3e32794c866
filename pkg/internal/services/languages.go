package services

import (
	"strings"
	"sync"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog/log"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectLanguage returns the lowercased ISO 639-1 code of the given text, or
// an empty string when detection is inconclusive.
func DetectLanguage(content string) string {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithLowAccuracyMode().
			Build()
	})

	if len(strings.TrimSpace(content)) == 0 {
		return ""
	}
	language, ok := detector.DetectLanguageOf(content)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}

func GetLanguageWithCode(code string) (models.Language, error) {
	var language models.Language
	if err := database.C.Where("code = ?", strings.ToLower(code)).First(&language).Error; err != nil {
		return language, err
	}
	return language, nil
}

// AssignPostLanguage detects and stores the post's language. Detection
// failures are logged and swallowed; a post without a language just cannot be
// translated.
func AssignPostLanguage(post *models.Post) {
	if post.Text == nil {
		return
	}
	code := DetectLanguage(*post.Text)
	if code == "" {
		return
	}
	language, err := GetLanguageWithCode(code)
	if err != nil {
		log.Warn().Str("code", code).Uint("post", post.ID).Msg("Detected language is not in the languages table...")
		return
	}
	if err := database.C.Model(post).Update("language_id", language.ID).Error; err != nil {
		log.Error().Err(err).Uint("post", post.ID).Msg("Unable to assign post language...")
		return
	}
	post.LanguageID = &language.ID
}

func AssignCommentLanguage(comment *models.PostComment) {
	if comment.Text == nil {
		return
	}
	code := DetectLanguage(*comment.Text)
	if code == "" {
		return
	}
	language, err := GetLanguageWithCode(code)
	if err != nil {
		return
	}
	if err := database.C.Model(comment).Update("language_id", language.ID).Error; err != nil {
		log.Error().Err(err).Uint("comment", comment.ID).Msg("Unable to assign comment language...")
		return
	}
	comment.LanguageID = &language.ID
}

// AssignMissingLanguages backfills language assignments for rows created
// before detection was in place. One-shot maintenance pass.
func AssignMissingLanguages() error {
	var posts []models.Post
	if err := database.C.
		Where("language_id IS NULL AND text IS NOT NULL").
		Find(&posts).Error; err != nil {
		return err
	}
	for idx := range posts {
		AssignPostLanguage(&posts[idx])
	}

	var comments []models.PostComment
	if err := database.C.
		Where("language_id IS NULL AND text IS NOT NULL").
		Find(&comments).Error; err != nil {
		return err
	}
	for idx := range comments {
		AssignCommentLanguage(&comments[idx])
	}
	return nil
}
