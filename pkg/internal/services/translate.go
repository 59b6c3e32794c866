package services

import (
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
)

// Translator turns text from a source language into a target language.
// Delivery is provided by the outer platform; the service layer only
// enforces the preconditions and assembles the request.
type Translator interface {
	Translate(text, sourceCode, targetCode string) (string, error)
}

// TranslationRequest is a precondition-checked unit of work for a Translator.
type TranslationRequest struct {
	Text       string `json:"text"`
	SourceCode string `json:"source_code"`
	TargetCode string `json:"target_code"`
}

func buildTranslationRequest(user models.User, text string, languageID uint) (TranslationRequest, error) {
	var request TranslationRequest

	var source models.Language
	if err := database.C.First(&source, languageID).Error; err != nil {
		return request, err
	}
	var target models.Language
	if err := database.C.First(&target, *user.TranslationLanguageID).Error; err != nil {
		return request, err
	}

	request = TranslationRequest{
		Text:       text,
		SourceCode: source.Code,
		TargetCode: target.Code,
	}
	return request, nil
}

func TranslatePost(user models.User, post models.Post) (TranslationRequest, error) {
	if err := Checks.CheckCanTranslatePost(user, post); err != nil {
		return TranslationRequest{}, err
	}
	return buildTranslationRequest(user, *post.Text, *post.LanguageID)
}

func TranslateComment(user models.User, comment models.PostComment) (TranslationRequest, error) {
	if err := Checks.CheckCanTranslateComment(user, comment); err != nil {
		return TranslationRequest{}, err
	}
	return buildTranslationRequest(user, *comment.Text, *comment.LanguageID)
}
