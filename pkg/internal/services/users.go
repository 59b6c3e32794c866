package services

import (
	"fmt"
	"strings"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetUser(tx *gorm.DB, id uint) (models.User, error) {
	var user models.User
	if err := tx.Where("users.id = ?", id).First(&user).Error; err != nil {
		return user, err
	}
	return user, nil
}

func GetUserWithUsername(tx *gorm.DB, username string) (models.User, error) {
	var user models.User
	if err := tx.Where("username = ?", strings.ToLower(username)).First(&user).Error; err != nil {
		return user, err
	}
	return user, nil
}

func NewUser(username, email, password string) (models.User, error) {
	var user models.User
	if err := Checks.CheckUsernameNotTaken(user, username); err != nil {
		return user, err
	}
	if err := Checks.CheckEmailNotTaken(user, email); err != nil {
		return user, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user, fmt.Errorf("unable to hash password: %v", err)
	}

	user = models.User{
		Username: strings.ToLower(username),
		Email:    strings.ToLower(email),
		Password: string(hash),
	}

	tx := database.C.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return user, err
	}
	// Every account starts with its own connections circle.
	circle := models.Circle{
		OwnerID: &user.ID,
		Name:    "Connections",
		Kind:    models.CircleKindConnections,
	}
	if err := tx.Create(&circle).Error; err != nil {
		tx.Rollback()
		return user, err
	}
	return user, tx.Commit().Error
}

func SetUserLanguage(user models.User, languageID uint) error {
	if err := Checks.CheckCanSetLanguage(languageID); err != nil {
		return err
	}
	return database.C.Model(&user).Update("translation_language_id", languageID).Error
}

func AcceptGuidelines(user models.User) error {
	if err := Checks.CheckCanAcceptGuidelines(user); err != nil {
		return err
	}
	return database.C.Model(&user).Update("are_guidelines_accepted", true).Error
}

func UpdateUserVisibility(user models.User, visibility string) error {
	return database.C.Model(&user).Update("visibility", visibility).Error
}

func RequestPasswordReset(user models.User) (string, error) {
	return Checks.Tokens().SignPasswordReset(user.ID)
}

func ResetPassword(user models.User, token, newPassword string) error {
	userID, err := Checks.CheckPasswordResetToken(user, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("unable to hash password: %v", err)
	}
	return database.C.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", string(hash)).Error
}

func RequestEmailChange(user models.User, newEmail string) (string, error) {
	if err := Checks.CheckEmailNotTaken(user, newEmail); err != nil {
		return "", err
	}
	return Checks.Tokens().SignChangeEmail(user.ID, user.Email, strings.ToLower(newEmail))
}

func ChangeEmail(user models.User, token string) error {
	newEmail, err := Checks.CheckEmailChangeToken(user, token)
	if err != nil {
		return err
	}
	if err := Checks.CheckEmailNotTaken(user, newEmail); err != nil {
		return err
	}
	return database.C.Model(&user).Update("email", newEmail).Error
}

// NormalizeUsernames lowercases every username in place. One-shot maintenance
// pass for rows imported before case folding was enforced.
func NormalizeUsernames() error {
	var users []models.User
	if err := database.C.Find(&users).Error; err != nil {
		return err
	}
	for _, user := range users {
		folded := strings.ToLower(user.Username)
		if folded == user.Username {
			continue
		}
		if err := database.C.Model(&user).Update("username", folded).Error; err != nil {
			log.Error().Err(err).Str("username", user.Username).Msg("Unable to normalize username...")
			continue
		}
	}
	return nil
}
