package services

import (
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
)

func CreateList(user models.User, name string, emojiID *uint) (models.List, error) {
	var list models.List
	if err := Checks.CheckListNameNotTaken(user, name, nil); err != nil {
		return list, err
	}

	list = models.List{
		OwnerID: user.ID,
		Name:    name,
		EmojiID: emojiID,
	}
	return list, database.C.Create(&list).Error
}

func UpdateList(user models.User, list models.List, name *string, emojiID *uint) error {
	if err := Checks.CheckCanUpdateList(user, list); err != nil {
		return err
	}
	if name != nil {
		if err := Checks.CheckListNameNotTaken(user, *name, &list); err != nil {
			return err
		}
	}

	updates := map[string]any{}
	if name != nil {
		updates["name"] = *name
	}
	if emojiID != nil {
		updates["emoji_id"] = *emojiID
	}
	if len(updates) == 0 {
		return nil
	}
	return database.C.Model(&list).Updates(updates).Error
}

func DeleteList(user models.User, list models.List) error {
	if err := Checks.CheckCanUpdateList(user, list); err != nil {
		return err
	}

	tx := database.C.Begin()
	if err := tx.Model(&models.Follow{}).
		Where("list_id = ?", list.ID).
		Update("list_id", nil).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.List{}, list.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func ListLists(user models.User) ([]models.List, error) {
	var lists []models.List
	if err := database.C.
		Where("owner_id = ?", user.ID).
		Order("id ASC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}
