package services

import (
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
)

func CreateCircle(user models.User, name, color string) (models.Circle, error) {
	var circle models.Circle
	if err := Checks.CheckCircleNameNotTaken(user, name, nil); err != nil {
		return circle, err
	}

	circle = models.Circle{
		OwnerID: &user.ID,
		Name:    name,
		Color:   color,
		Kind:    models.CircleKindCustom,
	}
	return circle, database.C.Create(&circle).Error
}

func UpdateCircle(user models.User, circle models.Circle, name, color *string) error {
	if err := Checks.CheckCanUpdateCircle(user, circle); err != nil {
		return err
	}
	if name != nil {
		if err := Checks.CheckCircleNameNotTaken(user, *name, &circle); err != nil {
			return err
		}
	}

	updates := map[string]any{}
	if name != nil {
		updates["name"] = *name
	}
	if color != nil {
		updates["color"] = *color
	}
	if len(updates) == 0 {
		return nil
	}
	return database.C.Model(&circle).Updates(updates).Error
}

func DeleteCircle(user models.User, circle models.Circle) error {
	if err := Checks.CheckCanUpdateCircle(user, circle); err != nil {
		return err
	}
	return database.C.Delete(&models.Circle{}, circle.ID).Error
}

func ListCircles(user models.User) ([]models.Circle, error) {
	var circles []models.Circle
	if err := database.C.
		Where("owner_id = ? OR kind = ?", user.ID, models.CircleKindWorld).
		Order("id ASC").
		Find(&circles).Error; err != nil {
		return nil, err
	}
	return circles, nil
}
