package services

import (
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
)

func ListNotifications(user models.User, take int, maxID uint) ([]models.Notification, error) {
	if take <= 0 || take > 100 {
		take = 100
	}
	tx := database.C.Where("owner_id = ?", user.ID)
	if maxID > 0 {
		tx = tx.Where("id < ?", maxID)
	}

	var notifications []models.Notification
	if err := tx.Order("id DESC").Limit(take).Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func ReadNotification(user models.User, notificationID uint) error {
	if err := Checks.CheckNotificationOwned(user, notificationID); err != nil {
		return err
	}
	return database.C.Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Update("read", true).Error
}

func ReadAllNotifications(user models.User) error {
	return database.C.Model(&models.Notification{}).
		Where("owner_id = ? AND read = ?", user.ID, false).
		Update("read", true).Error
}

func DeleteNotification(user models.User, notificationID uint) error {
	if err := Checks.CheckNotificationOwned(user, notificationID); err != nil {
		return err
	}
	return database.C.Delete(&models.Notification{}, notificationID).Error
}

func DeleteNotifications(user models.User) error {
	return database.C.
		Where("owner_id = ?", user.ID).
		Delete(&models.Notification{}).Error
}

func EnableNewPostNotificationsForUser(user, target models.User) error {
	if err := Checks.CheckCanEnableNewPostNotificationsForUser(user, target); err != nil {
		return err
	}
	return database.C.Create(&models.UserNotificationSubscription{
		SubscriberID: user.ID,
		TargetUserID: target.ID,
	}).Error
}

func DisableNewPostNotificationsForUser(user, target models.User) error {
	if err := Checks.CheckCanDisableNewPostNotificationsForUser(user, target); err != nil {
		return err
	}
	return database.C.
		Where("subscriber_id = ? AND target_user_id = ?", user.ID, target.ID).
		Delete(&models.UserNotificationSubscription{}).Error
}
