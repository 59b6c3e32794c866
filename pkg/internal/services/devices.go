package services

import (
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
)

func CreateDevice(user models.User, uuid, name string) (models.Device, error) {
	var device models.Device
	if err := Checks.CheckCanCreateDevice(user, uuid); err != nil {
		return device, err
	}

	device = models.Device{
		OwnerID: user.ID,
		UUID:    uuid,
		Name:    name,
	}
	return device, database.C.Create(&device).Error
}

func UpdateDevice(user models.User, uuid, name string) error {
	if err := Checks.CheckDeviceWithUUIDExists(user, uuid); err != nil {
		return err
	}
	return database.C.Model(&models.Device{}).
		Where("owner_id = ? AND uuid = ?", user.ID, uuid).
		Update("name", name).Error
}

func DeleteDevice(user models.User, uuid string) error {
	if err := Checks.CheckDeviceWithUUIDExists(user, uuid); err != nil {
		return err
	}
	return database.C.
		Where("owner_id = ? AND uuid = ?", user.ID, uuid).
		Delete(&models.Device{}).Error
}

func DeleteDevices(user models.User) error {
	return database.C.
		Where("owner_id = ?", user.ID).
		Delete(&models.Device{}).Error
}

func ListDevices(user models.User) ([]models.Device, error) {
	var devices []models.Device
	if err := database.C.
		Where("owner_id = ?", user.ID).
		Order("id ASC").
		Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}
