package services

import (
	"errors"
	"fmt"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"gorm.io/gorm"
)

// ConnectWithUser creates the half-connection from user to target, attaching
// it to the user's connections circle plus any given circles.
func ConnectWithUser(user, target models.User, circleIDs []uint) (models.Connection, error) {
	var connection models.Connection
	if err := Checks.CheckCanConnectWithUser(user, target); err != nil {
		return connection, err
	}
	if err := Checks.CheckCanUpdateConnectionCircles(user, circleIDs); err != nil {
		return connection, err
	}

	circles, err := circlesWithConnectionsCircle(user, circleIDs)
	if err != nil {
		return connection, err
	}

	connection = models.Connection{
		UserID:       user.ID,
		TargetUserID: target.ID,
		Circles:      circles,
	}
	err = database.C.Create(&connection).Error
	return connection, err
}

func circlesWithConnectionsCircle(user models.User, circleIDs []uint) ([]models.Circle, error) {
	var circles []models.Circle
	if len(circleIDs) > 0 {
		if err := database.C.Where("id IN ?", circleIDs).Find(&circles).Error; err != nil {
			return nil, fmt.Errorf("unable to load circles: %v", err)
		}
	}

	var connections models.Circle
	err := database.C.
		Where("owner_id = ? AND kind = ?", user.ID, models.CircleKindConnections).
		First(&connections).Error
	if err == nil {
		circles = append(circles, connections)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("unable to load connections circle: %v", err)
	}
	return circles, nil
}

func UpdateConnectionCircles(user models.User, target models.User, circleIDs []uint) (models.Connection, error) {
	var connection models.Connection
	if err := Checks.CheckCanUpdateConnectionCircles(user, circleIDs); err != nil {
		return connection, err
	}

	if err := database.C.
		Where("user_id = ? AND target_user_id = ?", user.ID, target.ID).
		First(&connection).Error; err != nil {
		return connection, fmt.Errorf("unable to get connection: %v", err)
	}

	circles, err := circlesWithConnectionsCircle(user, circleIDs)
	if err != nil {
		return connection, err
	}
	if err := database.C.Model(&connection).Association("Circles").Replace(circles); err != nil {
		return connection, fmt.Errorf("unable to update connection circles: %v", err)
	}
	return connection, nil
}

func DisconnectFromUser(user, target models.User) error {
	var connection models.Connection
	if err := database.C.
		Where("user_id = ? AND target_user_id = ?", user.ID, target.ID).
		First(&connection).Error; err != nil {
		return fmt.Errorf("connection does not exist")
	}

	tx := database.C.Begin()
	if err := tx.Model(&connection).Association("Circles").Clear(); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&connection).Error; err != nil {
		tx.Rollback()
		return err
	}
	// The other half survives until its owner disconnects too.
	return tx.Commit().Error
}
