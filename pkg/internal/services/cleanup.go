package services

import (
	"time"

	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup purges rows nobody can reach anymore: posts that have
// been flagged deleted for over thirty days, read notifications older than
// ninety days, and soft-deleted rows past their grace period.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-30 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto database cleanup...")
			continue
		}
		count += tx.RowsAffected
	}

	if tx := database.C.Unscoped().
		Where("is_deleted = ? AND updated_at < ?", true, deadline).
		Delete(&models.Post{}); tx.Error == nil {
		count += tx.RowsAffected
	}

	notificationDeadline := time.Now().Add(-90 * 24 * time.Hour)
	if tx := database.C.Unscoped().
		Where("read = ? AND created_at < ?", true, notificationDeadline).
		Delete(&models.Notification{}); tx.Error == nil {
		count += tx.RowsAffected
	}

	log.Info().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
