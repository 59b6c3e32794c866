package services

import (
	"fmt"

	"github.com/grovesocial/grove/pkg/internal/database"
)

// WorkerHealthCheck verifies the database is reachable. Exits non-zero via
// the caller when the round trip fails, so orchestrators can restart workers.
func WorkerHealthCheck() error {
	sqlDB, err := database.C.DB()
	if err != nil {
		return fmt.Errorf("unable to resolve database handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %v", err)
	}
	return nil
}
