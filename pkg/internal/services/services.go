// Package services holds the mutation layer: each operation runs its checker
// first and persists only when the check passes.
package services

import (
	"github.com/grovesocial/grove/pkg/internal/checkers"
)

// Checks is the process-wide checker instance, wired in main after the
// database connection is up.
var Checks *checkers.Checkers
