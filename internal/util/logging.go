// Package util provides small helpers shared by the store, the TUI and the
// CLI: filesystem locations, error logging, passphrase checks and goal filter
// parsing.
package util

import (
	"go.uber.org/zap"

	"github.com/akyairhashvil/zenith/internal/logging"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		logging.L().Error(context, zap.Error(err))
	}
}
