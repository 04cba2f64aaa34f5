package cli

import (
	"github.com/google/uuid"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
	"github.com/perch-labs/perch-cli/internal/logger"
)

// Ensure logNotifier implements the interface.
var _ driven.Notifier = (*logNotifier)(nil)

// logNotifier routes core notifications to the stderr logger. One-shot
// commands have no status bar, so this is their notification surface.
type logNotifier struct{}

func (logNotifier) Notify(severity domain.Severity, title, message string) {
	id := uuid.NewString()
	switch severity {
	case domain.SeverityError:
		logger.Error("%s: %s", title, message)
	default:
		logger.Info("%s: %s", title, message)
	}
	logger.Debug("Notification %s (%s)", id, severity)
}
