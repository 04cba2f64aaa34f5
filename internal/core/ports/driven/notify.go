package driven

import "github.com/perch-labs/perch-cli/internal/core/domain"

// Notifier receives user-visible notifications from the core: search
// failures, file-operation outcomes, index changes. Implementations
// assign the notification ID and must not block.
type Notifier interface {
	Notify(severity domain.Severity, title, message string)
}
