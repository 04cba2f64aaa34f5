package domain

// Severity grades a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a short user-facing message emitted by the core for
// search failures, file-operation outcomes, and index changes.
//
// The ID is assigned by the notifier adapter, not here, so domain stays
// free of ID-generation concerns.
type Notification struct {
	// ID uniquely identifies the notification for display dedup.
	ID string

	// Severity grades the message.
	Severity Severity

	// Title is a short heading.
	Title string

	// Message is the human-readable detail.
	Message string
}
