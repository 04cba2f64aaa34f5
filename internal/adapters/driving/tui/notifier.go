package tui

import (
	"github.com/google/uuid"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
)

// Ensure Notifier implements the interface.
var _ driven.Notifier = (*Notifier)(nil)

// Notifier buffers core notifications for display on the status bar.
// Notify never blocks; when the buffer is full the oldest entry is
// dropped in favour of the new one.
type Notifier struct {
	ch chan domain.Notification
}

// NewNotifier creates a notifier with a small display buffer.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan domain.Notification, 16)}
}

// Notify implements driven.Notifier.
func (n *Notifier) Notify(severity domain.Severity, title, message string) {
	notification := domain.Notification{
		ID:       uuid.NewString(),
		Severity: severity,
		Title:    title,
		Message:  message,
	}

	for {
		select {
		case n.ch <- notification:
			return
		default:
			select {
			case <-n.ch:
			default:
			}
		}
	}
}

// Notifications returns the stream of pending notifications.
func (n *Notifier) Notifications() <-chan domain.Notification {
	return n.ch
}
