package services

import (
	"context"
	"fmt"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
	"github.com/perch-labs/perch-cli/internal/core/ports/driving"
	"github.com/perch-labs/perch-cli/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.FileOperations = (*Dispatcher)(nil)

// Dispatcher validates and routes file-action requests. Open actions
// execute immediately; delete and forget are gated behind the
// confirmer. Failures surface as notifications and never touch
// selection state; there is no automatic retry.
type Dispatcher struct {
	files    driven.FileAccess
	index    driven.Index
	confirm  driven.Confirmer
	notifier driven.Notifier

	// onRemoved runs after a successful delete or forget so the
	// session can drop or re-query the affected result.
	onRemoved func(path string)
}

// NewDispatcher creates a file-operation dispatcher. The index is used
// for forget; files for everything else.
func NewDispatcher(
	files driven.FileAccess,
	index driven.Index,
	confirm driven.Confirmer,
	notifier driven.Notifier,
) *Dispatcher {
	return &Dispatcher{
		files:    files,
		index:    index,
		confirm:  confirm,
		notifier: notifier,
	}
}

// OnRemoved registers the success callback for destructive operations.
func (d *Dispatcher) OnRemoved(fn func(path string)) {
	d.onRemoved = fn
}

// Dispatch validates and executes a request. A declined confirmation
// discards the request: no collaborator call, no notification, nil
// error.
func (d *Dispatcher) Dispatch(ctx context.Context, op domain.FileOperation) error {
	if err := op.Validate(); err != nil {
		return err
	}

	if op.Kind.Destructive() {
		ok, err := d.confirmed(ctx, op)
		if err != nil {
			return err
		}
		if !ok {
			logger.Debug("Declined: %s %s", op.Kind, op.Path)
			return nil
		}
	}

	switch op.Kind {
	case domain.FileOpOpen:
		return d.open(ctx, op.Path)
	case domain.FileOpOpenFolder:
		return d.openFolder(ctx, op.Path)
	case domain.FileOpDelete:
		return d.delete(ctx, op.Path)
	case domain.FileOpForget:
		return d.forget(ctx, op.Path)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, op.Kind)
	}
}

// confirmed runs the confirmation step for destructive kinds.
// Without a confirmer the request is declined: destructive operations
// never execute unconfirmed.
func (d *Dispatcher) confirmed(ctx context.Context, op domain.FileOperation) (bool, error) {
	if d.confirm == nil {
		logger.Warn("No confirmer configured, declining %s", op.Kind)
		return false, nil
	}

	ok, err := d.confirm.Confirm(ctx, op.ConfirmPrompt())
	if err != nil {
		return false, fmt.Errorf("confirm %s: %w", op.Kind, err)
	}
	return ok, nil
}

func (d *Dispatcher) open(ctx context.Context, path string) error {
	if d.files == nil {
		return domain.ErrFileAccessUnavailable
	}
	if err := d.files.OpenFile(ctx, path); err != nil {
		d.notify(domain.SeverityError, "Open failed", err.Error())
		return fmt.Errorf("open file: %w", err)
	}
	return nil
}

func (d *Dispatcher) openFolder(ctx context.Context, path string) error {
	if d.files == nil {
		return domain.ErrFileAccessUnavailable
	}
	if err := d.files.OpenFolder(ctx, path); err != nil {
		d.notify(domain.SeverityError, "Open folder failed", err.Error())
		return fmt.Errorf("open folder: %w", err)
	}
	return nil
}

func (d *Dispatcher) delete(ctx context.Context, path string) error {
	if d.files == nil {
		return domain.ErrFileAccessUnavailable
	}
	if err := d.files.DeleteFile(ctx, path); err != nil {
		d.notify(domain.SeverityError, "Delete failed", err.Error())
		return fmt.Errorf("delete file: %w", err)
	}

	// Best effort: a deleted file should leave the index too.
	if d.index != nil {
		if err := d.index.Remove(ctx, path); err != nil {
			logger.Warn("Deleted file still indexed: %v", err)
		}
	}

	d.notify(domain.SeveritySuccess, "Deleted", path)
	d.removed(path)
	return nil
}

func (d *Dispatcher) forget(ctx context.Context, path string) error {
	if d.index == nil {
		return domain.ErrIndexUnavailable
	}
	if err := d.index.Remove(ctx, path); err != nil {
		d.notify(domain.SeverityError, "Forget failed", err.Error())
		return fmt.Errorf("forget file: %w", err)
	}

	d.notify(domain.SeveritySuccess, "Forgotten", path)
	d.removed(path)
	return nil
}

func (d *Dispatcher) removed(path string) {
	if d.onRemoved != nil {
		d.onRemoved(path)
	}
}

func (d *Dispatcher) notify(severity domain.Severity, title, message string) {
	if d.notifier == nil {
		logger.Warn("%s: %s", title, message)
		return
	}
	d.notifier.Notify(severity, title, message)
}
