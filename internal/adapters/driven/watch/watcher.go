// Package watch observes indexed roots for filesystem changes.
//
// Changes drive two things: re-indexing of the affected path and a
// refresh of any open search session, so results never go stale
// against the index. Event delivery is throttled so editors that
// rewrite files in bursts cannot flood the consumer.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/perch-labs/perch-cli/internal/logger"
)

// Op classifies a filesystem change for the consumer.
type Op int

const (
	// Changed means the path was created or written.
	Changed Op = iota

	// Removed means the path was deleted or renamed away.
	Removed
)

// Event is a single coalesced filesystem change.
type Event struct {
	Path string
	Op   Op
}

// Default throttle: at most 10 events per second with short bursts.
const (
	defaultEventRate  = rate.Limit(10)
	defaultEventBurst = 20
)

// Watcher observes directory roots recursively and emits throttled
// change events.
type Watcher struct {
	fsw     *fsnotify.Watcher
	limiter *rate.Limiter
	events  chan Event
}

// New creates a watcher with the default throttle.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	return &Watcher{
		fsw:     fsw,
		limiter: rate.NewLimiter(defaultEventRate, defaultEventBurst),
		events:  make(chan Event, 64),
	}, nil
}

// AddRoot watches a directory tree recursively. New subdirectories
// created later are picked up as their create events arrive.
func (w *Watcher) AddRoot(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			logger.Warn("Skipping unreadable path %s: %v", path, err)
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// Events returns the change stream. Closed when Run returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run pumps filesystem notifications into the event stream until ctx
// is cancelled. Each delivery waits on the rate limiter, which bounds
// how fast bursts reach the consumer.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			out, relevant := classify(ev)
			if !relevant {
				continue
			}

			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}

			// New directories join the watch so nested changes surface.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.fsw.Add(ev.Name); err != nil {
						logger.Warn("Cannot watch new directory %s: %v", ev.Name, err)
					}
				}
			}

			select {
			case w.events <- out:
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// classify maps fsnotify operations onto the consumer's two cases.
// Chmod-only events carry no content change and are dropped.
func classify(ev fsnotify.Event) (Event, bool) {
	switch {
	case ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write):
		return Event{Path: ev.Name, Op: Changed}, true
	case ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename):
		return Event{Path: ev.Name, Op: Removed}, true
	default:
		return Event{}, false
	}
}
