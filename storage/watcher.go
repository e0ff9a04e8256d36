package storage

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for the directory to settle before
// reporting a change.
const DefaultDebounce = 200 * time.Millisecond

// Watch starts an fsnotify watcher on the notes root and calls onChange once
// the set of notes has changed, until ctx is cancelled. Bursts of events are
// coalesced into a single call. Content writes do not change the listing and
// are ignored.
func (f *FS) Watch(ctx context.Context, logger *slog.Logger, onChange func()) error {
	return f.watch(ctx, logger, DefaultDebounce, onChange)
}

func (f *FS) watch(ctx context.Context, logger *slog.Logger, debounce time.Duration, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(f.root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", f.root))

	// changeTimer is used to debounce listing changes.
	var changeTimer *time.Timer
	var changeCh <-chan time.Time

	scheduleChange := func() {
		if changeTimer == nil {
			changeTimer = time.NewTimer(debounce)
			changeCh = changeTimer.C
		} else {
			changeTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if changeTimer != nil {
				changeTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-changeCh:
			logger.Debug("watcher: notes changed")
			onChange()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !f.isNote(filepath.Base(ev.Name)) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			logger.Debug("watcher: event", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			scheduleChange()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
