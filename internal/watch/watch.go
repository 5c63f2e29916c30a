// Package watch calls a function whenever one of a set of files changes.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher watches files and groups rapid changes together.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	delay   time.Duration
	log     *zap.Logger
	files   map[string]struct{}
	watched map[string]struct{}
}

// New creates a watcher calling back at most once per delay.
func New(delay time.Duration, log *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "unable to create fsnotify watcher")
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Watcher{
		fsw:     fsw,
		delay:   delay,
		log:     log.Named("watch"),
		files:   make(map[string]struct{}),
		watched: make(map[string]struct{}),
	}, nil
}

// Add watches files. Their directories are watched, editors often replace a file instead of writing it.
func (w *Watcher) Add(files ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return errors.Wrapf(err, "unable to get absolute path of %s", file)
		}

		w.files[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if _, ok := w.watched[dir]; ok {
			continue
		}

		err = w.fsw.Add(dir)
		if err != nil {
			return errors.Wrapf(err, "unable to watch %s", dir)
		}

		w.watched[dir] = struct{}{}
	}

	return nil
}

func (w *Watcher) isWatched(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, ok := w.files[filepath.Clean(name)]

	return ok
}

// Run calls onChange once the watched files stopped changing for the watcher delay, until ctx is done.
// An error returned by onChange is logged and does not stop the watcher.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context) error) error {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			if event.Op&changeOps == 0 {
				continue
			}

			if !w.isWatched(event.Name) {
				continue
			}

			w.log.Debug("File changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if timer != nil {
				timer.Stop()
			}

			timer = time.NewTimer(w.delay)
			timerC = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}

			w.log.Warn("Watcher error", zap.Error(err))
		case <-timerC:
			timerC = nil

			err := onChange(ctx)
			if err != nil {
				w.log.Error("Change handler failed", zap.Error(err))
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
