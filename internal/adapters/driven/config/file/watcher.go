package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/sercha-finder/internal/logger"
)

// reloadOps are the operations that may change the config file's content.
// Editors commonly replace files via rename, so the directory is watched.
const reloadOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove

// Watcher reloads a ConfigStore whenever its file changes on disk.
type Watcher struct {
	store   *ConfigStore
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the store's config file.
func NewWatcher(store *ConfigStore) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{store: store, watcher: w}, nil
}

// Watch starts monitoring and returns a channel that receives a value after
// each successful reload. Bursts of events coalesce into a single signal.
// The channel is closed when ctx is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	if err := w.watcher.Add(filepath.Dir(w.store.Path())); err != nil {
		return nil, err
	}

	reloaded := make(chan struct{}, 1)
	target := filepath.Clean(w.store.Path())

	go func() {
		defer close(reloaded)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || event.Op&reloadOps == 0 {
					continue
				}
				if err := w.store.Load(); err != nil {
					logger.Warn("Config reload failed: %v", err)
					continue
				}
				logger.Debug("Config reloaded after %s", event.Op)
				select {
				case reloaded <- struct{}{}:
				default:
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Config watcher error: %v", err)
			}
		}
	}()

	return reloaded, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
