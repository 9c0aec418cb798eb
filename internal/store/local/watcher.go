package local

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"concierge-system/internal/common/logger"
	"concierge-system/internal/store"
)

// Watcher turns file changes in the data directory into collection-change
// events so sibling processes sharing the directory observe each other's
// writes. Publish is a no-op: the slot write itself is the event.
type Watcher struct {
	dir string
	lg  *logger.Logger

	mu       sync.Mutex
	lastSeen map[string]time.Time
	debounce time.Duration
}

func NewWatcher(dir string, lg *logger.Logger) *Watcher {
	return &Watcher{
		dir:      dir,
		lg:       lg,
		lastSeen: make(map[string]time.Time),
		debounce: 100 * time.Millisecond,
	}
}

var watchedSlots = map[string]string{
	store.CollectionSettings + ".json":  store.CollectionSettings,
	store.CollectionMenuItems + ".json": store.CollectionMenuItems,
	store.CollectionRequests + ".json":  store.CollectionRequests,
	store.CollectionFeedbacks + ".json": store.CollectionFeedbacks,
}

func (w *Watcher) Subscribe(ctx context.Context, onChange func(collection string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Base(ev.Name)
			if strings.HasSuffix(name, ".tmp") {
				continue
			}
			collection, watched := watchedSlots[name]
			if !watched {
				continue
			}
			if !w.admit(collection) {
				continue
			}
			w.lg.Debug("storage_event", map[string]any{"collection": collection})
			onChange(collection)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.lg.Warn("watch_error", err, nil)
		}
	}
}

// admit drops bursts of events for the same slot; editors and atomic renames
// fire several per logical write.
func (w *Watcher) admit(collection string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	if t, seen := w.lastSeen[collection]; seen && now.Sub(t) < w.debounce {
		return false
	}
	w.lastSeen[collection] = now
	return true
}

func (w *Watcher) Publish(ctx context.Context, collection string) error { return nil }

func (w *Watcher) Close() {}

var _ store.Feed = (*Watcher)(nil)
