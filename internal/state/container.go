// Package state holds the process-wide in-memory mirror of every persisted
// collection. All mutation goes through Container methods: they update memory
// optimistically, write through the store best-effort, and announce the
// change on the sync feed. External mutations arrive back through Run, which
// re-hydrates the affected collection wholesale (last-writer-wins, no merge).
package state

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"concierge-system/internal/common/logger"
	"concierge-system/internal/domain"
	"concierge-system/internal/store"
)

type Container struct {
	st   store.Store
	feed store.Feed
	lg   *logger.Logger

	mu        sync.RWMutex
	settings  domain.HotelSettings
	menu      []domain.MenuItem
	requests  []domain.RequestItem
	feedbacks []domain.Feedback

	watchMu  sync.Mutex
	watchers map[chan string]struct{}
}

// New loads every collection and returns a ready container. Loads never fail
// fatally; the store seeds defaults for anything absent or malformed.
func New(ctx context.Context, st store.Store, feed store.Feed, lg *logger.Logger) (*Container, error) {
	c := &Container{st: st, feed: feed, lg: lg, watchers: make(map[chan string]struct{})}

	var err error
	if c.settings, err = st.LoadSettings(ctx); err != nil {
		return nil, err
	}
	if c.menu, err = st.LoadMenuItems(ctx); err != nil {
		return nil, err
	}
	if c.requests, err = st.LoadRequests(ctx); err != nil {
		return nil, err
	}
	if c.feedbacks, err = st.LoadFeedbacks(ctx); err != nil {
		return nil, err
	}
	lg.Info("state_loaded", map[string]any{
		"menu_items": len(c.menu), "requests": len(c.requests), "feedbacks": len(c.feedbacks),
	})
	return c, nil
}

// Run consumes the sync feed until ctx is done. Call it in its own goroutine.
func (c *Container) Run(ctx context.Context) error {
	return c.feed.Subscribe(ctx, func(collection string) {
		c.Rehydrate(ctx, collection)
	})
}

// Rehydrate replaces one in-memory collection with the store's current value.
func (c *Container) Rehydrate(ctx context.Context, collection string) {
	switch collection {
	case store.CollectionSettings:
		v, err := c.st.LoadSettings(ctx)
		if err == nil {
			c.mu.Lock()
			c.settings = v
			c.mu.Unlock()
		}
	case store.CollectionMenuItems:
		v, err := c.st.LoadMenuItems(ctx)
		if err == nil {
			c.mu.Lock()
			c.menu = v
			c.mu.Unlock()
		}
	case store.CollectionRequests:
		v, err := c.st.LoadRequests(ctx)
		if err == nil {
			c.mu.Lock()
			c.requests = v
			c.mu.Unlock()
		}
	case store.CollectionFeedbacks:
		v, err := c.st.LoadFeedbacks(ctx)
		if err == nil {
			c.mu.Lock()
			c.feedbacks = v
			c.mu.Unlock()
		}
	default:
		return
	}
	c.notify(collection)
}

// persist runs a best-effort write. A failure is logged and the in-memory
// state kept: the store being briefly unreachable must not block the session.
func (c *Container) persist(collection string, fn func() error) {
	if err := fn(); err != nil {
		c.lg.Warn("persist_failed", err, map[string]any{"collection": collection})
		return
	}
	if err := c.feed.Publish(context.Background(), collection); err != nil {
		c.lg.Warn("publish_failed", err, map[string]any{"collection": collection})
	}
	c.notify(collection)
}

func newID() string { return uuid.NewString() }

func nowMillis() int64 { return time.Now().UnixMilli() }

// --- Requests ---

// AddRequest assigns a fresh id and timestamp, forces status pending, and
// prepends the record so the queue stays most-recent-first.
func (c *Container) AddRequest(ctx context.Context, r domain.RequestItem) domain.RequestItem {
	r.ID = newID()
	r.Timestamp = nowMillis()
	r.Status = domain.StatusPending

	c.mu.Lock()
	c.requests = append([]domain.RequestItem{r}, c.requests...)
	c.mu.Unlock()

	c.persist(store.CollectionRequests, func() error {
		return c.st.AppendRequest(ctx, r)
	})
	return r
}

// UpdateRequestStatus applies the lifecycle guard centrally: a transition
// absent from the table is rejected and leaves the record untouched. Nothing
// else about the record ever changes.
func (c *Container) UpdateRequestStatus(ctx context.Context, id string, status domain.Status) error {
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}

	c.mu.Lock()
	idx := -1
	for i := range c.requests {
		if c.requests[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return domain.ErrNotFound
	}
	if !domain.ValidStatusTransition(c.requests[idx].Status, status) {
		c.mu.Unlock()
		return domain.ErrInvalidTransition
	}
	c.requests[idx].Status = status
	c.mu.Unlock()

	c.persist(store.CollectionRequests, func() error {
		return c.st.UpdateRequestStatus(ctx, id, status)
	})
	return nil
}

func (c *Container) Requests() []domain.RequestItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.RequestItem, len(c.requests))
	copy(out, c.requests)
	return out
}

func (c *Container) Request(id string) (domain.RequestItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.requests {
		if r.ID == id {
			return r, true
		}
	}
	return domain.RequestItem{}, false
}

// --- Feedback ---

func (c *Container) AddFeedback(ctx context.Context, f domain.Feedback) domain.Feedback {
	f.ID = newID()
	f.Timestamp = nowMillis()

	c.mu.Lock()
	c.feedbacks = append([]domain.Feedback{f}, c.feedbacks...)
	c.mu.Unlock()

	c.persist(store.CollectionFeedbacks, func() error {
		return c.st.AppendFeedback(ctx, f)
	})
	return f
}

func (c *Container) Feedbacks() []domain.Feedback {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Feedback, len(c.feedbacks))
	copy(out, c.feedbacks)
	return out
}

// --- Menu catalog ---

func (c *Container) MenuItems() []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.MenuItem, len(c.menu))
	copy(out, c.menu)
	return out
}

func (c *Container) MenuItem(id string) (domain.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.menu {
		if m.ID == id {
			return m, true
		}
	}
	return domain.MenuItem{}, false
}

// SetMenuItems replaces the whole catalog, the staff bulk-save path.
func (c *Container) SetMenuItems(ctx context.Context, items []domain.MenuItem) {
	c.mu.Lock()
	c.menu = append([]domain.MenuItem(nil), items...)
	c.mu.Unlock()

	c.persist(store.CollectionMenuItems, func() error {
		return c.st.SaveMenuItems(ctx, items)
	})
}

// UpsertMenuItem patches one item by id, assigning a fresh id on create.
// Ids of unaffected items are preserved.
func (c *Container) UpsertMenuItem(ctx context.Context, item domain.MenuItem) domain.MenuItem {
	if item.ID == "" {
		item.ID = newID()
	}

	c.mu.Lock()
	replaced := false
	for i := range c.menu {
		if c.menu[i].ID == item.ID {
			c.menu[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		c.menu = append(c.menu, item)
	}
	snapshot := make([]domain.MenuItem, len(c.menu))
	copy(snapshot, c.menu)
	c.mu.Unlock()

	c.persist(store.CollectionMenuItems, func() error {
		return c.st.SaveMenuItems(ctx, snapshot)
	})
	return item
}

func (c *Container) DeleteMenuItem(ctx context.Context, id string) error {
	c.mu.Lock()
	idx := -1
	for i := range c.menu {
		if c.menu[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return domain.ErrNotFound
	}
	c.menu = append(c.menu[:idx], c.menu[idx+1:]...)
	snapshot := make([]domain.MenuItem, len(c.menu))
	copy(snapshot, c.menu)
	c.mu.Unlock()

	c.persist(store.CollectionMenuItems, func() error {
		return c.st.SaveMenuItems(ctx, snapshot)
	})
	return nil
}

// ToggleAvailability flips the two-state availability switch. Unlike request
// statuses there is no guarded table: either state reaches the other.
func (c *Container) ToggleAvailability(ctx context.Context, id string) (domain.MenuItem, error) {
	c.mu.Lock()
	idx := -1
	for i := range c.menu {
		if c.menu[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return domain.MenuItem{}, domain.ErrNotFound
	}
	c.menu[idx].Available = !c.menu[idx].Available
	item := c.menu[idx]
	snapshot := make([]domain.MenuItem, len(c.menu))
	copy(snapshot, c.menu)
	c.mu.Unlock()

	c.persist(store.CollectionMenuItems, func() error {
		return c.st.SaveMenuItems(ctx, snapshot)
	})
	return item, nil
}

// --- Settings ---

func (c *Container) Settings() domain.HotelSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// SetHotelSettings replaces the singleton wholesale; subscribers pick up the
// new display metadata on the change notification.
func (c *Container) SetHotelSettings(ctx context.Context, s domain.HotelSettings) {
	c.mu.Lock()
	c.settings = s
	c.mu.Unlock()

	c.persist(store.CollectionSettings, func() error {
		return c.st.SaveSettings(ctx, s)
	})
}

// --- Session room number ---

func (c *Container) RoomNumber(ctx context.Context, sessionID string) string {
	room, err := c.st.LoadRoomNumber(ctx, sessionID)
	if err != nil {
		c.lg.Warn("room_load_failed", err, map[string]any{"session": sessionID})
		return ""
	}
	return room
}

func (c *Container) SetRoomNumber(ctx context.Context, sessionID, room string) {
	if err := c.st.SaveRoomNumber(ctx, sessionID, room); err != nil {
		c.lg.Warn("room_save_failed", err, map[string]any{"session": sessionID})
	}
}

// --- Change notifications for connected clients ---

// Watch returns a channel of collection names, one per observed change, and
// a cancel func. Slow receivers drop events rather than block mutators.
func (c *Container) Watch() (<-chan string, func()) {
	ch := make(chan string, 16)
	c.watchMu.Lock()
	c.watchers[ch] = struct{}{}
	c.watchMu.Unlock()

	cancel := func() {
		c.watchMu.Lock()
		if _, ok := c.watchers[ch]; ok {
			delete(c.watchers, ch)
			close(ch)
		}
		c.watchMu.Unlock()
	}
	return ch, cancel
}

func (c *Container) notify(collection string) {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	for ch := range c.watchers {
		select {
		case ch <- collection:
		default:
		}
	}
}
