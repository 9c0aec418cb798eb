// Package local persists every collection as a JSON file under one data
// directory, mirroring a per-browser storage area: one slot per collection,
// whole-collection rewrite on every mutation, and file-change notifications
// as the cross-process storage event.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"concierge-system/internal/common/logger"
	"concierge-system/internal/domain"
	"concierge-system/internal/store"
)

type Store struct {
	dir string
	lg  *logger.Logger
	mu  sync.Mutex // serializes read-modify-write cycles on the slot files
}

func Open(dir string, lg *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, lg: lg}, nil
}

func (s *Store) Close() {}

// Dir returns the data directory, which the watcher observes.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// readSlot deserializes one slot into out. Absent or malformed contents
// report ok=false so the caller can fall back to its seed value.
func (s *Store) readSlot(collection string, out any) bool {
	b, err := os.ReadFile(s.path(collection))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		s.lg.Warn("slot_malformed", err, map[string]any{"collection": collection})
		return false
	}
	return true
}

// writeSlot rewrites a slot atomically so a concurrent reader never sees a
// half-written file.
func (s *Store) writeSlot(collection string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("commit %s: %w", collection, err)
	}
	return nil
}

func (s *Store) LoadSettings(ctx context.Context) (domain.HotelSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v domain.HotelSettings
	if !s.readSlot(store.CollectionSettings, &v) {
		return domain.DefaultSettings(), nil
	}
	return v, nil
}

func (s *Store) SaveSettings(ctx context.Context, v domain.HotelSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSlot(store.CollectionSettings, v)
}

func (s *Store) LoadMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v []domain.MenuItem
	if !s.readSlot(store.CollectionMenuItems, &v) || len(v) == 0 {
		return domain.SeedMenuItems(), nil
	}
	return v, nil
}

func (s *Store) SaveMenuItems(ctx context.Context, items []domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSlot(store.CollectionMenuItems, items)
}

func (s *Store) LoadRequests(ctx context.Context) ([]domain.RequestItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v []domain.RequestItem
	if !s.readSlot(store.CollectionRequests, &v) {
		return []domain.RequestItem{}, nil
	}
	return v, nil
}

func (s *Store) AppendRequest(ctx context.Context, r domain.RequestItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v []domain.RequestItem
	s.readSlot(store.CollectionRequests, &v)
	// Most-recent-first, same ordering the container keeps in memory.
	v = append([]domain.RequestItem{r}, v...)
	return s.writeSlot(store.CollectionRequests, v)
}

func (s *Store) UpdateRequestStatus(ctx context.Context, id string, status domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v []domain.RequestItem
	if !s.readSlot(store.CollectionRequests, &v) {
		return domain.ErrNotFound
	}
	for i := range v {
		if v[i].ID == id {
			v[i].Status = status
			return s.writeSlot(store.CollectionRequests, v)
		}
	}
	return domain.ErrNotFound
}

func (s *Store) LoadFeedbacks(ctx context.Context) ([]domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v []domain.Feedback
	if !s.readSlot(store.CollectionFeedbacks, &v) {
		return []domain.Feedback{}, nil
	}
	return v, nil
}

func (s *Store) AppendFeedback(ctx context.Context, f domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v []domain.Feedback
	s.readSlot(store.CollectionFeedbacks, &v)
	v = append([]domain.Feedback{f}, v...)
	return s.writeSlot(store.CollectionFeedbacks, v)
}

func (s *Store) LoadRoomNumber(ctx context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := map[string]string{}
	s.readSlot(store.CollectionRooms, &rooms)
	return rooms[sessionID], nil
}

func (s *Store) SaveRoomNumber(ctx context.Context, sessionID, room string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := map[string]string{}
	s.readSlot(store.CollectionRooms, &rooms)
	rooms[sessionID] = room
	return s.writeSlot(store.CollectionRooms, rooms)
}

var _ store.Store = (*Store)(nil)
