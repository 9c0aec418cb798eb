// Package store defines the persistent store adapter shared by the local
// (file-backed) and remote (Postgres-backed) strategies. Loads never fail
// fatally: absent or malformed data falls back to seed defaults. Saves are
// best-effort; callers treat a returned error as a warning, not a crash.
package store

import (
	"context"

	"concierge-system/internal/domain"
)

// Collection names double as persisted slot keys in the local strategy and
// as change-feed payloads in both strategies.
const (
	CollectionSettings  = "luxestay_settings"
	CollectionMenuItems = "luxestay_menu_items"
	CollectionRequests  = "luxestay_requests"
	CollectionFeedbacks = "luxestay_feedbacks"
	CollectionRooms     = "luxestay_room_numbers"
)

type Store interface {
	// LoadSettings returns the singleton, seeding the default on first run.
	LoadSettings(ctx context.Context) (domain.HotelSettings, error)
	// SaveSettings replaces the singleton wholesale.
	SaveSettings(ctx context.Context, s domain.HotelSettings) error

	// LoadMenuItems returns the catalog, or the seed catalog on first run.
	LoadMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	SaveMenuItems(ctx context.Context, items []domain.MenuItem) error

	// LoadRequests returns the queue most-recent-first.
	LoadRequests(ctx context.Context) ([]domain.RequestItem, error)
	AppendRequest(ctx context.Context, r domain.RequestItem) error
	// UpdateRequestStatus persists a new status for the given id. It never
	// changes id, room number, or timestamp.
	UpdateRequestStatus(ctx context.Context, id string, status domain.Status) error

	// LoadFeedbacks returns the log most-recent-first.
	LoadFeedbacks(ctx context.Context) ([]domain.Feedback, error)
	AppendFeedback(ctx context.Context, f domain.Feedback) error

	// Room numbers are session-scoped, one slot per device session.
	LoadRoomNumber(ctx context.Context, sessionID string) (string, error)
	SaveRoomNumber(ctx context.Context, sessionID, room string) error

	Close()
}

// Feed is the sync bridge: it surfaces mutations made outside the current
// process so the state container can re-hydrate the affected collection.
// Delivery is last-writer-wins per collection; there is no merge logic.
type Feed interface {
	// Subscribe invokes onChange with a collection name for every external
	// mutation until ctx is done. It blocks; run it in its own goroutine.
	Subscribe(ctx context.Context, onChange func(collection string)) error
	// Publish announces a local mutation of the named collection to peers.
	Publish(ctx context.Context, collection string) error
	Close()
}

// NopFeed is a Feed for single-instance deployments and tests.
type NopFeed struct{}

func (NopFeed) Subscribe(ctx context.Context, _ func(string)) error {
	<-ctx.Done()
	return nil
}
func (NopFeed) Publish(context.Context, string) error { return nil }
func (NopFeed) Close()                                {}
