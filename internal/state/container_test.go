package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge-system/internal/common/logger"
	"concierge-system/internal/domain"
	"concierge-system/internal/store"
	"concierge-system/internal/store/local"
)

func newContainer(t *testing.T) *Container {
	t.Helper()
	st, err := local.Open(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	c, err := New(context.Background(), st, store.NopFeed{}, logger.Nop())
	require.NoError(t, err)
	return c
}

func TestAddRequestAssignsIdentityAndPendingStatus(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		r := c.AddRequest(ctx, domain.RequestItem{
			Type:       domain.RequestService,
			RoomNumber: "101",
			Details:    "towels",
		})
		require.Equal(t, domain.StatusPending, r.Status)
		require.GreaterOrEqual(t, len(r.ID), 9)
		require.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
		require.NotZero(t, r.Timestamp)
	}
	// Most-recent-first ordering.
	reqs := c.Requests()
	require.Len(t, reqs, 25)
	for i := 1; i < len(reqs); i++ {
		assert.GreaterOrEqual(t, reqs[i-1].Timestamp, reqs[i].Timestamp)
	}
}

func TestUpdateRequestStatusFollowsLifecycle(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	r := c.AddRequest(ctx, domain.RequestItem{Type: domain.RequestOrder, RoomNumber: "302"})

	require.NoError(t, c.UpdateRequestStatus(ctx, r.ID, domain.StatusConfirmed))
	require.NoError(t, c.UpdateRequestStatus(ctx, r.ID, domain.StatusFollowUp))
	require.NoError(t, c.UpdateRequestStatus(ctx, r.ID, domain.StatusCompleted))

	got, ok := c.Request(r.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, r.RoomNumber, got.RoomNumber)
	assert.Equal(t, r.Timestamp, got.Timestamp)
}

func TestUpdateRequestStatusRejectsOutOfTableTransitions(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	r := c.AddRequest(ctx, domain.RequestItem{Type: domain.RequestOrder, RoomNumber: "302"})
	require.NoError(t, c.UpdateRequestStatus(ctx, r.ID, domain.StatusCompleted))

	for _, target := range []domain.Status{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusFollowUp, domain.StatusCancelled,
	} {
		err := c.UpdateRequestStatus(ctx, r.ID, target)
		require.ErrorIs(t, err, domain.ErrInvalidTransition, "terminal status must stay put")
		got, _ := c.Request(r.ID)
		assert.Equal(t, domain.StatusCompleted, got.Status)
	}

	// follow_up cannot go back to confirmed.
	r2 := c.AddRequest(ctx, domain.RequestItem{Type: domain.RequestService, RoomNumber: "101", Details: "ac broken"})
	require.NoError(t, c.UpdateRequestStatus(ctx, r2.ID, domain.StatusFollowUp))
	require.ErrorIs(t, c.UpdateRequestStatus(ctx, r2.ID, domain.StatusConfirmed), domain.ErrInvalidTransition)

	require.ErrorIs(t, c.UpdateRequestStatus(ctx, "nope", domain.StatusConfirmed), domain.ErrNotFound)
	require.ErrorIs(t, c.UpdateRequestStatus(ctx, r2.ID, "sideways"), domain.ErrInvalidStatus)
}

func TestToggleAvailabilityPreservesEverythingElse(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	before := c.MenuItems()
	require.NotEmpty(t, before, "seed catalog expected on first run")
	orig := before[0]
	require.True(t, orig.Available)

	item, err := c.ToggleAvailability(ctx, orig.ID)
	require.NoError(t, err)
	assert.False(t, item.Available)
	assert.Equal(t, orig.ID, item.ID)
	assert.Equal(t, orig.Name, item.Name)
	assert.Equal(t, orig.Price, item.Price)
	assert.Equal(t, orig.Category, item.Category)

	item, err = c.ToggleAvailability(ctx, orig.ID)
	require.NoError(t, err)
	assert.True(t, item.Available, "toggle is unguarded in both directions")

	_, err = c.ToggleAvailability(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpsertAndDeleteMenuItem(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	created := c.UpsertMenuItem(ctx, domain.MenuItem{
		Category: domain.CategoryLaundry,
		Name:     domain.LocalizedString{EN: "Express Wash"},
		Price:    8,
	})
	require.NotEmpty(t, created.ID)

	others := c.MenuItems()
	created.Price = 9
	updated := c.UpsertMenuItem(ctx, created)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 9.0, updated.Price)
	// Ids of unaffected items survive the patch.
	for _, m := range others {
		if m.ID == created.ID {
			continue
		}
		_, ok := c.MenuItem(m.ID)
		assert.True(t, ok)
	}

	require.NoError(t, c.DeleteMenuItem(ctx, created.ID))
	_, ok := c.MenuItem(created.ID)
	assert.False(t, ok)
	require.ErrorIs(t, c.DeleteMenuItem(ctx, created.ID), domain.ErrNotFound)
}

func TestSetHotelSettingsReplacesSingleton(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	hs := c.Settings()
	hs.PrimaryColor = "#FF0000"
	hs.Name = "Riverside Lodge"
	c.SetHotelSettings(ctx, hs)

	got := c.Settings()
	assert.Equal(t, "#FF0000", got.PrimaryColor)
	assert.Equal(t, "Riverside Lodge", got.Name)
}

func TestAddFeedbackPrepends(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	first := c.AddFeedback(ctx, domain.Feedback{RoomNumber: "101", Rating: 5, Comment: "great"})
	second := c.AddFeedback(ctx, domain.Feedback{RoomNumber: "102", Rating: 3, Comment: "ok"})
	require.NotEqual(t, first.ID, second.ID)

	fbs := c.Feedbacks()
	require.Len(t, fbs, 2)
	assert.Equal(t, second.ID, fbs[0].ID)
}

func TestRehydrateReplacesCollectionWholesale(t *testing.T) {
	dir := t.TempDir()
	st, err := local.Open(dir, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	c, err := New(ctx, st, store.NopFeed{}, logger.Nop())
	require.NoError(t, err)

	// Another process writes settings directly to the store.
	hs := domain.DefaultSettings()
	hs.PrimaryColor = "#123456"
	require.NoError(t, st.SaveSettings(ctx, hs))

	changes, cancel := c.Watch()
	defer cancel()

	c.Rehydrate(ctx, store.CollectionSettings)
	assert.Equal(t, "#123456", c.Settings().PrimaryColor)

	select {
	case collection := <-changes:
		assert.Equal(t, store.CollectionSettings, collection)
	default:
		t.Fatal("expected a change notification after rehydrate")
	}
}

// Two containers sharing one data directory behave like two open tabs: a
// settings save in one surfaces in the other without any local action.
func TestTwoInstancesObserveSettingsChange(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	open := func() *Container {
		st, err := local.Open(dir, logger.Nop())
		require.NoError(t, err)
		c, err := New(ctx, st, local.NewWatcher(dir, logger.Nop()), logger.Nop())
		require.NoError(t, err)
		go func() { _ = c.Run(ctx) }()
		return c
	}
	a := open()
	b := open()

	// Let both watchers register before the write.
	time.Sleep(200 * time.Millisecond)

	hs := a.Settings()
	hs.PrimaryColor = "#0000FF"
	a.SetHotelSettings(ctx, hs)

	require.Eventually(t, func() bool {
		return b.Settings().PrimaryColor == "#0000FF"
	}, 3*time.Second, 50*time.Millisecond)
}

// failingStore wraps a working store but fails every write.
type failingStore struct {
	store.Store
}

func (f failingStore) AppendRequest(context.Context, domain.RequestItem) error {
	return errors.New("store unreachable")
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	st, err := local.Open(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	c, err := New(ctx, failingStore{st}, store.NopFeed{}, logger.Nop())
	require.NoError(t, err)

	r := c.AddRequest(ctx, domain.RequestItem{Type: domain.RequestOrder, RoomNumber: "302"})
	got, ok := c.Request(r.ID)
	require.True(t, ok, "optimistic state survives a failed write")
	assert.Equal(t, domain.StatusPending, got.Status)
}
