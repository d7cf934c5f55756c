package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureStore struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (s *captureStore) Save(_ context.Context, e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink down")
	}
	s.events = append(s.events, e)
	return nil
}

func (s *captureStore) all() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func TestTracker_DeliversEvents(t *testing.T) {
	store := &captureStore{}
	tracker := NewTracker(store, 16)

	tracker.Track(EventBookingCreated, map[string]any{"booking_id": int64(1)})
	tracker.Track(EventPlatformFeeConfirmed, map[string]any{"commission_rate": "12.50"})
	tracker.Close()

	events := store.all()
	require.Len(t, events, 2)
	assert.Equal(t, EventBookingCreated, events[0].Name)
	assert.Equal(t, int64(1), events[0].Properties["booking_id"])
	assert.Equal(t, EventPlatformFeeConfirmed, events[1].Name)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	assert.False(t, events[0].OccurredAt.IsZero())
}

func TestTracker_SinkFailureDoesNotPropagate(t *testing.T) {
	store := &captureStore{fail: true}
	tracker := NewTracker(store, 4)

	// Must not panic or block; failures stay inside the worker.
	tracker.Track(EventBusinessInitialized, map[string]any{"business_id": int64(5)})
	tracker.Close()

	assert.Empty(t, store.all())
}

func TestTracker_TrackNeverBlocksWhenFull(t *testing.T) {
	store := &captureStore{}
	// Unstarted tracker with a tiny buffer: fill it directly.
	tr := &Tracker{store: store, events: make(chan Event, 1), done: make(chan struct{})}

	tr.Track("first", nil)
	done := make(chan struct{})
	go func() {
		tr.Track("second", nil) // buffer full, must drop instead of blocking
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Track blocked on a full buffer")
	}
}
