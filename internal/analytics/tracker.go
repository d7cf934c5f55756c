package analytics

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// Event names emitted by the core.
const (
	EventBookingCreated       = "booking_created"
	EventPlatformFeeConfirmed = "platform_fee_confirmed"
	EventBusinessInitialized  = "business_initialized"
)

type Event struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Store is the durable sink for events.
type Store interface {
	Save(ctx context.Context, e Event) error
}

// Tracker is a Store-backed tracker. Tracker accepts events on a buffered
// channel drained by a single worker goroutine, so callers never block and
// never see a sink failure: a full buffer or a failing store degrades to a
// log line. Telemetry must not gate bookings.
type Tracker struct {
	store   Store
	events  chan Event
	done    chan struct{}
	timeout time.Duration
}

func NewTracker(store Store, buffer int) *Tracker {
	if buffer <= 0 {
		buffer = 256
	}
	t := &Tracker{
		store:   store,
		events:  make(chan Event, buffer),
		done:    make(chan struct{}),
		timeout: 5 * time.Second,
	}
	go t.run()
	return t
}

// Track enqueues an event. Never blocks; drops with a log line when the
// buffer is full.
func (t *Tracker) Track(name string, props map[string]any) {
	e := Event{
		ID:         uuid.New(),
		Name:       name,
		Properties: props,
		OccurredAt: time.Now().UTC(),
	}

	select {
	case t.events <- e:
	default:
		log.Printf("analytics_dropped event=%s reason=buffer_full", name)
	}
}

// Close stops accepting events and drains the buffer.
func (t *Tracker) Close() {
	close(t.events)
	<-t.done
}

func (t *Tracker) run() {
	defer close(t.done)
	for e := range t.events {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		if err := t.store.Save(ctx, e); err != nil {
			log.Printf("analytics_save_failed event=%s id=%s error=%q", e.Name, e.ID, err)
		}
		cancel()
	}
}
