package billing

import (
	"context"
	"sync"
	"time"
)

type InMemoryEventRepository struct {
	mu     sync.Mutex
	nextID int64
	events []*Event
	seen   map[string]bool
}

func NewInMemoryEventRepository() *InMemoryEventRepository {
	return &InMemoryEventRepository{
		nextID: 1,
		seen:   make(map[string]bool),
	}
}

func (r *InMemoryEventRepository) Insert(
	ctx context.Context,
	stripeEventID, eventType string,
	payload []byte,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen[stripeEventID] {
		return false, nil
	}
	r.seen[stripeEventID] = true

	r.events = append(r.events, &Event{
		ID:            r.nextID,
		StripeEventID: stripeEventID,
		Type:          eventType,
		Payload:       payload,
		Status:        EventPending,
		CreatedAt:     time.Now(),
	})
	r.nextID++
	return true, nil
}

func (r *InMemoryEventRepository) FetchPending(ctx context.Context) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, evt := range r.events {
		if evt.Status == EventPending {
			evt.Status = "PROCESSING"
			cp := *evt
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *InMemoryEventRepository) MarkProcessed(ctx context.Context, id int64) error {
	return r.mark(id, EventProcessed, nil)
}

func (r *InMemoryEventRepository) MarkFailed(ctx context.Context, id int64, reason string) error {
	return r.mark(id, EventFailed, &reason)
}

func (r *InMemoryEventRepository) mark(id int64, status string, reason *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, evt := range r.events {
		if evt.ID == id {
			now := time.Now()
			evt.Status = status
			evt.Error = reason
			evt.ProcessedAt = &now
			return nil
		}
	}
	return nil
}

// StatusOf is a test helper.
func (r *InMemoryEventRepository) StatusOf(stripeEventID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, evt := range r.events {
		if evt.StripeEventID == stripeEventID {
			return evt.Status
		}
	}
	return ""
}
