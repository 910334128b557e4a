package billing

import "context"

// EventRepository is the webhook event queue.
type EventRepository interface {
	// Insert stores a new event; returns false when the Stripe event
	// id was already seen (webhook redelivery).
	Insert(ctx context.Context, stripeEventID, eventType string, payload []byte) (bool, error)

	// FetchPending claims the oldest PENDING event, marking it
	// PROCESSING atomically. Returns nil when the queue is empty.
	FetchPending(ctx context.Context) (*Event, error)

	MarkProcessed(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, reason string) error
}
