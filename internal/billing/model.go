package billing

import "time"

// Event is one Stripe webhook delivery queued for the worker.
// Payload holds the event's data.object JSON.
type Event struct {
	ID            int64
	StripeEventID string
	Type          string
	Payload       []byte
	Status        string
	Error         *string
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

const (
	EventPending   = "PENDING"
	EventProcessed = "PROCESSED"
	EventFailed    = "FAILED"
)

// Checkout kinds accepted by POST /api/billing/checkout.
const (
	KindActivation   = "activation"
	KindCredits      = "credits"
	KindSubscription = "subscription"
)

// creditPacks maps pack names to the credits they grant. The amount
// travels in the Checkout session metadata so the webhook side never
// needs the mapping.
var creditPacks = map[string]int{
	"small":  5,
	"medium": 20,
	"large":  50,
}
