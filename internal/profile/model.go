package profile

import "time"

// Profile holds per-user entitlement state: credits, the one-time
// activation flag, and the synced Stripe subscription snapshot.
type Profile struct {
	UserID               string     `json:"user_id"`
	Credits              int        `json:"credits"`
	Activated            bool       `json:"activated"`
	ActivatedAt          *time.Time `json:"activated_at,omitempty"`
	StripeCustomerID     *string    `json:"-"`
	StripeSubscriptionID *string    `json:"-"`
	SubscriptionStatus   *string    `json:"subscription_status,omitempty"`
	SubscriptionPriceID  *string    `json:"-"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end,omitempty"`
}

// StarterCredits is granted on registration, ActivationCredits on the
// one-time activation purchase.
const (
	StarterCredits    = 3
	ActivationCredits = 10
)
