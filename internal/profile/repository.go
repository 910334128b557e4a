package profile

import (
	"context"
	"time"
)

// Repository defines all database operations for profiles
type Repository interface {
	// Create the row if missing, otherwise leave it untouched.
	GetOrCreate(ctx context.Context, userID string) (*Profile, error)

	Get(ctx context.Context, userID string) (*Profile, error)

	// Atomically spend one credit; returns the remaining balance.
	// ErrInsufficientCredits when the balance is already zero.
	DecrementCredit(ctx context.Context, userID string) (int, error)

	AddCredits(ctx context.Context, userID string, amount int) error

	// One-time download unlock.
	Activate(ctx context.Context, userID string) error

	SetStripeCustomer(ctx context.Context, userID, customerID string) error

	FindByStripeCustomer(ctx context.Context, customerID string) (*Profile, error)

	UpdateSubscription(
		ctx context.Context,
		userID string,
		subscriptionID *string,
		status *string,
		priceID *string,
		currentPeriodEnd *time.Time,
	) error
}
