package profile

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const profileColumns = `
	user_id, credits, activated, activated_at,
	stripe_customer_id, stripe_subscription_id,
	subscription_status, subscription_price_id, current_period_end
`

func scanProfile(row pgx.Row) (*Profile, error) {
	p := &Profile{}
	err := row.Scan(
		&p.UserID, &p.Credits, &p.Activated, &p.ActivatedAt,
		&p.StripeCustomerID, &p.StripeSubscriptionID,
		&p.SubscriptionStatus, &p.SubscriptionPriceID, &p.CurrentPeriodEnd,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) GetOrCreate(ctx context.Context, userID string) (*Profile, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (user_id, credits)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, StarterCredits)
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, userID)
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1
	`, userID)

	p, err := scanProfile(row)
	if err != nil {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

// DecrementCredit is a single conditional UPDATE, so concurrent spends
// can never push the balance below zero.
func (r *PostgresRepository) DecrementCredit(ctx context.Context, userID string) (int, error) {
	var remaining int
	err := r.db.QueryRow(ctx, `
		UPDATE profiles
		SET credits = credits - 1, updated_at = now()
		WHERE user_id = $1 AND credits > 0
		RETURNING credits
	`, userID).Scan(&remaining)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrInsufficientCredits
		}
		return 0, err
	}
	return remaining, nil
}

func (r *PostgresRepository) AddCredits(ctx context.Context, userID string, amount int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET credits = credits + $1, updated_at = now()
		WHERE user_id = $2
	`, amount, userID)
	return err
}

func (r *PostgresRepository) Activate(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET activated = TRUE,
		    activated_at = COALESCE(activated_at, now()),
		    updated_at = now()
		WHERE user_id = $1
	`, userID)
	return err
}

func (r *PostgresRepository) SetStripeCustomer(ctx context.Context, userID, customerID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET stripe_customer_id = $1, updated_at = now()
		WHERE user_id = $2
	`, customerID, userID)
	return err
}

func (r *PostgresRepository) FindByStripeCustomer(ctx context.Context, customerID string) (*Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE stripe_customer_id = $1
	`, customerID)

	p, err := scanProfile(row)
	if err != nil {
		return nil, errors.New("no profile for stripe customer")
	}
	return p, nil
}

func (r *PostgresRepository) UpdateSubscription(
	ctx context.Context,
	userID string,
	subscriptionID *string,
	status *string,
	priceID *string,
	currentPeriodEnd *time.Time,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET stripe_subscription_id = $1,
		    subscription_status = $2,
		    subscription_price_id = $3,
		    current_period_end = $4,
		    updated_at = now()
		WHERE user_id = $5
	`, subscriptionID, status, priceID, currentPeriodEnd, userID)
	return err
}
