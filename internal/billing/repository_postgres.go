package billing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresEventRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEventRepository(db *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) Insert(
	ctx context.Context,
	stripeEventID, eventType string,
	payload []byte,
) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO billing_events (stripe_event_id, event_type, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (stripe_event_id) DO NOTHING
	`, stripeEventID, eventType, payload)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FetchPending claims the oldest pending event.
// Returns (nil, nil) when no events are available (NOT an error).
func (r *PostgresEventRepository) FetchPending(ctx context.Context) (*Event, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	evt := &Event{}
	err = tx.QueryRow(ctx, `
		SELECT id, stripe_event_id, event_type, payload
		FROM billing_events
		WHERE status = 'PENDING'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&evt.ID, &evt.StripeEventID, &evt.Type, &evt.Payload)

	// No pending events is NOT an error
	if err != nil {
		return nil, nil
	}

	// Mark as processing immediately (atomic claim)
	_, err = tx.Exec(ctx, `
		UPDATE billing_events
		SET status = 'PROCESSING'
		WHERE id = $1
	`, evt.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	evt.Status = "PROCESSING"
	return evt, nil
}

func (r *PostgresEventRepository) MarkProcessed(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE billing_events
		SET status = 'PROCESSED',
		    processed_at = now()
		WHERE id = $1
	`, id)
	return err
}

func (r *PostgresEventRepository) MarkFailed(ctx context.Context, id int64, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE billing_events
		SET status = 'FAILED',
		    error = $1,
		    processed_at = now()
		WHERE id = $2
	`, reason, id)
	return err
}
