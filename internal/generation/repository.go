package generation

import "context"

type Repository interface {
	Save(ctx context.Context, g *Generation) error
	GetByID(ctx context.Context, id string) (*Generation, error)
	ListByUser(ctx context.Context, userID string) ([]Summary, error)

	// Recent is the admin overview across all users.
	Recent(ctx context.Context, limit int) ([]Summary, error)
}
