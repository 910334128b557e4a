package restaurant

import "context"

type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	ListByOwner(ctx context.Context, ownerID string) ([]Restaurant, error)
	GetByID(ctx context.Context, id string) (*Restaurant, error)
}
