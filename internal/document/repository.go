package document

import "context"

type Repository interface {
	Save(ctx context.Context, doc *MenuDocument) error
	GetByID(ctx context.Context, id string) (*MenuDocument, error)
	ListByUser(ctx context.Context, userID string) ([]MenuDocument, error)
}
