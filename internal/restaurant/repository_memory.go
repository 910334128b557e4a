package restaurant

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu          sync.Mutex
	restaurants map[string]*Restaurant
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		restaurants: make(map[string]*Restaurant),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, rest *Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rest.ID == "" {
		rest.ID = uuid.New().String()
	}
	rest.CreatedAt = time.Now()
	cp := *rest
	r.restaurants[rest.ID] = &cp
	return nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Restaurant
	for _, rest := range r.restaurants {
		if rest.OwnerID == ownerID {
			out = append(out, *rest)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest, ok := r.restaurants[id]
	if !ok {
		return nil, errors.New("restaurant not found")
	}
	cp := *rest
	return &cp, nil
}
