package generation

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu          sync.Mutex
	generations map[string]*Generation
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		generations: make(map[string]*Generation),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, g *Generation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = time.Now()
	cp := *g
	r.generations[g.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Generation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.generations[id]
	if !ok {
		return nil, errors.New("generation not found")
	}
	cp := *g
	return &cp, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Summary
	for _, g := range r.generations {
		if g.UserID == userID {
			out = append(out, toSummary(g))
		}
	}
	sortSummaries(out)
	return out, nil
}

func (r *InMemoryRepository) Recent(ctx context.Context, limit int) ([]Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Summary
	for _, g := range r.generations {
		out = append(out, toSummary(g))
	}
	sortSummaries(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func toSummary(g *Generation) Summary {
	return Summary{
		ID:           g.ID,
		MenuName:     g.MenuName,
		Status:       g.Status,
		VariantCount: len(g.HTMLVariants),
		CreatedAt:    g.CreatedAt,
	}
}

func sortSummaries(s []Summary) {
	sort.Slice(s, func(i, j int) bool {
		return s[i].CreatedAt.After(s[j].CreatedAt)
	})
}
