package document

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu   sync.Mutex
	docs map[string]*MenuDocument
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		docs: make(map[string]*MenuDocument),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, doc *MenuDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.CreatedAt = time.Now()
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*MenuDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	cp := *doc
	return &cp, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]MenuDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var docs []MenuDocument
	for _, doc := range r.docs {
		if doc.UserID == userID {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}
