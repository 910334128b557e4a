package profile

import (
	"context"
	"errors"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		profiles: make(map[string]*Profile),
	}
}

func (r *InMemoryRepository) GetOrCreate(ctx context.Context, userID string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}

	p := &Profile{UserID: userID, Credits: StarterCredits}
	r.profiles[userID] = p
	cp := *p
	return &cp, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return nil, errors.New("profile not found")
	}
	cp := *p
	return &cp, nil
}

func (r *InMemoryRepository) DecrementCredit(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok || p.Credits <= 0 {
		return 0, ErrInsufficientCredits
	}
	p.Credits--
	return p.Credits, nil
}

func (r *InMemoryRepository) AddCredits(ctx context.Context, userID string, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return errors.New("profile not found")
	}
	p.Credits += amount
	return nil
}

func (r *InMemoryRepository) Activate(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return errors.New("profile not found")
	}
	if !p.Activated {
		now := time.Now()
		p.Activated = true
		p.ActivatedAt = &now
	}
	return nil
}

func (r *InMemoryRepository) SetStripeCustomer(ctx context.Context, userID, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return errors.New("profile not found")
	}
	p.StripeCustomerID = &customerID
	return nil
}

func (r *InMemoryRepository) FindByStripeCustomer(ctx context.Context, customerID string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.StripeCustomerID != nil && *p.StripeCustomerID == customerID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.New("no profile for stripe customer")
}

func (r *InMemoryRepository) UpdateSubscription(
	ctx context.Context,
	userID string,
	subscriptionID *string,
	status *string,
	priceID *string,
	currentPeriodEnd *time.Time,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return errors.New("profile not found")
	}
	p.StripeSubscriptionID = subscriptionID
	p.SubscriptionStatus = status
	p.SubscriptionPriceID = priceID
	p.CurrentPeriodEnd = currentPeriodEnd
	return nil
}
