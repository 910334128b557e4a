package profile

import (
	"context"
	"errors"
	"log"
	"time"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrActivationRequired  = errors.New("activation required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Ensure creates the profile row with starter credits if it does not exist.
// Called on registration (auth.ProfileSeeder).
func (s *Service) Ensure(ctx context.Context, userID string) error {
	_, err := s.repo.GetOrCreate(ctx, userID)
	return err
}

func (s *Service) Get(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// SpendCredit consumes one generation credit.
func (s *Service) SpendCredit(ctx context.Context, userID string) (int, error) {
	remaining, err := s.repo.DecrementCredit(ctx, userID)
	if err != nil {
		return 0, err
	}
	log.Printf("CREDIT_SPENT user=%s remaining=%d", userID, remaining)
	return remaining, nil
}

// HasCredits is the cheap pre-check before doing any LLM work.
// The authoritative check is the conditional decrement itself.
func (s *Service) HasCredits(ctx context.Context, userID string) (bool, error) {
	p, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return false, err
	}
	return p.Credits > 0, nil
}

// RequireActivated gates design downloads.
func (s *Service) RequireActivated(ctx context.Context, userID string) error {
	p, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	if !p.Activated {
		return ErrActivationRequired
	}
	return nil
}

// Activate applies the one-time activation purchase: unlocks downloads
// and grants the initial credit pack.
func (s *Service) Activate(ctx context.Context, userID string) error {
	p, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Activate(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.AddCredits(ctx, userID, ActivationCredits); err != nil {
		return err
	}
	if p.Activated {
		log.Printf("ACTIVATE_REPEAT user=%s (credits granted again by event)", userID)
	} else {
		log.Printf("ACTIVATED user=%s credits=+%d", userID, ActivationCredits)
	}
	return nil
}

func (s *Service) GrantCredits(ctx context.Context, userID string, amount int) error {
	if amount <= 0 {
		return errors.New("credit amount must be positive")
	}
	if _, err := s.repo.GetOrCreate(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.AddCredits(ctx, userID, amount); err != nil {
		return err
	}
	log.Printf("CREDITS_GRANTED user=%s amount=%d", userID, amount)
	return nil
}

func (s *Service) AttachStripeCustomer(ctx context.Context, userID, customerID string) error {
	if _, err := s.repo.GetOrCreate(ctx, userID); err != nil {
		return err
	}
	return s.repo.SetStripeCustomer(ctx, userID, customerID)
}

func (s *Service) FindByStripeCustomer(ctx context.Context, customerID string) (*Profile, error) {
	return s.repo.FindByStripeCustomer(ctx, customerID)
}

// SyncSubscription mirrors the Stripe subscription state onto the profile.
func (s *Service) SyncSubscription(
	ctx context.Context,
	userID string,
	subscriptionID, status, priceID string,
	currentPeriodEnd *time.Time,
) error {
	var subID, st, price *string
	if subscriptionID != "" {
		subID = &subscriptionID
	}
	if status != "" {
		st = &status
	}
	if priceID != "" {
		price = &priceID
	}
	return s.repo.UpdateSubscription(ctx, userID, subID, st, price, currentPeriodEnd)
}

// ClearSubscription handles customer.subscription.deleted.
func (s *Service) ClearSubscription(ctx context.Context, userID string) error {
	canceled := "canceled"
	return s.repo.UpdateSubscription(ctx, userID, nil, &canceled, nil, nil)
}
