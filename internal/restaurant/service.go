package restaurant

import (
	"context"
	"errors"
)

var ErrNotOwner = errors.New("not the restaurant owner")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateRestaurant(
	ctx context.Context,
	name string,
	city string,
	cuisineType string,
	shortDescription string,
	ownerID string,
) (*Restaurant, error) {

	if name == "" || city == "" || cuisineType == "" {
		return nil, errors.New("missing required fields")
	}

	restaurant := &Restaurant{
		Name:             name,
		City:             city,
		CuisineType:      cuisineType,
		ShortDescription: shortDescription,
		OwnerID:          ownerID,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (s *Service) ListMyRestaurants(ctx context.Context, ownerID string) ([]Restaurant, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetOwned fetches a restaurant and verifies ownership. Used when a
// generation request references a restaurant for prompt context.
func (s *Service) GetOwned(ctx context.Context, id, ownerID string) (*Restaurant, error) {
	rest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rest.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return rest, nil
}
