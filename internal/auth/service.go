package auth

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

// ProfileSeeder creates the credits/activation profile row for a new user.
type ProfileSeeder interface {
	Ensure(ctx context.Context, userID string) error
}

type Service struct {
	repo     UserRepository
	profiles ProfileSeeder
}

func NewService(repo UserRepository, profiles ProfileSeeder) *Service {
	return &Service{repo: repo, profiles: profiles}
}

// REGISTER
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     RoleOwner,
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	// Seed the profile with starter credits. Registration already
	// succeeded, so a seeding failure is logged, not surfaced.
	if s.profiles != nil {
		if err := s.profiles.Ensure(ctx, user.ID); err != nil {
			log.Printf("PROFILE_SEED_FAILED user=%s err=%v", user.ID, err)
		}
	}

	return user, nil
}

// LOGIN
func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
