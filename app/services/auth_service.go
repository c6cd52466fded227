package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/app/repositories"
	"github.com/shashiranjanraj/foodmart/pkg/apperrors"
	"github.com/shashiranjanraj/foodmart/pkg/auth"
)

// AuthService issues tokens for registration and login. There is no session
// state: a token's validity is decided purely by its signature and expiry.
type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user and returns a fresh token with the public
// projection. Email uniqueness relies on the pre-check below; two concurrent
// registrations can still race into duplicates, which the store does not
// prevent.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, models.PublicUser, error) {
	if name == "" || email == "" || password == "" {
		return "", models.PublicUser{}, apperrors.Validation("Name, email, and password are required")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	if existing != nil {
		return "", models.PublicUser{}, apperrors.Conflict("User with this email already exists")
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password, // stored as supplied; hashing is out of contract
		CreatedAt: time.Now().UTC(),
		Orders:    []string{},
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return "", models.PublicUser{}, err
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", models.PublicUser{}, err
	}

	return token, user.Public(), nil
}

// Login checks the credential pair and returns a fresh token. The failure
// message is deliberately the same whether the email is unknown or the
// password wrong, so registered emails cannot be probed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.PublicUser, error) {
	if email == "" || password == "" {
		return "", models.PublicUser{}, apperrors.Validation("Email and password are required")
	}

	user, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	if user == nil {
		return "", models.PublicUser{}, apperrors.Auth("Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", models.PublicUser{}, err
	}

	return token, user.Public(), nil
}
