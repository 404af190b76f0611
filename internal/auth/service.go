package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/merhebia-finest/tilbud/internal/users"
)

// ErrInvalidCredentials covers unknown accounts, wrong passwords and
// deactivated users alike, so responses never leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserSource is the slice of the users service the login flow needs.
type UserSource interface {
	FindByEmail(ctx context.Context, email string) (users.User, error)
}

// Service wraps authentication business rules.
type Service struct {
	source UserSource
	store  *Store
}

// NewService constructs a Service.
func NewService(source UserSource, store *Store) *Service {
	return &Service{source: source, store: store}
}

// Login validates credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (users.User, string, error) {
	user, err := s.source.FindByEmail(ctx, email)
	if err != nil {
		return users.User{}, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return users.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return users.User{}, "", ErrInvalidCredentials
	}

	token, err := s.store.Create(ctx, Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		return users.User{}, "", err
	}
	return user, token, nil
}

// Logout revokes a session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}
