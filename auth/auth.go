/*
Package auth is the authentication collaborator: it verifies credentials
against the persistence port and hands out session tokens. The core never
sees a password; it only ever receives the authenticated user's identity.
*/
package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/unchain0/sistema-ferias/vacation"
)

// bcryptCost matches the original deployment's hashing parameters.
const bcryptCost = 12

// Service authenticates and registers users.
type Service struct {
	store vacation.Store
}

func NewService(store vacation.Store) *Service {
	return &Service{store: store}
}

// Authenticate verifies the credentials and returns the user, or
// (nil, nil) when the email is unknown or the password wrong. The two
// cases are deliberately indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*vacation.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// Register creates an account with a freshly hashed password. A taken
// email surfaces as vacation.ErrEmailTaken.
func (s *Service) Register(ctx context.Context, email, password, name string) (*vacation.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, vacation.ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.store.CreateUser(ctx, vacation.NewUser{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
}

// HashPassword produces the opaque credential stored on the user.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
