package flatfile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unchain0/sistema-ferias/vacation"
)

// CreateUser stores a new user with an assigned id and timestamp.
// Emails are lowercased before storing; duplicates are rejected.
func (s *Store) CreateUser(_ context.Context, n vacation.NewUser) (*vacation.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(n.Email))
	for _, u := range users {
		if u.Email == email {
			return nil, vacation.ErrEmailTaken
		}
	}

	user := vacation.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         n.Name,
		PasswordHash: n.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.saveUsers(append(users, user)); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*vacation.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*vacation.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}
