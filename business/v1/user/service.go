package user

import (
	"context"
	"fmt"
	"github.com/ribgsilva/notes-api/persistence/v1/user"
)

// Store is the persistence gateway for users. Lookups return a zero user.User
// when nothing matches.
type Store interface {
	List(ctx context.Context) ([]user.User, error)
	Find(ctx context.Context, id string) (user.User, error)
	FindByUsername(ctx context.Context, username string) (user.User, error)
	Insert(ctx context.Context, newU user.NewUser) (user.User, error)
}

type Service struct {
	users Store
}

func NewService(users Store) *Service {
	return &Service{users: users}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}

	result := make([]User, len(users))
	for i, u := range users {
		result[i] = User(u)
	}
	return result, nil
}

// Create stores a user, rejecting usernames already taken ignoring case
func (s *Service) Create(ctx context.Context, newU NewUser) (User, error) {
	if newU.Username == "" {
		return User{}, ErrInvalidInput
	}

	duplicate, err := s.users.FindByUsername(ctx, newU.Username)
	if err != nil {
		return User{}, fmt.Errorf("check duplicate username: %w", err)
	}
	if duplicate.Id != "" {
		return User{}, ErrConflict
	}

	created, err := s.users.Insert(ctx, user.NewUser(newU))
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return User(created), nil
}

// FindByUsername returns the user or ErrNotFound
func (s *Service) FindByUsername(ctx context.Context, username string) (User, error) {
	if username == "" {
		return User{}, ErrInvalidInput
	}

	find, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("find user %s: %w", username, err)
	}
	if find.Id == "" {
		return User{}, ErrNotFound
	}
	return User(find), nil
}
