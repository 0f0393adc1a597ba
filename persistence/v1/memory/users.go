package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ribgsilva/notes-api/persistence/v1/user"
	"github.com/ribgsilva/notes-api/platform/collation"
)

// Users is an in-memory user store. List keeps insertion order.
type Users struct {
	mu    sync.RWMutex
	order []string
	byId  map[string]user.User
}

func NewUsers() *Users {
	return &Users{byId: make(map[string]user.User)}
}

func (s *Users) List(_ context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]user.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.byId[id])
	}
	return users, nil
}

func (s *Users) Find(_ context.Context, id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byId[id], nil
}

func (s *Users) FindByUsername(_ context.Context, username string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if u := s.byId[id]; collation.Equal(u.Username, username) {
			return u, nil
		}
	}
	return user.User{}, nil
}

func (s *Users) Insert(_ context.Context, newU user.NewUser) (user.User, error) {
	now := time.Now().UTC()
	u := user.User{
		Id:        uuid.NewString(),
		Username:  newU.Username,
		UpdatedAt: now,
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byId[u.Id] = u
	s.order = append(s.order, u.Id)
	return u, nil
}
