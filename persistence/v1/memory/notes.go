// Package memory keeps notes and users in process memory. It serves
// DATABASE_DRIVER=memory and stands in for the sql repositories in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ribgsilva/notes-api/persistence/v1/note"
	"github.com/ribgsilva/notes-api/platform/collation"
)

// Notes is an in-memory note store. List keeps insertion order.
type Notes struct {
	mu    sync.RWMutex
	order []string
	byId  map[string]note.Note
}

func NewNotes() *Notes {
	return &Notes{byId: make(map[string]note.Note)}
}

func (s *Notes) List(_ context.Context) ([]note.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]note.Note, 0, len(s.order))
	for _, id := range s.order {
		notes = append(notes, s.byId[id])
	}
	return notes, nil
}

func (s *Notes) Find(_ context.Context, id string) (note.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byId[id], nil
}

func (s *Notes) FindByTitle(_ context.Context, title string) (note.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if n := s.byId[id]; collation.Equal(n.Title, title) {
			return n, nil
		}
	}
	return note.Note{}, nil
}

func (s *Notes) Insert(_ context.Context, newN note.NewNote) (note.Note, error) {
	now := time.Now().UTC()
	n := note.Note{
		Id:        uuid.NewString(),
		User:      newN.User,
		Title:     newN.Title,
		Text:      newN.Text,
		UpdatedAt: now,
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byId[n.Id] = n
	s.order = append(s.order, n.Id)
	return n, nil
}

func (s *Notes) Update(_ context.Context, n note.Note) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.byId[n.Id]
	if !ok {
		return note.Note{}, nil
	}
	n.CreatedAt = old.CreatedAt
	n.UpdatedAt = time.Now().UTC()
	s.byId[n.Id] = n
	return n, nil
}

func (s *Notes) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byId[id]; !ok {
		return nil
	}
	delete(s.byId, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
