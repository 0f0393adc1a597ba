package note

import (
	"context"
	"fmt"
)

// Find returns the note with id or ErrNotFound
func (s *Service) Find(ctx context.Context, id string) (Note, error) {
	find, err := s.notes.Find(ctx, id)
	if err != nil {
		return Note{}, fmt.Errorf("find note %s: %w", id, err)
	}
	if find.Id == "" {
		return Note{}, ErrNotFound
	}
	return Note(find), nil
}
