package note

import (
	"context"
	"fmt"
)

// Delete removes the note with id and returns it
func (s *Service) Delete(ctx context.Context, id string) (Note, error) {
	if id == "" {
		return Note{}, ErrInvalidInput
	}

	current, err := s.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}

	if err := s.notes.Delete(ctx, current.Id); err != nil {
		return Note{}, fmt.Errorf("delete note %s: %w", id, err)
	}
	return current, nil
}
