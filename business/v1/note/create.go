package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/notes-api/persistence/v1/note"
)

// Create stores a new note, rejecting titles already used by another note ignoring case
func (s *Service) Create(ctx context.Context, newN NewNote) (Note, error) {
	if err := newN.Validate(); err != nil {
		return Note{}, err
	}

	duplicate, err := s.notes.FindByTitle(ctx, newN.Title)
	if err != nil {
		return Note{}, fmt.Errorf("check duplicate title: %w", err)
	}
	if duplicate.Id != "" {
		return Note{}, ErrConflict
	}

	created, err := s.notes.Insert(ctx, note.NewNote(newN))
	if err != nil {
		return Note{}, fmt.Errorf("insert note: %w", err)
	}
	if created.Id == "" {
		return Note{}, ErrInvalidData
	}
	return Note(created), nil
}
