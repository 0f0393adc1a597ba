package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/notes-api/persistence/v1/note"
)

// Update overwrites user, title, text and completed of an existing note
func (s *Service) Update(ctx context.Context, upd UpdateNote) (Note, error) {
	if err := upd.Validate(); err != nil {
		return Note{}, err
	}

	current, err := s.notes.Find(ctx, upd.Id)
	if err != nil {
		return Note{}, fmt.Errorf("find note %s: %w", upd.Id, err)
	}
	if current.Id == "" {
		return Note{}, ErrNotFound
	}

	duplicate, err := s.notes.FindByTitle(ctx, upd.Title)
	if err != nil {
		return Note{}, fmt.Errorf("check duplicate title: %w", err)
	}
	// keeping its own title is not a conflict
	if duplicate.Id != "" && duplicate.Id != upd.Id {
		return Note{}, ErrConflict
	}

	updated, err := s.notes.Update(ctx, note.Note{
		Id:        current.Id,
		User:      upd.User,
		Title:     upd.Title,
		Text:      upd.Text,
		Completed: *upd.Completed,
		UpdatedAt: current.UpdatedAt,
		CreatedAt: current.CreatedAt,
	})
	if err != nil {
		return Note{}, fmt.Errorf("update note %s: %w", upd.Id, err)
	}
	// deleted after the lookup
	if updated.Id == "" {
		return Note{}, ErrNotFound
	}
	return Note(updated), nil
}
