package note

import (
	"context"
	"fmt"
	"golang.org/x/sync/errgroup"
)

// List returns every note with its owner's username. Owners are looked up
// concurrently, the first failing lookup cancels the others and fails the batch.
func (s *Service) List(ctx context.Context) ([]WithUser, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}

	result := make([]WithUser, len(notes))
	g, gCtx := errgroup.WithContext(ctx)
	for i, n := range notes {
		i, n := i, n
		g.Go(func() error {
			u, err := s.users.Find(gCtx, n.User)
			if err != nil {
				return fmt.Errorf("find user %s of note %s: %w", n.User, n.Id, err)
			}
			if u.Id == "" {
				s.log.Warnw("list notes", "note", n.Id, "user", n.User, "warning", "owner not found")
			}
			result[i] = WithUser{Note: Note(n), Username: u.Username}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
