package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ribgsilva/notes-api/persistence/v1/cache"
	"github.com/ribgsilva/notes-api/sys"
)

// Find returns the note with the given id, or a zero Note when there is none
func (r *Repository) Find(ctx context.Context, id string) (Note, error) {
	key := fmt.Sprintf(noteKey, id)

	if n, ok := cache.Get[Note](ctx, r.cache, r.log, key); ok {
		return n, nil
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := r.db.PrepareContext(dbCtx, "SELECT id, userId, title, content, completed, updatedAt, createdAt FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	note, err := scan(stmt.QueryRowContext(dbCtx, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	cache.Set(ctx, r.cache, r.log, key, note)
	return note, nil
}
