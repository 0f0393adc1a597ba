package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/notes-api/persistence/v1/cache"
	"github.com/ribgsilva/notes-api/sys"
)

// Delete removes the note with the given id
func (r *Repository) Delete(ctx context.Context, id string) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := r.db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, id); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}

	cache.Del(ctx, r.cache, r.log, fmt.Sprintf(noteKey, id))
	return nil
}
