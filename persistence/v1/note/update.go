package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/Masterminds/squirrel"
	"github.com/ribgsilva/notes-api/persistence/v1/cache"
	"github.com/ribgsilva/notes-api/platform/collation"
	"github.com/ribgsilva/notes-api/sys"
	"time"
)

// Update overwrites every mutable field of the note with n.Id. A zero Note is
// returned when there is no such note.
func (r *Repository) Update(ctx context.Context, n Note) (Note, error) {
	n.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	// updatedAt must be followed by a comma, ramsql lexes a bound date up to the next one
	stmt, err := r.db.PrepareContext(dbCtx, "UPDATE notes SET updatedAt = ?, userId = ?, title = ?, titleKey = ?, content = ?, completed = ? WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, n.UpdatedAt, n.User, n.Title, collation.Key(n.Title), n.Text, boolInt(n.Completed), n.Id)
	if err != nil {
		return Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}
	cache.Del(ctx, r.cache, r.log, fmt.Sprintf(noteKey, n.Id))

	// mysql reports unchanged rows as not affected, so zero needs a lookup
	if affected, err := res.RowsAffected(); err != nil || affected == 0 {
		exists, err := r.exists(dbCtx, n.Id)
		if err != nil {
			return Note{}, err
		}
		if !exists {
			return Note{}, nil
		}
	}
	return n, nil
}

func (r *Repository) exists(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Select("id").
		From("notes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var found string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&found)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to query note %s: %w", id, err)
	}
	return true, nil
}
