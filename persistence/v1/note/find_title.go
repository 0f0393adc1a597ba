package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/Masterminds/squirrel"
	"github.com/ribgsilva/notes-api/platform/collation"
	"github.com/ribgsilva/notes-api/sys"
)

// FindByTitle returns the note whose title equals title ignoring case, or a zero Note
func (r *Repository) FindByTitle(ctx context.Context, title string) (Note, error) {
	query, args, err := squirrel.
		Select(columns...).
		From("notes").
		Where(squirrel.Eq{"titleKey": collation.Key(title)}).
		ToSql()
	if err != nil {
		return Note{}, fmt.Errorf("failed to build find by title query: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	note, err := scan(r.db.QueryRowContext(dbCtx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query note by title: %w", err)
	}
	return note, nil
}
