package note

import (
	"context"
	"fmt"
	"github.com/Masterminds/squirrel"
	"github.com/ribgsilva/notes-api/sys"
)

// List returns every note, oldest first
func (r *Repository) List(ctx context.Context) ([]Note, error) {
	query, args, err := squirrel.
		Select(columns...).
		From("notes").
		OrderBy("createdAt").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	rows, err := r.db.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}
