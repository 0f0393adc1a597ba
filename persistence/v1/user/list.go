package user

import (
	"context"
	"fmt"
	"github.com/Masterminds/squirrel"
	"github.com/ribgsilva/notes-api/sys"
)

// List returns every user, oldest first
func (r *Repository) List(ctx context.Context) ([]User, error) {
	query, args, err := squirrel.
		Select(columns...).
		From("users").
		OrderBy("createdAt").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	rows, err := r.db.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
