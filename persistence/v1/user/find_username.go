package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/Masterminds/squirrel"
	"github.com/ribgsilva/notes-api/platform/collation"
	"github.com/ribgsilva/notes-api/sys"
)

// FindByUsername returns the user whose username equals username ignoring case, or a zero User
func (r *Repository) FindByUsername(ctx context.Context, username string) (User, error) {
	query, args, err := squirrel.
		Select(columns...).
		From("users").
		Where(squirrel.Eq{"usernameKey": collation.Key(username)}).
		ToSql()
	if err != nil {
		return User{}, fmt.Errorf("failed to build find by username query: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	u, err := scan(r.db.QueryRowContext(dbCtx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return User{}, nil
	case err != nil:
		return User{}, fmt.Errorf("failed to query user by username: %w", err)
	}
	return u, nil
}
