package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ribgsilva/notes-api/persistence/v1/cache"
	"github.com/ribgsilva/notes-api/sys"
)

// Find returns the user with the given id, or a zero User when there is none
func (r *Repository) Find(ctx context.Context, id string) (User, error) {
	key := fmt.Sprintf(userKey, id)

	if u, ok := cache.Get[User](ctx, r.cache, r.log, key); ok {
		return u, nil
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := r.db.PrepareContext(dbCtx, "SELECT id, username, updatedAt, createdAt FROM users WHERE id = ?")
	if err != nil {
		return User{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	u, err := scan(stmt.QueryRowContext(dbCtx, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return User{}, nil
	case err != nil:
		return User{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	cache.Set(ctx, r.cache, r.log, key, u)
	return u, nil
}
