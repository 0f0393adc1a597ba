package user

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/ribgsilva/notes-api/platform/collation"
	"github.com/ribgsilva/notes-api/sys"
	"time"
)

// Insert stores a new user and returns it
func (r *Repository) Insert(ctx context.Context, newU NewUser) (User, error) {
	n := time.Now().UTC().Truncate(time.Second)
	u := User{
		Id:        uuid.NewString(),
		Username:  newU.Username,
		UpdatedAt: n,
		CreatedAt: n,
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := r.db.PrepareContext(dbCtx, "INSERT INTO users (id, username, usernameKey, updatedAt, createdAt) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return User{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, u.Id, u.Username, collation.Key(u.Username), n, n); err != nil {
		return User{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return u, nil
}
