package note

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/ribgsilva/notes-api/platform/collation"
	"github.com/ribgsilva/notes-api/sys"
	"time"
)

// Insert stores a new, not completed, note and returns it
func (r *Repository) Insert(ctx context.Context, newN NewNote) (Note, error) {
	n := time.Now().UTC().Truncate(time.Second)
	note := Note{
		Id:        uuid.NewString(),
		User:      newN.User,
		Title:     newN.Title,
		Text:      newN.Text,
		UpdatedAt: n,
		CreatedAt: n,
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := r.db.PrepareContext(dbCtx, "INSERT INTO notes (id, userId, title, titleKey, content, completed, updatedAt, createdAt) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(dbCtx, note.Id, note.User, note.Title, collation.Key(note.Title), note.Text, boolInt(note.Completed), n, n)
	if err != nil {
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return note, nil
}
