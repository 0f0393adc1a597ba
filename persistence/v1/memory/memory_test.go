package memory

import (
	"context"
	"testing"

	"github.com/ribgsilva/notes-api/persistence/v1/note"
	"github.com/ribgsilva/notes-api/persistence/v1/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes(t *testing.T) {
	ctx := context.Background()
	s := NewNotes()

	first, err := s.Insert(ctx, note.NewNote{User: "u1", Title: "Shopping", Text: "milk"})
	require.NoError(t, err)
	second, err := s.Insert(ctx, note.NewNote{User: "u2", Title: "Chores", Text: "dishes"})
	require.NoError(t, err)

	found, err := s.FindByTitle(ctx, "SHOPPING")
	require.NoError(t, err)
	assert.Equal(t, first.Id, found.Id)

	first.Title = "Shopping List"
	first.Completed = true
	_, err = s.Update(ctx, first)
	require.NoError(t, err)

	got, err := s.Find(ctx, first.Id)
	require.NoError(t, err)
	assert.Equal(t, "Shopping List", got.Title)
	assert.True(t, got.Completed)
	assert.Equal(t, first.CreatedAt, got.CreatedAt)

	require.NoError(t, s.Delete(ctx, first.Id))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.Id, list[0].Id)

	missing, err := s.Find(ctx, first.Id)
	require.NoError(t, err)
	assert.Empty(t, missing.Id)

	gone, err := s.Update(ctx, first)
	require.NoError(t, err)
	assert.Empty(t, gone.Id, "updating a deleted note must not report it")

	missing, err = s.Find(ctx, first.Id)
	require.NoError(t, err)
	assert.Empty(t, missing.Id, "updating a deleted note must not recreate it")
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := NewUsers()

	u, err := s.Insert(ctx, user.NewUser{Username: "Dave"})
	require.NoError(t, err)

	found, err := s.FindByUsername(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, u, found)

	byId, err := s.Find(ctx, u.Id)
	require.NoError(t, err)
	assert.Equal(t, "Dave", byId.Username)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
