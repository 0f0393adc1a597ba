package note_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ribgsilva/notes-api/business/v1/note"
	"github.com/ribgsilva/notes-api/persistence/v1/memory"
	pnote "github.com/ribgsilva/notes-api/persistence/v1/note"
	"github.com/ribgsilva/notes-api/persistence/v1/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	svc   *note.Service
	notes *memory.Notes
	users *memory.Users
	u1    user.User
	u2    user.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	users := memory.NewUsers()
	u1, err := users.Insert(ctx, user.NewUser{Username: "dave"})
	require.NoError(t, err)
	u2, err := users.Insert(ctx, user.NewUser{Username: "ana"})
	require.NoError(t, err)

	notes := memory.NewNotes()
	return fixture{
		svc:   note.NewService(notes, users, zap.NewNop().Sugar()),
		notes: notes,
		users: users,
		u1:    u1,
		u2:    u2,
	}
}

func completed(b bool) *bool { return &b }

func TestList_Empty(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background())
	assert.ErrorIs(t, err, note.ErrNoNotes)
}

func TestCreate_ThenListAttachesUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, note.NewNote{User: f.u1.Id, Title: "Shopping", Text: "milk"})
	require.NoError(t, err)
	assert.False(t, first.Completed)

	_, err = f.svc.Create(ctx, note.NewNote{User: f.u2.Id, Title: "Chores", Text: "dishes"})
	require.NoError(t, err)

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.Id, list[0].Id)
	assert.Equal(t, "dave", list[0].Username)
	assert.Equal(t, "Chores", list[1].Title)
	assert.Equal(t, "ana", list[1].Username)
}

func TestList_UnknownOwnerHasEmptyUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, note.NewNote{User: "ghost", Title: "Orphan", Text: "?"})
	require.NoError(t, err)

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Username)
}

type failingUsers struct{}

func (failingUsers) Find(context.Context, string) (user.User, error) {
	return user.User{}, errors.New("connection reset")
}

func TestList_OwnerLookupFailureAbortsBatch(t *testing.T) {
	ctx := context.Background()
	notes := memory.NewNotes()
	for _, title := range []string{"a", "b", "c"} {
		_, err := notes.Insert(ctx, pnote.NewNote{User: "u", Title: title, Text: "t"})
		require.NoError(t, err)
	}

	svc := note.NewService(notes, failingUsers{}, zap.NewNop().Sugar())
	list, err := svc.List(ctx)
	assert.Error(t, err)
	assert.Nil(t, list)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)

	for _, n := range []note.NewNote{
		{Title: "t", Text: "x"},
		{User: "u", Text: "x"},
		{User: "u", Title: "t"},
	} {
		_, err := f.svc.Create(context.Background(), n)
		assert.ErrorIs(t, err, note.ErrInvalidInput, "%+v", n)
	}
}

func TestCreate_DuplicateTitleIgnoringCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, note.NewNote{User: "u1", Title: "Shopping", Text: "milk"})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, note.NewNote{User: "u2", Title: "shopping", Text: "eggs"})
	assert.ErrorIs(t, err, note.ErrConflict)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, note.NewNote{User: "u1", Title: "Shopping", Text: "milk"})
	require.NoError(t, err)
	other, err := f.svc.Create(ctx, note.NewNote{User: "u2", Title: "Chores", Text: "dishes"})
	require.NoError(t, err)

	t.Run("renames and overwrites every field", func(t *testing.T) {
		updated, err := f.svc.Update(ctx, note.UpdateNote{
			Id: first.Id, User: "u2", Title: "Shopping List", Text: "milk, eggs", Completed: completed(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "Shopping List", updated.Title)

		got, err := f.svc.Find(ctx, first.Id)
		require.NoError(t, err)
		assert.Equal(t, "u2", got.User)
		assert.Equal(t, "milk, eggs", got.Text)
		assert.True(t, got.Completed)
	})

	t.Run("keeping its own title differently cased", func(t *testing.T) {
		_, err := f.svc.Update(ctx, note.UpdateNote{
			Id: first.Id, User: "u1", Title: "SHOPPING LIST", Text: "milk", Completed: completed(false),
		})
		assert.NoError(t, err)
	})

	t.Run("title of another note", func(t *testing.T) {
		_, err := f.svc.Update(ctx, note.UpdateNote{
			Id: first.Id, User: "u1", Title: "chores", Text: "milk", Completed: completed(false),
		})
		assert.ErrorIs(t, err, note.ErrConflict)

		got, err := f.svc.Find(ctx, other.Id)
		require.NoError(t, err)
		assert.Equal(t, "Chores", got.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.svc.Update(ctx, note.UpdateNote{
			Id: "missing", User: "u1", Title: "x", Text: "y", Completed: completed(false),
		})
		assert.ErrorIs(t, err, note.ErrNotFound)
	})

	t.Run("completed is required", func(t *testing.T) {
		_, err := f.svc.Update(ctx, note.UpdateNote{Id: first.Id, User: "u1", Title: "x", Text: "y"})
		assert.ErrorIs(t, err, note.ErrInvalidInput)
	})
}

// deletingNotes drops the note right before writing it, as a concurrent delete would
type deletingNotes struct {
	*memory.Notes
}

func (d deletingNotes) Update(ctx context.Context, n pnote.Note) (pnote.Note, error) {
	if err := d.Notes.Delete(ctx, n.Id); err != nil {
		return pnote.Note{}, err
	}
	return d.Notes.Update(ctx, n)
}

func TestUpdate_NoteDeletedMeanwhile(t *testing.T) {
	ctx := context.Background()
	notes := memory.NewNotes()
	svc := note.NewService(deletingNotes{notes}, memory.NewUsers(), zap.NewNop().Sugar())

	created, err := svc.Create(ctx, note.NewNote{User: "u1", Title: "Shopping", Text: "milk"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, note.UpdateNote{
		Id: created.Id, User: "u1", Title: "Shopping List", Text: "milk", Completed: completed(true),
	})
	assert.ErrorIs(t, err, note.ErrNotFound)

	got, err := notes.Find(ctx, created.Id)
	require.NoError(t, err)
	assert.Empty(t, got.Id)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, note.NewNote{User: "u1", Title: "Shopping", Text: "milk"})
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, note.NewNote{User: "u1", Title: "Chores", Text: "dishes"})
	require.NoError(t, err)

	_, err = f.svc.Delete(ctx, "")
	assert.ErrorIs(t, err, note.ErrInvalidInput)

	_, err = f.svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, note.ErrNotFound)

	deleted, err := f.svc.Delete(ctx, second.Id)
	require.NoError(t, err)
	assert.Equal(t, "Chores", deleted.Title)

	// only the addressed note is gone
	_, err = f.svc.Find(ctx, second.Id)
	assert.ErrorIs(t, err, note.ErrNotFound)
	kept, err := f.svc.Find(ctx, first.Id)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", kept.Title)
}
