package note

import (
	"context"
	"github.com/ribgsilva/notes-api/persistence/v1/note"
	"github.com/ribgsilva/notes-api/persistence/v1/user"
	"go.uber.org/zap"
)

// Store is the persistence gateway for notes. Lookups return a zero note.Note
// when nothing matches.
type Store interface {
	List(ctx context.Context) ([]note.Note, error)
	Find(ctx context.Context, id string) (note.Note, error)
	FindByTitle(ctx context.Context, title string) (note.Note, error)
	Insert(ctx context.Context, newN note.NewNote) (note.Note, error)
	Update(ctx context.Context, n note.Note) (note.Note, error)
	Delete(ctx context.Context, id string) error
}

// UserFinder resolves note owners
type UserFinder interface {
	Find(ctx context.Context, id string) (user.User, error)
}

type Service struct {
	notes Store
	users UserFinder
	log   *zap.SugaredLogger
}

func NewService(notes Store, users UserFinder, log *zap.SugaredLogger) *Service {
	return &Service{
		notes: notes,
		users: users,
		log:   log,
	}
}
