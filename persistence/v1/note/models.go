package note

import (
	"database/sql"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"time"
)

const noteKey = "notes.%s"

var columns = []string{"id", "userId", "title", "content", "completed", "updatedAt", "createdAt"}

type Note struct {
	Id        string
	User      string
	Title     string
	Text      string
	Completed bool
	UpdatedAt time.Time
	CreatedAt time.Time
}

type NewNote struct {
	User  string
	Title string
	Text  string
}

// Repository stores notes in a sql database, caching lookups by id in redis.
// A nil cache disables caching.
type Repository struct {
	db    *sql.DB
	cache *redis.Client
	log   *zap.SugaredLogger
}

func NewRepository(db *sql.DB, cache *redis.Client, log *zap.SugaredLogger) *Repository {
	return &Repository{
		db:    db,
		cache: cache,
		log:   log,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Note, error) {
	var n Note
	err := row.Scan(&n.Id, &n.User, &n.Title, &n.Text, &n.Completed, &n.UpdatedAt, &n.CreatedAt)
	return n, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
