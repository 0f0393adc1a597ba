package user

import (
	"database/sql"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"time"
)

const userKey = "users.%s"

var columns = []string{"id", "username", "updatedAt", "createdAt"}

type User struct {
	Id        string
	Username  string
	UpdatedAt time.Time
	CreatedAt time.Time
}

type NewUser struct {
	Username string
}

// Repository stores users in a sql database, caching lookups by id in redis.
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

func scan(row scanner) (User, error) {
	var u User
	err := row.Scan(&u.Id, &u.Username, &u.UpdatedAt, &u.CreatedAt)
	return u, err
}
