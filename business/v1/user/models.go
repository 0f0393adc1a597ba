package user

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput = errors.New("all fields are required")
	ErrConflict     = errors.New("duplicate username")
	ErrNotFound     = errors.New("user not found")
	ErrNoUsers      = errors.New("no users found")
)

type User struct {
	Id        string    `json:"id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Username  string    `json:"username" example:"dave"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewUser struct {
	Username string `json:"username"`
}
