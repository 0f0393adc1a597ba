package note

import "errors"

var (
	// ErrInvalidInput means a required field is missing or malformed
	ErrInvalidInput = errors.New("all fields are required")
	// ErrInvalidData means the store did not produce the note
	ErrInvalidData = errors.New("invalid note data received")
	// ErrConflict means another note already has the title, ignoring case
	ErrConflict = errors.New("duplicate note title")
	// ErrNotFound means no note has the requested id
	ErrNotFound = errors.New("note not found")
	// ErrNoNotes means the collection is empty
	ErrNoNotes = errors.New("no notes found")
)
