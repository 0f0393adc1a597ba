package notes

import (
	"github.com/ribgsilva/notes-api/business/v1/note"
	"go.uber.org/zap"
)

// Handlers serves the /notes resource
type Handlers struct {
	Notes *note.Service
	Log   *zap.SugaredLogger
}

const (
	msgFieldsRequired = "All fields are required"
	msgDuplicateTitle = "Duplicate note title"
	msgNotFound       = "Note not found"
)
