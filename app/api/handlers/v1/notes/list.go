package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-api/business/v1/note"
	"github.com/ribgsilva/notes-api/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List every note with the username of its owner
// @Tags Note
// @Produce json
// @Success 200 {array} note.WithUser
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	notes, err := h.Notes.List(ctx.Request.Context())

	switch {
	case errors.Is(err, note.ErrNoNotes):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "No notes found"},
		}
	case err != nil:
		return handler.Internal(h.Log, "list notes", err)
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   notes,
		}
	}
}
