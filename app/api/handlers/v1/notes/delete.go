package notes

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-api/business/v1/note"
	"github.com/ribgsilva/notes-api/platform/web/handler"
	"net/http"
)

type DeleteRequest struct {
	Id string `json:"id" binding:"required" example:"7b4e2f0a-3c1d-4c59-9a57-0d3c9f0e2b11"`
}

// Delete godoc
// @Summary Delete a note
// @Description Delete the note with the given id
// @Tags Note
// @Accept json
// @Produce json
// @Param note body DeleteRequest true "Note id"
// @Success 200 {string} string "Note 'Shopping' with ID 7b4e2f0a-3c1d-4c59-9a57-0d3c9f0e2b11 deleted"
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	var req DeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "Note ID Required"},
		}
	}

	deleted, err := h.Notes.Delete(ctx.Request.Context(), req.Id)

	switch {
	case errors.Is(err, note.ErrInvalidInput):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "Note ID Required"},
		}
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: msgNotFound},
		}
	case err != nil:
		return handler.Internal(h.Log, "delete note", err)
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   fmt.Sprintf("Note '%s' with ID %s deleted", deleted.Title, deleted.Id),
		}
	}
}
