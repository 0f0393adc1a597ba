package notes

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-api/business/v1/note"
	"github.com/ribgsilva/notes-api/platform/web/handler"
	"net/http"
)

type UpdateRequest struct {
	Id        string `json:"id" binding:"required" example:"7b4e2f0a-3c1d-4c59-9a57-0d3c9f0e2b11"`
	User      string `json:"user" binding:"required" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Title     string `json:"title" binding:"required" example:"Shopping List"`
	Text      string `json:"text" binding:"required" example:"milk, eggs"`
	Completed *bool  `json:"completed" binding:"required" example:"true"`
}

// Update godoc
// @Summary Update a note
// @Description Overwrite user, title, text and completed of a note
// @Tags Note
// @Accept json
// @Produce json
// @Param note body UpdateRequest true "Note"
// @Success 200 {object} handler.Message
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes [patch]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	// a non boolean completed fails decoding
	var req UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: msgFieldsRequired},
		}
	}

	updated, err := h.Notes.Update(ctx.Request.Context(), note.UpdateNote{
		Id:        req.Id,
		User:      req.User,
		Title:     req.Title,
		Text:      req.Text,
		Completed: req.Completed,
	})

	switch {
	case errors.Is(err, note.ErrInvalidInput):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: msgFieldsRequired},
		}
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: msgNotFound},
		}
	case errors.Is(err, note.ErrConflict):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: msgDuplicateTitle},
		}
	case err != nil:
		return handler.Internal(h.Log, "update note", err)
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   handler.Message{Message: fmt.Sprintf("%s updated", updated.Title)},
		}
	}
}
