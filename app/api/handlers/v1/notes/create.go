package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-api/business/v1/note"
	"github.com/ribgsilva/notes-api/platform/web/handler"
	"net/http"
)

type CreateRequest struct {
	User  string `json:"user" binding:"required" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Title string `json:"title" binding:"required" example:"Shopping"`
	Text  string `json:"text" binding:"required" example:"milk"`
}

// Create godoc
// @Summary Create a note
// @Description Create a note, titles are unique ignoring case
// @Tags Note
// @Accept json
// @Produce json
// @Param note body CreateRequest true "New note"
// @Success 201 {object} handler.Message
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var req CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: msgFieldsRequired},
		}
	}

	_, err := h.Notes.Create(ctx.Request.Context(), note.NewNote{
		User:  req.User,
		Title: req.Title,
		Text:  req.Text,
	})

	switch {
	case errors.Is(err, note.ErrInvalidInput):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: msgFieldsRequired},
		}
	case errors.Is(err, note.ErrConflict):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: msgDuplicateTitle},
		}
	case errors.Is(err, note.ErrInvalidData):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "Invalid note data received"},
		}
	case err != nil:
		return handler.Internal(h.Log, "create note", err)
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   handler.Message{Message: "New note created"},
		}
	}
}
