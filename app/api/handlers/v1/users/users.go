package users

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-api/business/v1/user"
	"github.com/ribgsilva/notes-api/platform/web/handler"
	"go.uber.org/zap"
	"net/http"
)

// Handlers serves the /users resource
type Handlers struct {
	Users *user.Service
	Log   *zap.SugaredLogger
}

type CreateRequest struct {
	Username string `json:"username" binding:"required" example:"dave"`
}

// List godoc
// @Summary List users
// @Tags User
// @Produce json
// @Success 200 {array} user.User
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /users [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	users, err := h.Users.List(ctx.Request.Context())

	switch {
	case errors.Is(err, user.ErrNoUsers):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "No users found"},
		}
	case err != nil:
		return handler.Internal(h.Log, "list users", err)
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   users,
		}
	}
}

// Create godoc
// @Summary Create a user
// @Description Create a user, usernames are unique ignoring case
// @Tags User
// @Accept json
// @Produce json
// @Param user body CreateRequest true "New user"
// @Success 201 {object} handler.Message
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /users [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var req CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "All fields are required"},
		}
	}

	created, err := h.Users.Create(ctx.Request.Context(), user.NewUser{Username: req.Username})

	switch {
	case errors.Is(err, user.ErrInvalidInput):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "All fields are required"},
		}
	case errors.Is(err, user.ErrConflict):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: "Duplicate username"},
		}
	case err != nil:
		return handler.Internal(h.Log, "create user", err)
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   handler.Message{Message: fmt.Sprintf("New user %s created", created.Username)},
		}
	}
}
