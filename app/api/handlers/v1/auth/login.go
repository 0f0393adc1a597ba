package auth

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-api/business/v1/user"
	"github.com/ribgsilva/notes-api/platform/web/handler"
	"go.uber.org/zap"
	"net/http"
)

// Handlers serves the login route. It only resolves the user, issuing
// credentials is left to the gateway in front of the service.
type Handlers struct {
	Users *user.Service
	Log   *zap.SugaredLogger
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"dave"`
}

// Login godoc
// @Summary Log in
// @Description Resolve a user by username. Limited to 5 attempts per minute per IP.
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Credentials"
// @Success 200 {object} user.User
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 429 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /auth [post]
func (h Handlers) Login(ctx *gin.Context) handler.Result {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "All fields are required"},
		}
	}

	u, err := h.Users.FindByUsername(ctx.Request.Context(), req.Username)

	switch {
	case errors.Is(err, user.ErrNotFound):
		return handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Message: "Unauthorized"},
		}
	case err != nil:
		return handler.Internal(h.Log, "login", err)
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   u,
		}
	}
}
