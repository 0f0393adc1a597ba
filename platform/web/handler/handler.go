// Package handler adapts result-returning functions into gin handlers.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Result is what a handler produces: the status code and the body serialized as JSON.
// A nil Body writes the status only.
type Result struct {
	Status int
	Body   any
}

// Error is the body of every non-2xx response
type Error struct {
	Message string `json:"message" example:"Note not found"`
}

// Message is the body of informative 2xx responses
type Message struct {
	Message string `json:"message" example:"New note created"`
}

// Func is a gin handler returning its response instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper converts a Func into a gin.HandlerFunc
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}

// Internal logs err and hides it behind a generic 500
func Internal(log *zap.SugaredLogger, op string, err error) Result {
	log.Errorw(op, "ERROR", err)
	return Result{
		Status: http.StatusInternalServerError,
		Body:   Error{Message: "internal server error"},
	}
}
