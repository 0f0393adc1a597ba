package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-api/app/api/handlers/v1/auth"
	"github.com/ribgsilva/notes-api/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes-api/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes-api/app/api/handlers/v1/users"
	"github.com/ribgsilva/notes-api/business/v1/note"
	"github.com/ribgsilva/notes-api/business/v1/user"
	"github.com/ribgsilva/notes-api/platform/metrics"
	"github.com/ribgsilva/notes-api/platform/web/handler"
	"go.uber.org/zap"
)

// Api holds what the api routes depend on
type Api struct {
	Notes *note.Service
	Users *user.Service
	// LoginLimiter guards the login route, nil leaves it unguarded.
	LoginLimiter gin.HandlerFunc
	Log          *zap.SugaredLogger
}

func MapDefaults(r *gin.Engine) {
	r.GET("/healthcheck", handler.Wrapper(healthcheck.Get))
	r.GET("/metrics", metrics.Handler())
}

func MapApi(r *gin.Engine, api Api) {
	n := notes.Handlers{Notes: api.Notes, Log: api.Log}
	r.GET("/notes", handler.Wrapper(n.List))
	r.POST("/notes", handler.Wrapper(n.Create))
	r.PATCH("/notes", handler.Wrapper(n.Update))
	r.DELETE("/notes", handler.Wrapper(n.Delete))

	u := users.Handlers{Users: api.Users, Log: api.Log}
	r.GET("/users", handler.Wrapper(u.List))
	r.POST("/users", handler.Wrapper(u.Create))

	a := auth.Handlers{Users: api.Users, Log: api.Log}
	login := []gin.HandlerFunc{handler.Wrapper(a.Login)}
	if api.LoginLimiter != nil {
		login = append([]gin.HandlerFunc{api.LoginLimiter}, login...)
	}
	r.POST("/auth", login...)
}
