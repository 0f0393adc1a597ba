// Package ratelimit limits how often a client may hit a route.
//
// The middleware keys clients by IP, asks a Store for a decision and, when the
// client is over its allowance, answers with a fixed JSON message and writes one
// line to the event log.
package ratelimit

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ribgsilva/notes-api/platform/metrics"
	"github.com/ribgsilva/notes-api/platform/web/handler"
	"go.uber.org/zap"
)

// LoginMessage is the rejection message of the login limiter
const LoginMessage = "Too many login attempts from this IP, please try again after a 60 second pause"

type KeyFunc func(ctx *gin.Context) string

type Options struct {
	// Name labels the limiter in metrics.
	Name       string
	Store      Store
	KeyFn      KeyFunc
	StatusCode int
	Message    string
	// Log receives store failures, Events receives one line per rejection.
	Log    *zap.SugaredLogger
	Events *zap.SugaredLogger
}

// ClientIP keys requests by the client address resolved by gin
func ClientIP(ctx *gin.Context) string {
	if ip := ctx.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

func Middleware(opts Options) gin.HandlerFunc {
	if opts.StatusCode == 0 {
		opts.StatusCode = http.StatusTooManyRequests
	}
	if opts.Message == "" {
		opts.Message = http.StatusText(opts.StatusCode)
	}
	if opts.KeyFn == nil {
		opts.KeyFn = ClientIP
	}
	if opts.Name == "" {
		opts.Name = "default"
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop().Sugar()
	}
	if opts.Events == nil {
		opts.Events = zap.NewNop().Sugar()
	}

	return func(ctx *gin.Context) {
		key := opts.KeyFn(ctx)

		dec, err := opts.Store.Take(ctx.Request.Context(), key)
		if err != nil {
			// fail open
			opts.Log.Errorw("rate limit", "limiter", opts.Name, "key", key, "ERROR", err)
			ctx.Next()
			return
		}

		if !dec.Allowed {
			metrics.RateLimited.WithLabelValues(opts.Name).Inc()
			opts.Events.Errorw(fmt.Sprintf("Too Many Requests: %s", opts.Message),
				"id", uuid.NewString(),
				"method", ctx.Request.Method,
				"url", ctx.Request.URL.RequestURI(),
				"origin", ctx.GetHeader("Origin"),
			)

			if dec.ResetIn > 0 {
				ctx.Header("Retry-After", strconv.Itoa(int(math.Ceil(dec.ResetIn.Seconds()))))
			}
			ctx.AbortWithStatusJSON(opts.StatusCode, handler.Error{Message: opts.Message})
			return
		}

		ctx.Next()
	}
}
