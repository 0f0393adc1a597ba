// Package metrics holds the prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Requests counts served HTTP requests by route, method and status
	Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_http_requests_total",
			Help: "Number of HTTP requests served",
		},
		[]string{"route", "method", "status"},
	)

	// RequestDuration observes handler latency by route
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notes_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// RateLimited counts requests rejected by a rate limiter
	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_rate_limited_total",
			Help: "Number of requests rejected by the rate limiter",
		},
		[]string{"limiter"},
	)
)

var once sync.Once

// Init registers the collectors in the default registry. Safe to call more than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(Requests, RequestDuration, RateLimited)
	})
}

// Middleware records every request handled by the engine
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		Requests.WithLabelValues(route, ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
