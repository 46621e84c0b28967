package middleware

import (
	"strconv"
	"time"

	"mecanica_gestao/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id, stores a request-scoped zerolog
// logger in the request context and logs completion with status and latency.
func RequestLogger(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)
		c.Set(string(requestIDKey), requestID)

		zl := log.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(zl.WithContext(c.Request.Context()))

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		latency := time.Since(start)
		m.ObserveHTTP(c.Request.Method, route, strconv.Itoa(status), latency)

		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = zl.Error()
		case status >= 400:
			ev = zl.Warn()
		default:
			ev = zl.Info()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("latency", latency).
			Msg("[http][request] completed")
	}
}

// Recovery turns panics into a 500 and logs them with the request id.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().Interface("panic", recovered).Msg("[http][request] recovered from panic")
		c.AbortWithStatus(500)
	})
}
