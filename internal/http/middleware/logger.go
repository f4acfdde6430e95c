package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"nzwalks/internal/logger"
)

// Logger logs one JSON line per request with request_id, method, path, status
// and latency in milliseconds. The trace id is added when the request is sampled.
func Logger(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		evt := l.Info()
		if status >= fiber.StatusInternalServerError {
			evt = l.Error()
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			evt = evt.Str("trace_id", sc.TraceID().String())
		}
		evt.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Send()

		return err
	}
}

// LoggerWithWriter is Logger writing to w with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logger.New(w, "info", loc))
}
