package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// AccessLogMiddleware writes one line per request. Requests without an
// X-Request-ID get one assigned so log lines correlate with client reports.
type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
			c.Set(requestIDHeader, rid)
		}

		err := c.Next()

		if m == nil || m.logger == nil {
			return err
		}

		m.logger.Printf(
			"[HTTP] %s %s | rid=%s status=%d dur=%s ip=%s bytes_in=%d bytes_out=%d ua=%q",
			c.Method(), c.OriginalURL(),
			rid,
			c.Response().StatusCode(),
			time.Since(start),
			c.IP(),
			c.Request().Header.ContentLength(),
			c.Response().Header.ContentLength(),
			c.Get("User-Agent"),
		)

		return err
	}
}
