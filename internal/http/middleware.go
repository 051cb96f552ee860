package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"penulis/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns every request a UUID unless the client already
// sent one, and echoes it back on the response.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set("request_id", id)
			c.Response().Header().Set(requestIDHeader, id)
			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs one line per request with method, path,
// status, latency and the request ID.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			id, _ := c.Get("request_id").(string)

			logger.Info("request handled",
				"module", "http",
				"action", "request",
				"resource", req.URL.Path,
				"result", "ok",
				"method", req.Method,
				"status", res.Status,
				"latency", time.Since(start).String(),
				"request_id", id,
			)
			return nil
		}
	}
}
