package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates request-logging middleware for Echo using the
// application logger.
func EchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			if raw != "" {
				path = path + "?" + raw
			}

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				Int("status", c.Response().Status),
				String("client_ip", c.RealIP()),
				Duration("latency", latency),
				String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}
			if err != nil {
				fields = append(fields, Err(err))
				l.Error("HTTP request", fields...)
				return err
			}

			l.Info("HTTP request", fields...)
			return nil
		}
	}
}
