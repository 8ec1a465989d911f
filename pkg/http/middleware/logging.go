package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	applogger "trendcheck/pkg/logger"
)

// RequestLogging logs each HTTP request through the application logger.
func RequestLogging(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)

			l.Info("http request",
				applogger.String("method", req.Method),
				applogger.String("uri", req.RequestURI),
				applogger.String("remote", req.RemoteAddr),
				applogger.Int("status", res.Status),
				applogger.Dur("latency", time.Since(start)),
			)

			return err
		}
	}
}
