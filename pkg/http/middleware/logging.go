package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	applogger "github.com/MatthewLee0811/InvestPulse/pkg/logger"
)

// RequestLogging logs one structured line per request. Server errors are
// logged at error level, client errors at warn, everything else at info.
func RequestLogging(l *applogger.Logger) echo.MiddlewareFunc {
	if l == nil {
		l = applogger.Nop()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			status := c.Response().Status
			fields := []applogger.Field{
				applogger.String("method", req.Method),
				applogger.String("path", req.URL.Path),
				applogger.Int("status", status),
				applogger.Duration("duration", time.Since(start)),
				applogger.String("remote", c.RealIP()),
			}

			switch {
			case status >= 500:
				l.Error("http request failed", fields...)
			case status >= 400:
				l.Warn("http request rejected", fields...)
			default:
				l.Info("http request", fields...)
			}

			return err
		}
	}
}
