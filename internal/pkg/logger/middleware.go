package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ZapEchoMiddleware logs each HTTP request with latency and status
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("client_ip", c.RealIP()),
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			}

			if err != nil {
				fields = append(fields, zap.Error(err))
				zl.Error("http request", fields...)
				return nil
			}

			if res.Status >= 500 {
				zl.Error("http request", fields...)
			} else if res.Status >= 400 {
				zl.Warn("http request", fields...)
			} else {
				zl.Info("http request", fields...)
			}

			return nil
		}
	}
}
