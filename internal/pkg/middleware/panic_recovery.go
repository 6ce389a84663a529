package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	nrpkg "github.com/oktaviandi/ridepulse/internal/pkg/newrelic"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, reports to New Relic when available, and returns a 500
func PanicRecoveryMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zl)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zl *logger.ZapLogger) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}

	zl.Error("Panic recovered",
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.Err(err),
		logger.String("stacktrace", string(debug.Stack())))

	txn := nrpkg.FromEchoContext(c)
	nrpkg.NoticeTransactionError(txn, err)

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
		})
	}
}
