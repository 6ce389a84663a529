package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
)

// Checker verifies a single dependency
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// Service aggregates dependency checkers
type Service struct {
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewService creates a new health service
func NewService(zl *logger.ZapLogger) *Service {
	return &Service{
		checkers: make(map[string]Checker),
		logger:   zl,
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// status is the readiness report for one dependency
type status struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// report runs all checkers with a bounded timeout
func (s *Service) report(ctx context.Context) (bool, map[string]status) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	healthy := true
	results := make(map[string]status, len(s.checkers))
	for name, checker := range s.checkers {
		if err := checker.Check(ctx); err != nil {
			healthy = false
			results[name] = status{Healthy: false, Error: err.Error()}
			s.logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			continue
		}
		results[name] = status{Healthy: true}
	}
	return healthy, results
}

// pingResponse is returned from the liveness endpoint
type pingResponse struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// RegisterEndpoints registers liveness and readiness endpoints
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if version == "" {
		version = "development"
	}

	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, pingResponse{
			ServiceName: serviceName,
			Version:     version,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		healthy, results := svc.report(c.Request().Context())
		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, map[string]interface{}{
			"healthy":      healthy,
			"dependencies": results,
		})
	})
}
