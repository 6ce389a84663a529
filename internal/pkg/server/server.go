package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// GracefulServer wraps an Echo server with signal-driven graceful
// shutdown
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	config models.ServerConfig
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, config models.ServerConfig) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: zapLogger,
		config: config,
	}
}

// Start serves until SIGINT or SIGTERM arrives, then drains in-flight
// requests within the configured shutdown timeout
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains the server within the configured timeout
func (s *GracefulServer) Shutdown() error {
	timeout := time.Duration(s.config.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
