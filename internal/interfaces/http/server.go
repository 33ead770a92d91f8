package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/turtacn/MedText-Intelligence/internal/config"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with graceful shutdown.
type Server struct {
	httpServer      *http.Server
	logger          logging.Logger
	shutdownTimeout time.Duration
}

// NewServer builds the server from the route tree and server config.
func NewServer(handler http.Handler, cfg config.ServerConfig, log logging.Logger) *Server {
	if log == nil {
		log = logging.NewNopLogger()
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger:          log.Named("server"),
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until the listener fails or Shutdown is called. It blocks;
// run it on its own goroutine. http.ErrServerClosed is swallowed as the
// normal shutdown signal.
func (s *Server) Start() error {
	s.logger.Info("http server listening", logging.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}

//Personal.AI order the ending
