// Package server exposes the ranking engine over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/ranking"
)

const (
	defaultListen       = "127.0.0.1:8000"
	defaultMaxBodyBytes = 1 << 20
	defaultReadTimeout  = 30 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// Config controls the HTTP listener.
type Config struct {
	Listen       string        `mapstructure:"listen"`
	MaxBodyBytes int64         `mapstructure:"max-body-bytes"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	// Workers bounds the goroutines used by a single batch request.
	Workers int `mapstructure:"workers"`
}

func (c Config) withDefaults() Config {
	if c.Listen == "" {
		c.Listen = defaultListen
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaultReadTimeout
	}
	return c
}

// Server serves ranking requests.
type Server struct {
	cfg      Config
	engine   *ranking.Engine
	logger   *zap.Logger
	validate *validator.Validate
	router   *gin.Engine
}

// New creates a server around engine. A nil logger discards logs.
func New(cfg Config, engine *ranking.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:      cfg.withDefaults(),
		engine:   engine,
		logger:   logger,
		validate: validator.New(),
	}
	s.validate.RegisterTagNameFunc(jsonTagName)

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(logger), limitBody(s.cfg.MaxBodyBytes))

	router.GET("/health", s.health)
	router.GET("/weights", s.weights)
	router.POST("/rank", s.rank)
	router.POST("/rank/batch", s.rankBatch)

	s.router = router
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is cancelled, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Listen, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		IdleTimeout:       2 * s.cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server started", zap.String("listen", listener.Addr().String()))
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Info("server stopped")
	return nil
}
