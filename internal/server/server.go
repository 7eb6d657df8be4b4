package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/pkg/apiclient"
	"github.com/FACorreiaa/go-stallui/internal/pkg/config"
	"github.com/FACorreiaa/go-stallui/internal/pkg/storage"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg        *config.Config
	logger     *zap.Logger
	storage    storage.Storage
	closeStore func() error
	httpClient *http.Client
	router     http.Handler
}

// New creates a new Server instance with all dependencies
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:        cfg,
		logger:     logger,
		httpClient: apiclient.NewHTTPClient(cfg.API.Timeout),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.setupStorage(ctx); err != nil {
		return nil, fmt.Errorf("failed to setup session storage: %w", err)
	}

	return s, nil
}

// setupStorage opens the backend holding per-browser session state
func (s *Server) setupStorage(ctx context.Context) error {
	switch s.cfg.Storage.Backend {
	case config.StorageRedis:
		store, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
			Addr:       s.cfg.Storage.Redis.Addr,
			Password:   s.cfg.Storage.Redis.Password,
			DB:         s.cfg.Storage.Redis.DB,
			DefaultTTL: s.cfg.Storage.SessionTTL,
		})
		if err != nil {
			return err
		}
		s.storage = store
		s.closeStore = store.Close
		s.logger.Info("Session storage ready",
			zap.String("backend", config.StorageRedis),
			zap.String("addr", s.cfg.Storage.Redis.Addr),
			zap.Int("db", s.cfg.Storage.Redis.DB))
	default:
		s.storage = storage.NewMemoryStorage(s.cfg.Storage.SessionTTL)
		s.logger.Info("Session storage ready", zap.String("backend", config.StorageMemory))
	}
	return nil
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

func (s *Server) GetStorage() storage.Storage {
	return s.storage
}

// GetHTTPClient returns the client shared by every backend call
func (s *Server) GetHTTPClient() *http.Client {
	return s.httpClient
}

// GetLogger returns the logger instance
func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

// GetConfig returns the configuration
func (s *Server) GetConfig() *config.Config {
	return s.cfg
}

// Close closes all server resources
func (s *Server) Close() {
	s.httpClient.CloseIdleConnections()
	if s.closeStore != nil {
		if err := s.closeStore(); err != nil {
			s.logger.Warn("Failed to close session storage", zap.Error(err))
		}
	}
}
