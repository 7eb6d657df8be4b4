package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-stallui/internal/pkg/config"
	"github.com/FACorreiaa/go-stallui/internal/server"
	"github.com/FACorreiaa/go-stallui/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: cfg.Observability.ServiceName,
		Env:     cfg.Env,
	}); err != nil {
		return err
	}
	zlog := logger.Log
	defer func() { _ = zlog.Sync() }()

	otelShutdown, err := server.InitObservability(cfg.Observability, zlog)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			zlog.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv, err := server.New(cfg, zlog)
	if err != nil {
		return err
	}
	defer srv.Close()

	router := server.SetupRouter(server.RouterDeps{
		Config:     cfg,
		Storage:    srv.GetStorage(),
		HTTPClient: srv.GetHTTPClient(),
		Logger:     zlog,
	})
	if err := server.SetupAssets(router); err != nil {
		zlog.Error("Failed to setup assets", zap.Error(err))
		return err
	}
	srv.SetRouter(router)

	server.StartPprofServer(cfg.Observability.PprofAddr, zlog)

	httpServer := srv.HTTPServer()
	done := make(chan struct{})
	go server.GracefulShutdown(httpServer, zlog, done)

	zlog.Info("Server starting",
		zap.String("port", cfg.ServerPort),
		zap.String("api", cfg.API.BaseURL),
		zap.String("env", cfg.Env))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Error("Server error", zap.Error(err))
		return err
	}

	<-done
	zlog.Info("Graceful shutdown complete")

	return nil
}
