package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FACorreiaa/go-stallui/internal/app/guard"
	"github.com/FACorreiaa/go-stallui/internal/app/middleware"
	"github.com/FACorreiaa/go-stallui/internal/pkg/config"
	"github.com/FACorreiaa/go-stallui/internal/pkg/storage"
	"github.com/FACorreiaa/go-stallui/internal/routes"
)

const sessionCookie = "stall_session"

// RouterDeps are the process-wide resources shared by every request.
type RouterDeps struct {
	Config     *config.Config
	Storage    storage.Storage
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(deps RouterDeps) *gin.Engine {
	cfg, logger := deps.Config, deps.Logger

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
		SkipPaths:  []string{"/assets/css/app.css"},
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.OTELGinMiddleware(cfg.Observability.ServiceName))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityMiddleware())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Storage.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionCookie, store))
	r.Use(middleware.SessionContextMiddleware(middleware.SessionDeps{
		Storage:    deps.Storage,
		HTTPClient: deps.HTTPClient,
		BaseURL:    cfg.API.BaseURL,
		Logger:     logger,
	}))

	g := guard.New(guard.Options{Recheck: cfg.GuardRecheck, Logger: logger})
	routes.Setup(r, g, logger)

	return r
}

// zapContextFunc returns the Zap context function for logging
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := c.Writer.Header().Get("X-Request-Id"); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		// bodies are never logged, forms carry passwords
		if c.GetHeader("HX-Request") == "true" {
			fields = append(fields, zap.Bool("htmx", true))
		}

		return fields
	}
}
