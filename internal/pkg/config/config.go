package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StorageConfig selects where per-browser session state is kept.
type StorageConfig struct {
	Backend    string
	SessionTTL time.Duration
	Redis      RedisConfig
}

// APIConfig points at the stall platform REST backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	OTLPEndpoint string
	PprofAddr    string
}

type Config struct {
	Env           string
	ServerPort    string
	LogLevel      string
	SessionSecret string
	SecureCookies bool
	// GuardRecheck re-verifies the session after a lazy profile refresh.
	GuardRecheck  bool
	API           APIConfig
	Storage       StorageConfig
	Observability ObservabilityConfig
}

func Load() (*Config, error) {
	apiTimeout, err := getDurationOrDefault("API_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	sessionTTL, err := getDurationOrDefault("SESSION_TTL", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	redisDB, err := getIntOrDefault("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	secure, err := getBoolOrDefault("SECURE_COOKIES", false)
	if err != nil {
		return nil, err
	}
	recheck, err := getBoolOrDefault("GUARD_RECHECK", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:           getEnvOrDefault("APP_ENV", "development"),
		ServerPort:    getEnvOrDefault("SERVER_PORT", "8091"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", ""),
		SecureCookies: secure,
		GuardRecheck:  recheck,
		API: APIConfig{
			BaseURL: getEnvOrDefault("API_BASE_URL", "http://localhost:8080/api"),
			Timeout: apiTimeout,
		},
		Storage: StorageConfig{
			Backend:    getEnvOrDefault("SESSION_STORAGE", StorageMemory),
			SessionTTL: sessionTTL,
			Redis: RedisConfig{
				Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       redisDB,
			},
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "stall-templui"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4318"),
			PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
		},
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
		}
		cfg.SessionSecret = "development-session-secret-change-me"
	}

	switch cfg.Storage.Backend {
	case StorageMemory, StorageRedis:
	default:
		return nil, fmt.Errorf("unsupported SESSION_STORAGE %q", cfg.Storage.Backend)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
