package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kapu/hf-wrapped-go/internal/constants"
)

type Config struct {
	Server    ServerConfig
	Hub       HubConfig
	Dataset   DatasetConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port int
}

type HubConfig struct {
	BaseURL string
	Timeout time.Duration
}

type DatasetConfig struct {
	// ID is the "owner/name" of the Hub dataset holding cached snapshots.
	// Empty disables the snapshot store entirely.
	ID           string
	Dir          string
	WriteEnabled bool
	Token        string
}

type RedisConfig struct {
	// Host empty disables the hot cache.
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

type RateLimitConfig struct {
	Enabled     bool
	Window      time.Duration
	MaxRequests int
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Hub: HubConfig{
			BaseURL: getEnv("HUB_BASE_URL", "https://huggingface.co"),
			Timeout: time.Duration(getEnvInt("HUB_TIMEOUT_SECONDS", int(constants.APIConfig.HubTimeout/time.Second))) * time.Second,
		},
		Dataset: DatasetConfig{
			ID:           getEnv("WRAPPED_DATASET_ID", ""),
			Dir:          getEnv("WRAPPED_DATASET_DIR", "data"),
			WriteEnabled: getEnvBool("WRAPPED_DATASET_WRITE", false),
			Token:        getEnv("HF_TOKEN", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("REDIS_TTL_SECONDS", int(constants.CacheTTL.WrappedResult/time.Second))) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled:     getEnvBool("WRAPPED_RATE_LIMIT_ENABLED", false),
			Window:      time.Duration(getEnvInt("WRAPPED_RATE_LIMIT_WINDOW_MS", 60000)) * time.Millisecond,
			MaxRequests: getEnvInt("WRAPPED_RATE_LIMIT_MAX", 30),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Hub.BaseURL == "" {
		return fmt.Errorf("HUB_BASE_URL is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid port number")
	}
	if c.Dataset.WriteEnabled && c.Dataset.ID == "" {
		return fmt.Errorf("WRAPPED_DATASET_ID is required when WRAPPED_DATASET_WRITE is enabled")
	}
	if c.RateLimit.Enabled && c.RateLimit.MaxRequests <= 0 {
		return fmt.Errorf("WRAPPED_RATE_LIMIT_MAX must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
