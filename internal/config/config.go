// Package config provides configuration loading for the gap analysis
// service. Everything comes from environment variables with sensible
// defaults; a .env file is honored by the entry point.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the service.
type Config struct {
	Port         int
	DatabaseURL  string
	Redis        RedisConfig
	CatalogPath  string
	FetchTimeout time.Duration
	VacancyTTL   time.Duration
	LogJSON      bool
	Debug        bool
}

// RedisConfig configures the optional vacancy cache. An empty Addr disables
// caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load creates a Config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		CatalogPath:  os.Getenv("CATALOG_PATH"),
		FetchTimeout: time.Duration(getEnvInt("FETCH_TIMEOUT_MS", 5000)) * time.Millisecond,
		VacancyTTL:   time.Duration(getEnvInt("VACANCY_CACHE_TTL_S", 3600)) * time.Second,
		LogJSON:      getEnvBool("LOG_JSON", true),
		Debug:        getEnvBool("DEBUG", false),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
