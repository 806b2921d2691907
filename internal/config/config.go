// Package config provides runtime configuration values for the service.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every knob the process needs. There is no module-level
// fallback for any secret: a missing JWT_SECRET fails startup.
type Config struct {
	HTTPAddr      string
	Environment   string
	LogLevel      string
	JWTSecret     string
	TokenTTL      time.Duration
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	CacheTTL      time.Duration
	BcryptCost    int
	MaxImageBytes int64
}

var ErrMissingJWTSecret = errors.New("config: JWT_SECRET is required")

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load reads an optional .env file, then collects configuration from the
// environment with defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		Environment:   getenv("APP_ENV", "development"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      durenvs("TOKEN_TTL_SECONDS", 7*24*60*60),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getenv("MONGODB_DATABASE", "stakex"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CacheTTL:      durenvs("CACHE_TTL_SECONDS", 300),
		BcryptCost:    atoienv("BCRYPT_COST", 12),
		MaxImageBytes: int64(atoienv("MAX_IMAGE_BYTES", 8<<20)),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	return cfg, nil
}
