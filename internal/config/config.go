package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ovaphlow/pitchfork/service-finance-go/pkg/database"
	"github.com/ovaphlow/pitchfork/service-finance-go/pkg/utilities"
)

// Config holds the application configuration.
type Config struct {
	HTTPAddr    string
	JWTSecret   []byte
	TokenTTL    time.Duration
	BcryptCost  int
	CORSOrigins []string
	AutoMigrate bool
	Database    database.Config
	Logger      utilities.Config
}

const devSecret = "change-me-in-production"

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	// best-effort: a missing .env is the normal case outside development
	_ = godotenv.Load()

	dbCfg, err := database.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	logCfg, err := utilities.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", "0.0.0.0:8431"),
		JWTSecret:   []byte(getEnv("JWT_SECRET", devSecret)),
		TokenTTL:    24 * time.Hour,
		BcryptCost:  12,
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		AutoMigrate: os.Getenv("AUTO_MIGRATE") == "1",
		Database:    dbCfg,
		Logger:      logCfg,
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = n
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	return cfg, nil
}

// UsingDevSecret reports whether the built-in JWT secret is in effect.
func (c *Config) UsingDevSecret() bool {
	return string(c.JWTSecret) == devSecret
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
