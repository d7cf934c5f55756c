package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort            = "8080"
	defaultJWTTTL          = "24h"
	defaultAnalyticsBuffer = "256"
)

type Config struct {
	DatabaseURL     string
	JWTSecret       string
	JWTTTL          time.Duration
	Port            string
	AnalyticsBuffer int
}

func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(envOrDefault("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	buffer, err := strconv.Atoi(envOrDefault("ANALYTICS_BUFFER", defaultAnalyticsBuffer))
	if err != nil || buffer < 1 {
		return nil, fmt.Errorf("invalid ANALYTICS_BUFFER: %q", os.Getenv("ANALYTICS_BUFFER"))
	}

	return &Config{
		DatabaseURL:     dsn,
		JWTSecret:       secret,
		JWTTTL:          ttl,
		Port:            envOrDefault("PORT", defaultPort),
		AnalyticsBuffer: buffer,
	}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
