// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every knob the server reads at startup. Database and Redis
// settings stay in their own platform packages; this covers the rest.
type Config struct {
	// Port is the listen port, without colon. Defaults to 3002.
	Port string

	// JWTSecret signs and verifies bearer tokens. Empty is a
	// misconfiguration the caller should warn about.
	JWTSecret string

	// TokenTTL is the validity window of issued tokens.
	TokenTTL time.Duration
}

// Load reads the optional .env file and assembles the Config. A missing .env
// is not an error; real deployments set variables directly.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using process environment")
	}

	cfg := Config{
		Port:      getEnv("PORT", "3002"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  24 * time.Hour,
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("invalid TOKEN_TTL %q, keeping %v: %v", raw, cfg.TokenTTL, err)
		} else {
			cfg.TokenTTL = ttl
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
