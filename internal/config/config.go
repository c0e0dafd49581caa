// Package config loads application configuration from environment variables.
// Every value has a default so the server can start with an empty environment,
// which keeps local development friction-free.  The one default that matters,
// the signing secret, is flagged so main can warn loudly when it is in use.
package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultSecret is the insecure fallback signing secret.  It exists only for
// local development; deployments must set JWT_SECRET_KEY.
const DefaultSecret = "your-secret-key"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Port             string        // HTTP port to listen on (PORT)
	JWTSecret        string        // secret used to sign session tokens (JWT_SECRET_KEY)
	SecretIsFallback bool          // true when JWTSecret is the insecure default
	BcryptCost       int           // bcrypt cost for password hashing (BCRYPT_COST)
	TokenTTL         time.Duration // session token lifetime; 0 means tokens never expire (TOKEN_TTL_MIN)
	GeneratorURL     string        // upstream content generator endpoint (GENERATOR_URL); empty -> demo content only
	GeneratorTimeout time.Duration // upstream call timeout (GENERATOR_TIMEOUT)
	CacheTTL         time.Duration // lifetime of cached generation results (GENERATION_CACHE_TTL)
}

// Load reads configuration from the environment, falling back to defaults
// for anything unset.
func Load() Config {
	secret := os.Getenv("JWT_SECRET_KEY")
	fallback := secret == ""
	if fallback {
		secret = DefaultSecret
	}
	return Config{
		Port:             getenv("PORT", "4000"),
		JWTSecret:        secret,
		SecretIsFallback: fallback,
		BcryptCost:       envInt("BCRYPT_COST", 10),
		TokenTTL:         time.Duration(envInt("TOKEN_TTL_MIN", 0)) * time.Minute,
		GeneratorURL:     os.Getenv("GENERATOR_URL"),
		GeneratorTimeout: envDur("GENERATOR_TIMEOUT", 10*time.Second),
		CacheTTL:         envDur("GENERATION_CACHE_TTL", 5*time.Minute),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
