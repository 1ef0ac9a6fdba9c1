package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// TMDB Configuration
	TMDBAPIKey  string
	TMDBBaseURL string
	TMDBTimeout time.Duration

	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret    string
	CookieName   string
	CookieSecure bool

	// Server Configuration
	Port        string
	Env         string
	CORSOrigins []string
	LogLevel    string
}

// LoadConfig loads the configuration from environment variables. The env file
// for GO_ENV is optional; values already present in the process environment win.
func LoadConfig() (*Config, error) {
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading env file %s: %w", envFile, err)
	}

	timeout, err := time.ParseDuration(getEnvOrDefault("TMDB_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid TMDB_TIMEOUT: %w", err)
	}

	cfg := &Config{
		TMDBAPIKey:  getEnvOrDefault("TMDB_API_KEY", ""),
		TMDBBaseURL: getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBTimeout: timeout,

		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "netflixClone"),

		JWTSecret:    getEnvOrDefault("JWT_SECRET", ""),
		CookieName:   getEnvOrDefault("COOKIE_NAME", "jwt-netflix"),
		CookieSecure: env == "production" || os.Getenv("COOKIE_SECURE") == "true",

		Port:        getEnvOrDefault("PORT", "5000"),
		Env:         env,
		CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGIN", "http://localhost:5173")),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every required setting that is missing.
func (c *Config) Validate() error {
	var missing []string
	if c.TMDBAPIKey == "" {
		missing = append(missing, "TMDB_API_KEY")
	}
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
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

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if v := strings.TrimRight(strings.TrimSpace(p), "/"); v != "" {
			out = append(out, v)
		}
	}
	return out
}
