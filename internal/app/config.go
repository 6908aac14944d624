package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer      string        // Required: issuer claim for tokens
	TokenSecret string        // Required: HMAC secret for signing tokens
	TokenTTL    time.Duration // Optional: access token lifetime (default: 24h)

	GitHubClientID     string // Required for GitHub login
	GitHubClientSecret string // Required for GitHub login
	GitHubTokenURL     string // Optional: override for the code exchange endpoint
	GitHubUserURL      string // Optional: override for the profile endpoint

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./corkd.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:             getEnvOrDefault("CORKD_ISSUER", "corkd"),
		TokenSecret:        os.Getenv("CORKD_TOKEN_SECRET"),
		TokenTTL:           getEnvDurationOrDefault("CORKD_TOKEN_TTL", 24*time.Hour),
		GitHubClientID:     os.Getenv("CORKD_GITHUB_CLIENT_ID"),
		GitHubClientSecret: os.Getenv("CORKD_GITHUB_CLIENT_SECRET"),
		GitHubTokenURL:     os.Getenv("CORKD_GITHUB_TOKEN_URL"),
		GitHubUserURL:      os.Getenv("CORKD_GITHUB_USER_URL"),
		DatabaseFile:       getEnvOrDefault("CORKD_DATABASE_FILE", "corkd.db"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
