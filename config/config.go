package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	AppName string // Prefix of the X-<app>-alert headers
	AppEnv  string
	DBUrl   string
	// Database migrations
	AutoMigrate bool
	// Search index: empty path keeps the index in memory and rebuilds it on boot
	SearchIndexPath string
	// Auth: empty secret disables bearer token checks
	JWTSecret string
	// CORS
	CORSAllowedOrigins []string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitThreshold     int
	// Reject requests instead of counting in memory when Redis fails
	RateLimitFailClosed bool
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		AppName:         getEnv("APP_NAME", "profileApp"),
		AppEnv:          getEnv("APP_ENV", "development"),
		DBUrl:           getEnv("DATABASE_URL", ""),
		AutoMigrate:     getEnvBool("AUTO_MIGRATE", true),
		SearchIndexPath: strings.TrimRight(getEnv("SEARCH_INDEX_PATH", ""), "/"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:9000",
			"http://localhost:3000",
		}),
		RedisURL:               getEnv("REDIS_URL", ""),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		RateLimitThreshold:     getEnvInt("RATE_LIMIT_THRESHOLD", 100),     // 100 requests per window
		RateLimitFailClosed:    getEnvBool("RATE_LIMIT_FAIL_CLOSED", false),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether APP_ENV selects production behaviour
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, strings.TrimRight(item, "/"))
		}
	}
	return out
}
