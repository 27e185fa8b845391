// Package config reads the server configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application. Missing
// credentials do not fail startup; the corresponding subsystem runs in its
// degraded mode instead.
type Config struct {
	// Server
	Port string

	// Firestore
	GCPProject string

	// Primary AI provider (Gemini)
	GeminiAPIKey string
	GeminiModel  string

	// Secondary AI provider (OpenRouter)
	OpenRouterAPIKey  string
	OpenRouterURL     string
	OpenRouterModel   string
	OpenRouterReferer string
	OpenRouterTitle   string

	// Aggregate cache
	RedisURL      string
	StatsCacheTTL time.Duration

	// Stats read deadline
	StatsReadTimeout time.Duration
}

// Load reads configuration from environment variables. A .env file is
// honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnvOrDefault("PORT", "8081"),

		GCPProject: firstEnv("GCP_PROJECT", "GOOGLE_CLOUD_PROJECT"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),

		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterURL:     getEnvOrDefault("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
		OpenRouterModel:   getEnvOrDefault("OPENROUTER_MODEL", "meta-llama/llama-3.3-70b-instruct:free"),
		OpenRouterReferer: getEnvOrDefault("OPENROUTER_REFERER", "https://thaigov2569.pages.dev"),
		OpenRouterTitle:   getEnvOrDefault("OPENROUTER_TITLE", "ThaiGov2569"),

		RedisURL:      os.Getenv("REDIS_URL"),
		StatsCacheTTL: getDurationOrDefault("STATS_CACHE_TTL", 60*time.Second),

		StatsReadTimeout: getDurationOrDefault("STATS_READ_TIMEOUT", 5*time.Second),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func getDurationOrDefault(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return fallback
}
