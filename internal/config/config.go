package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration

	// Node id for the snowflake id generator; distinct per instance if the
	// service is ever run more than once against the same database.
	NodeID int64

	GeminiBaseURL string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
}

// Load reads configuration from the environment, with .env as a convenience
// for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          envOrDefault("ADDR", ":8080"),
		DatabaseURL:   envOrDefault("DATABASE_URL", "bengkel.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      time.Duration(cast.ToInt(envOrDefault("TOKEN_TTL_HOURS", "24"))) * time.Hour,
		NodeID:        cast.ToInt64(envOrDefault("NODE_ID", "1")),
		GeminiBaseURL: envOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   envOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiTimeout: time.Duration(cast.ToInt(envOrDefault("GEMINI_TIMEOUT_SECONDS", "15"))) * time.Second,
	}
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
