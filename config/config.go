package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	GinMode     string
	// Authentication
	JWTSecret          string
	TokenExpireMinutes int
	// Login rate limiting
	LoginRateLimitWindowSeconds int
	LoginRateLimitThreshold     int
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; ignored in production when absent.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DBUrl:              getEnv("DATABASE_URL", ""),
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		GinMode:            getEnv("GIN_MODE", "release"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		TokenExpireMinutes: getEnvInt("TOKEN_EXPIRE_MINUTES", 30),

		LoginRateLimitWindowSeconds: getEnvInt("LOGIN_RATE_LIMIT_WINDOW_SECONDS", 60),
		LoginRateLimitThreshold:     getEnvInt("LOGIN_RATE_LIMIT_THRESHOLD", 10),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Issued tokens will not survive restarts securely.")
	}

	return cfg, nil
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
