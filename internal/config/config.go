package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Redis
	RedisURL string

	// Session cookie signing
	SessionSecret string

	// Persistence
	DataDir   string
	UploadDir string

	// Uploads
	MaxUploadMB int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Env:           getEnvOrDefault("ENV", "development"),
		RedisURL:      mustGetEnv("REDIS_URL"),
		SessionSecret: mustGetEnv("SESSION_SECRET"),
		DataDir:       getEnvOrDefault("DATA_DIR", "./user_data"),
		UploadDir:     getEnvOrDefault("UPLOAD_DIR", "./uploads"),
		MaxUploadMB:   getEnvAsIntOrDefault("MAX_UPLOAD_MB", 16),
		FrontendURL:   getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
