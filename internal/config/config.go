package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	APIBase        string
	APIPath        string
	Port           string
	RequestTimeout time.Duration
}

// Load reads .env (when present) and the process environment into AppEnv.
// API_BASE and API_PATH have no sensible defaults and abort startup when missing.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		APIBase:        mustEnv("API_BASE"),
		APIPath:        mustEnv("API_PATH"),
		Port:           getEnvOrDefault("PORT", "8080"),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 10, time.Second),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		log.Fatalf("ENV %s is required", key)
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
