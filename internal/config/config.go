// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config represents the service configuration with defaults applied.
type Config struct {
	AppEnv          string
	Port            string
	OutputDir       string
	PublicBaseURL   string
	StabilityAPIKey string
	StabilityURL    string
	OllamaBaseURL   string
	OllamaModel     string
	HTTPReadTimeout time.Duration
	HTTPWriteTimeout time.Duration
}

// Load reads configuration from the environment. Only the generation API key
// has no default; without it the service still serves edits and custom
// uploads.
func Load() *Config {
	return &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		OutputDir:       getEnv("OUTPUT_DIR", "output"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		StabilityAPIKey: os.Getenv("STABILITY_API_KEY"),
		StabilityURL:    os.Getenv("STABILITY_BASE_URL"),
		OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:     getEnv("OLLAMA_MODEL", "llama3.2"),
		HTTPReadTimeout: time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
