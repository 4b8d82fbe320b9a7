package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port          string
	Env           string
	AllowedOrigin string

	// Gemini AI
	GoogleAPIKey          string
	GeminiModel           string
	// RequestTimeoutSeconds bounds the Gemini call. The transcript fetch takes
	// no context and is only skipped when the deadline has already passed.
	RequestTimeoutSeconds int

	// Transcripts
	TranscriptLanguages []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                  getEnvOrDefault("PORT", "8080"),
		Env:                   getEnvOrDefault("ENV", "development"),
		AllowedOrigin:         getEnvOrDefault("ALLOWED_ORIGIN", "*"),
		GoogleAPIKey:          mustGetEnv("GOOGLE_API_KEY"),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-pro"),
		RequestTimeoutSeconds: getEnvAsIntOrDefault("REQUEST_TIMEOUT_SECONDS", 0),
		TranscriptLanguages:   getEnvAsListOrDefault("TRANSCRIPT_LANGUAGES", []string{"en"}),
	}

	return cfg
}

// TranscriptLanguagesFromEnv reads only the caption language preference. The
// transcript-only CLI path uses it so that it does not need an API key.
func TranscriptLanguagesFromEnv() []string {
	godotenv.Load()
	return getEnvAsListOrDefault("TRANSCRIPT_LANGUAGES", []string{"en"})
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

func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var items []string
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultVal
	}
	return items
}
