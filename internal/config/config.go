package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	AppName    = "Penulis"
	AppVersion = "1.0.0"
)

// AIConfig holds the LLM provider settings. Passed explicitly into the
// article service at construction, never read from ambient state.
type AIConfig struct {
	Provider    string // openai, anthropic, compatible
	APIKey      string
	BaseURL     string // optional for openai, required for compatible
	Model       string
	Temperature float64 // high default biases toward varied output
	MaxTokens   int
	RateLimit   int // max LLM calls per second
}

// TranslateConfig holds the translation endpoint settings.
type TranslateConfig struct {
	BaseURL    string
	SourceLang string
	TargetLang string
}

type Config struct {
	Addr          string
	DataDir       string
	DBPath        string
	LogLevel      string
	ProxyURL      string
	RetentionDays int
	AI            AIConfig
	Translate     TranslateConfig
}

func Load() Config {
	addr := getenv("PENULIS_ADDR", ":8080")
	dataDir := getenv("PENULIS_DATA_DIR", "./data")
	dbPath := getenv("PENULIS_DB_PATH", filepath.Join(dataDir, "penulis.db"))

	return Config{
		Addr:          addr,
		DataDir:       filepath.Clean(dataDir),
		DBPath:        filepath.Clean(dbPath),
		LogLevel:      getenv("PENULIS_LOG_LEVEL", "info"),
		ProxyURL:      os.Getenv("PENULIS_PROXY_URL"),
		RetentionDays: getenvInt("PENULIS_RETENTION_DAYS", 0),
		AI: AIConfig{
			Provider:    getenv("PENULIS_AI_PROVIDER", "openai"),
			APIKey:      os.Getenv("PENULIS_AI_API_KEY"),
			BaseURL:     os.Getenv("PENULIS_AI_BASE_URL"),
			Model:       os.Getenv("PENULIS_AI_MODEL"),
			Temperature: getenvFloat("PENULIS_AI_TEMPERATURE", 1.2),
			MaxTokens:   getenvInt("PENULIS_AI_MAX_TOKENS", 4096),
			RateLimit:   getenvInt("PENULIS_AI_RATE_LIMIT", 10),
		},
		Translate: TranslateConfig{
			BaseURL:    getenv("PENULIS_TRANSLATE_BASE_URL", "https://translate.googleapis.com"),
			SourceLang: getenv("PENULIS_SOURCE_LANG", "en"),
			TargetLang: getenv("PENULIS_TARGET_LANG", "id"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
