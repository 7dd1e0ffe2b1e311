package config

import (
	"errors"
	"os"
	"strconv"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	AppHost     string
	Port        string
	BodyLimitMB int
}

// GeminiConfig holds settings for the upstream Gemini generative API.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	TimeoutSec int
}

// PromptConfig points at the prompt template artifact. When TemplatesFile is
// empty the embedded default artifact is used.
type PromptConfig struct {
	TemplatesFile string
}

// SessionConfig bounds the in-memory mindmap store.
type SessionConfig struct {
	TTLMin     int
	MaxEntries int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Prompt  PromptConfig
	Session SessionConfig
}

// ErrAPIKeyMissing is returned by Validate when no upstream credential is
// configured. There is deliberately no default: the service refuses to start
// without a key rather than failing on the first upload.
var ErrAPIKeyMissing = errors.New("GEMINI_API_KEY is not set")

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			AppHost:     getEnv("APP_HOST", "localhost:8080"),
			Port:        getEnv("PORT", "8080"), // default only for non-sensitive value
			BodyLimitMB: getEnvInt("UPLOAD_LIMIT_MB", 32),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""), // required, validated at startup
			Model:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			BaseURL:    getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			TimeoutSec: getEnvInt("GEMINI_TIMEOUT_SEC", 60),
		},
		Prompt: PromptConfig{
			TemplatesFile: getEnv("PROMPT_TEMPLATES_FILE", ""),
		},
		Session: SessionConfig{
			TTLMin:     getEnvInt("SESSION_TTL_MIN", 30),
			MaxEntries: getEnvInt("SESSION_MAX_ENTRIES", 20),
		},
	}
}

// Validate checks values that have no usable default. Called once at startup;
// a failure here must abort the process before it starts serving.
func (c *AppConfig) Validate() error {
	if c.Gemini.APIKey == "" {
		return ErrAPIKeyMissing
	}
	if c.Gemini.Model == "" {
		return errors.New("GEMINI_MODEL must not be empty")
	}
	if c.Gemini.TimeoutSec <= 0 {
		return errors.New("GEMINI_TIMEOUT_SEC must be positive")
	}
	if c.Session.MaxEntries <= 0 {
		return errors.New("SESSION_MAX_ENTRIES must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
