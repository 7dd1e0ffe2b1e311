package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origKey := os.Getenv("GEMINI_API_KEY")
	defer os.Setenv("GEMINI_API_KEY", origKey)

	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("GEMINI_TIMEOUT_SEC", "15")
	os.Setenv("SESSION_MAX_ENTRIES", "5")
	defer os.Unsetenv("GEMINI_TIMEOUT_SEC")
	defer os.Unsetenv("SESSION_MAX_ENTRIES")

	// Make sure defaults are actually exercised below
	for _, k := range []string{"GEMINI_MODEL", "GEMINI_BASE_URL", "PORT", "SESSION_TTL_MIN"} {
		os.Unsetenv(k)
	}

	cfg := Load()

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, 15, cfg.Gemini.TimeoutSec)
	assert.Equal(t, 5, cfg.Session.MaxEntries)

	// Defaults for everything not set explicitly
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Session.TTLMin)
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			Gemini: GeminiConfig{
				APIKey:     "key",
				Model:      "gemini-2.0-flash",
				TimeoutSec: 60,
			},
			Session: SessionConfig{MaxEntries: 20},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing api key fails fast", func(t *testing.T) {
		cfg := valid()
		cfg.Gemini.APIKey = ""
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrAPIKeyMissing)
	})

	t.Run("non-positive timeout rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Gemini.TimeoutSec = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty model rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Gemini.Model = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive session capacity rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Session.MaxEntries = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
