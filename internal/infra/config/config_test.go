package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "prac-token")
	t.Setenv("TELEGRAM_TOKEN", "tg-token")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")
	// Keep optional vars out of the way regardless of the host environment.
	t.Setenv("PRACTICUM_ENDPOINT", "")
	t.Setenv("POLL_INTERVAL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("ENVIRONMENT", "")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "prac-token", cfg.PracticumToken)
		assert.Equal(t, "tg-token", cfg.TelegramToken)
		assert.Equal(t, int64(12345), cfg.TelegramChatID)
		assert.Equal(t, "https://practicum.yandex.ru/api/user_api/homework_statuses/", cfg.PracticumEndpoint)
		assert.Equal(t, 600*time.Second, cfg.PollInterval)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "development", cfg.Environment)
	})

	t.Run("each missing secret fails", func(t *testing.T) {
		for _, name := range []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"} {
			t.Run(name, func(t *testing.T) {
				setRequired(t)
				t.Setenv(name, "")

				_, err := Load()
				require.Error(t, err)
				assert.Contains(t, err.Error(), name)
			})
		}
	})

	t.Run("invalid chat id", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PRACTICUM_ENDPOINT", "https://example.test/api/")
		t.Setenv("POLL_INTERVAL", "30s")
		t.Setenv("HTTP_TIMEOUT", "2s")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("ENVIRONMENT", "Production")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://example.test/api/", cfg.PracticumEndpoint)
		assert.Equal(t, 30*time.Second, cfg.PollInterval)
		assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "production", cfg.Environment)
	})

	t.Run("invalid poll interval", func(t *testing.T) {
		setRequired(t)
		t.Setenv("POLL_INTERVAL", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "POLL_INTERVAL")
	})
}
