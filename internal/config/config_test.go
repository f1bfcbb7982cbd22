package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("WS_SEND_BUFFER", "not-a-number")
	t.Setenv("MATCH_CACHE_TTL", "")

	cfg := Load()

	assert.Equal(t, "", cfg.App.Port, "explicitly empty values are kept")
	assert.Equal(t, 256, cfg.Realtime.SendBuffer)
	assert.Equal(t, 10*time.Minute, cfg.Chat.MatchCacheTTL)
	assert.Equal(t, 2000, cfg.Chat.MaxMessageLength)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("WS_SEND_BUFFER", "32")
	t.Setenv("MATCH_CACHE_TTL", "90s")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 32, cfg.Realtime.SendBuffer)
	assert.Equal(t, 90*time.Second, cfg.Chat.MatchCacheTTL)
	assert.Equal(t, "s3cret", cfg.Auth.JwtSecret)
}
