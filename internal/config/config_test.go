package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LINKSTASH_MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("LINKSTASH_JWT_SECRET", "test-jwt-secret")
	t.Setenv("LINKSTASH_SESSION_KEY", "test-session-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DefaultAppOrigin, cfg.AppOrigin)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LINKSTASH_HTTP_PORT", "9090")
	t.Setenv("LINKSTASH_APP_ORIGIN", "https://links.example.com")
	t.Setenv("LINKSTASH_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "https://links.example.com", cfg.AppOrigin)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoadMissingMongoURI(t *testing.T) {
	t.Setenv("LINKSTASH_MONGO_URI", "")
	t.Setenv("LINKSTASH_JWT_SECRET", "test-jwt-secret")
	t.Setenv("LINKSTASH_SESSION_KEY", "test-session-key")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LINKSTASH_MONGO_URI")
}

func TestLoadMissingJWTSecret(t *testing.T) {
	t.Setenv("LINKSTASH_MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("LINKSTASH_JWT_SECRET", "")
	t.Setenv("LINKSTASH_SESSION_KEY", "test-session-key")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LINKSTASH_JWT_SECRET")
}

func TestCallbackURL(t *testing.T) {
	cfg := &Config{AppOrigin: "https://links.example.com"}
	assert.Equal(t, "https://links.example.com/api/auth/google/callback", cfg.CallbackURL("google"))
}

func TestSplitOrigins(t *testing.T) {
	assert.Nil(t, splitOrigins(""))
	assert.Equal(t, []string{"https://a.example.com"}, splitOrigins(" https://a.example.com ,, "))
}
