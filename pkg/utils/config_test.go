package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 168, cfg.Session.ExpiryHours)
	assert.Equal(t, "@hourly", cfg.Session.CleanupSchedule)
	assert.True(t, cfg.Seed.Demo)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Assistant.Model)
	assert.Equal(t, 5, cfg.Assistant.MaxSuggestions)
	assert.Equal(t, 150, cfg.Assistant.MaxBioTokens)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Cloudinary.Enabled())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "PORT=9090\nSEED_DEMO=false\nAPI_KEY=from-file\nCORS_ALLOWED_ORIGINS=https://a.example, https://b.example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("SUGGEST_MAX", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.False(t, cfg.Seed.Demo)
	assert.Equal(t, "from-file", cfg.Assistant.APIKey)
	assert.Equal(t, 3, cfg.Assistant.MaxSuggestions)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestCloudinaryEnabled(t *testing.T) {
	assert.False(t, CloudinaryConfig{CloudName: "demo"}.Enabled())
	assert.True(t, CloudinaryConfig{CloudName: "demo", APIKey: "k", APISecret: "s"}.Enabled())
}
