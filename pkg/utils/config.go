package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Session    SessionConfig
	Seed       SeedConfig
	Assistant  AssistantConfig
	Cloudinary CloudinaryConfig
	CORS       CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type SessionConfig struct {
	ExpiryHours     int
	CleanupSchedule string
}

// SeedConfig controls the demo listings and the bootstrap admin account.
type SeedConfig struct {
	Demo          bool
	AdminName     string
	AdminEmail    string
	AdminPhone    string
	AdminPassword string
}

type AssistantConfig struct {
	APIKey         string
	Model          string
	BaseURL        string
	TimeoutSeconds int
	RatePerSecond  float64
	Burst          int
	DebounceMillis int
	MaxSuggestions int
	MaxBioTokens   int
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Enabled reports whether all credentials are present.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads the env file at path (a missing file is fine) and lets
// environment variables override it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "jua-kazi")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SESSION_EXPIRY_HOURS", 24*7)
	v.SetDefault("SESSION_CLEANUP_SCHEDULE", "@hourly")
	v.SetDefault("SEED_DEMO", true)
	v.SetDefault("ADMIN_NAME", "Jua Kazi Admin")
	v.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/")
	v.SetDefault("ASSISTANT_TIMEOUT_SECONDS", 10)
	v.SetDefault("ASSISTANT_RATE_PER_SECOND", 2.0)
	v.SetDefault("ASSISTANT_BURST", 5)
	v.SetDefault("SUGGEST_DEBOUNCE_MS", 400)
	v.SetDefault("SUGGEST_MAX", 5)
	v.SetDefault("BIO_MAX_TOKENS", 150)
	v.SetDefault("CLOUDINARY_FOLDER", "jua-kazi/providers")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	if path != "" {
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	apiKey := v.GetString("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = v.GetString("API_KEY")
	}

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Session: SessionConfig{
			ExpiryHours:     v.GetInt("SESSION_EXPIRY_HOURS"),
			CleanupSchedule: v.GetString("SESSION_CLEANUP_SCHEDULE"),
		},
		Seed: SeedConfig{
			Demo:          v.GetBool("SEED_DEMO"),
			AdminName:     v.GetString("ADMIN_NAME"),
			AdminEmail:    v.GetString("ADMIN_EMAIL"),
			AdminPhone:    v.GetString("ADMIN_PHONE"),
			AdminPassword: v.GetString("ADMIN_PASSWORD"),
		},
		Assistant: AssistantConfig{
			APIKey:         apiKey,
			Model:          v.GetString("GEMINI_MODEL"),
			BaseURL:        v.GetString("GEMINI_BASE_URL"),
			TimeoutSeconds: v.GetInt("ASSISTANT_TIMEOUT_SECONDS"),
			RatePerSecond:  v.GetFloat64("ASSISTANT_RATE_PER_SECOND"),
			Burst:          v.GetInt("ASSISTANT_BURST"),
			DebounceMillis: v.GetInt("SUGGEST_DEBOUNCE_MS"),
			MaxSuggestions: v.GetInt("SUGGEST_MAX"),
			MaxBioTokens:   v.GetInt("BIO_MAX_TOKENS"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    v.GetString("CLOUDINARY_API_KEY"),
			APISecret: v.GetString("CLOUDINARY_API_SECRET"),
			Folder:    v.GetString("CLOUDINARY_FOLDER"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
