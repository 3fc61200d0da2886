package config

import (
	"os"
	"time"
)

type Config struct {
	Env             string
	Port            string
	AllowedOrigins  string
	WhatsAppNumber  string
	OrderWebhookURL string
	GeminiAPIKey    string
	GeminiModel     string
	ChatSessionTTL  time.Duration
}

func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "3000"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		WhatsAppNumber:  getEnv("WHATSAPP_NUMBER", "212600000000"),
		OrderWebhookURL: getEnv("ORDER_WEBHOOK_URL", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		ChatSessionTTL:  getEnvDuration("CHAT_SESSION_TTL", 30*time.Minute),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ChatEnabled reports whether the completion service is reachable at all.
// Without an API key the assistant degrades to the fallback reply instead of crashing.
func (c *Config) ChatEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
