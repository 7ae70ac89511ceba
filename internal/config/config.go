package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderVader      = "vader"
)

type Config struct {
	SearchAPIKey string
	SearchURL    string

	CompletionAPIKey string
	CompletionURL    string
	CompletionModel  string

	MoodProvider    string
	AnthropicAPIKey string
	AnthropicModel  string

	Port        string
	FrontendURL string
	LogLevel    string
	LogFormat   string
}

// Load reads .env (if present) and the process environment once.
func Load() *Config {
	godotenv.Load()

	return &Config{
		SearchAPIKey:     getEnv("SERPAPI_KEY", ""),
		SearchURL:        getEnv("SERPAPI_URL", "https://serpapi.com/search"),
		CompletionAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		CompletionURL:    getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		CompletionModel:  getEnv("MOOD_MODEL", "openai/gpt-4"),
		MoodProvider:     getEnv("MOOD_PROVIDER", ProviderOpenRouter),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-haiku-4-5"),
		Port:             getEnv("PORT", "8080"),
		FrontendURL:      getEnv("FRONTEND_URL", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
	}
}

func (c *Config) Validate() error {
	switch c.MoodProvider {
	case ProviderOpenRouter, ProviderAnthropic, ProviderVader:
	default:
		return fmt.Errorf("unknown MOOD_PROVIDER %q", c.MoodProvider)
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}

	return nil
}

// WarnMissing logs each credential the selected provider needs but lacks.
// Startup continues; requests fall back to the degraded paths.
func (c *Config) WarnMissing() {
	if c.SearchAPIKey == "" {
		slog.Warn("search API key missing, news lookups will fail", "env", "SERPAPI_KEY")
	}

	switch c.MoodProvider {
	case ProviderOpenRouter:
		if c.CompletionAPIKey == "" {
			slog.Warn("completion API key missing, mood will fall back to neutral", "env", "OPENROUTER_API_KEY")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			slog.Warn("anthropic API key missing, mood will fall back to neutral", "env", "ANTHROPIC_API_KEY")
		}
	}
}

// CompletionConfigured reports whether the selected mood provider can be called.
func (c *Config) CompletionConfigured() bool {
	switch c.MoodProvider {
	case ProviderAnthropic:
		return c.AnthropicAPIKey != ""
	case ProviderVader:
		return true
	default:
		return c.CompletionAPIKey != ""
	}
}

// Redacted is safe to log: secrets are reduced to whether they are set.
func (c *Config) Redacted() map[string]string {
	return map[string]string{
		"search_api_key":     presence(c.SearchAPIKey),
		"search_url":         c.SearchURL,
		"completion_api_key": presence(c.CompletionAPIKey),
		"completion_url":     c.CompletionURL,
		"completion_model":   c.CompletionModel,
		"mood_provider":      c.MoodProvider,
		"anthropic_api_key":  presence(c.AnthropicAPIKey),
		"anthropic_model":    c.AnthropicModel,
		"port":               c.Port,
		"frontend_url":       c.FrontendURL,
		"log_level":          c.LogLevel,
		"log_format":         c.LogFormat,
	}
}

func presence(secret string) string {
	if secret == "" {
		return "[missing]"
	}
	return "[set]"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
