// Package config provides application-wide configuration loaded from env vars.
// All fields have safe defaults so the binary runs locally without any env
// setup. Variables are prefixed WAZOBIA_; a .env file in the working
// directory is read first when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the Wazobia agent.
type Config struct {
	// Application
	AppName     string
	AppVersion  string
	Environment string // WAZOBIA_ENV — default: "development"
	Debug       bool   // WAZOBIA_DEBUG — default: true

	// HTTP API
	APIHost string // WAZOBIA_API_HOST — default: "0.0.0.0"
	APIPort int    // PORT or WAZOBIA_API_PORT — default: 8000

	// LLM
	LLMProvider     string  // WAZOBIA_LLM_PROVIDER — anthropic, groq, openai, local
	LLMBaseURL      string  // WAZOBIA_LLM_BASE_URL — empty selects the vendor default
	AnthropicAPIKey string  // WAZOBIA_ANTHROPIC_API_KEY
	GroqAPIKey      string  // WAZOBIA_GROQ_API_KEY
	OpenAIAPIKey    string  // WAZOBIA_OPENAI_API_KEY
	DefaultModel    string  // WAZOBIA_DEFAULT_MODEL — default depends on provider
	Temperature     float32 // WAZOBIA_TEMPERATURE — default: 0.7
	MaxTokens       int     // WAZOBIA_MAX_TOKENS — default: 2000

	// Corpus and persistence
	KnowledgePath string // WAZOBIA_KNOWLEDGE_PATH — default: "data"
	DBPath        string // WAZOBIA_DB_PATH — default: "wazobia.db"

	// Agent
	MaxHistoryTurns    int // WAZOBIA_MAX_HISTORY — default: 10
	MaxConcurrentChats int // WAZOBIA_MAX_CONCURRENT_CHATS — default: 3
}

const (
	envEnvironment     = "WAZOBIA_ENV"
	envDebug           = "WAZOBIA_DEBUG"
	envAPIHost         = "WAZOBIA_API_HOST"
	envAPIPort         = "WAZOBIA_API_PORT"
	envPort            = "PORT" // hosting platforms inject this one
	envLLMProvider     = "WAZOBIA_LLM_PROVIDER"
	envLLMBaseURL      = "WAZOBIA_LLM_BASE_URL"
	envAnthropicAPIKey = "WAZOBIA_ANTHROPIC_API_KEY"
	envGroqAPIKey      = "WAZOBIA_GROQ_API_KEY"
	envOpenAIAPIKey    = "WAZOBIA_OPENAI_API_KEY"
	envDefaultModel    = "WAZOBIA_DEFAULT_MODEL"
	envTemperature     = "WAZOBIA_TEMPERATURE"
	envMaxTokens       = "WAZOBIA_MAX_TOKENS"
	envKnowledgePath   = "WAZOBIA_KNOWLEDGE_PATH"
	envDBPath          = "WAZOBIA_DB_PATH"
	envMaxHistory      = "WAZOBIA_MAX_HISTORY"
	envMaxChats        = "WAZOBIA_MAX_CONCURRENT_CHATS"
)

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults for missing values. Real env vars win over
// .env entries because godotenv never overwrites an existing variable.
func Load() Config {
	_ = godotenv.Load() // absence of .env is the normal case

	provider := envOr(envLLMProvider, "anthropic")

	return Config{
		AppName:            "Wazobia Multilingual Agent",
		AppVersion:         "1.0.0",
		Environment:        envOr(envEnvironment, "development"),
		Debug:              envOrBool(envDebug, true),
		APIHost:            envOr(envAPIHost, "0.0.0.0"),
		APIPort:            envOrInt(envPort, envOrInt(envAPIPort, 8000)),
		LLMProvider:        provider,
		LLMBaseURL:         os.Getenv(envLLMBaseURL),
		AnthropicAPIKey:    os.Getenv(envAnthropicAPIKey),
		GroqAPIKey:         os.Getenv(envGroqAPIKey),
		OpenAIAPIKey:       os.Getenv(envOpenAIAPIKey),
		DefaultModel:       envOr(envDefaultModel, defaultModelFor(provider)),
		Temperature:        envOrFloat(envTemperature, 0.7),
		MaxTokens:          envOrInt(envMaxTokens, 2000),
		KnowledgePath:      envOr(envKnowledgePath, "data"),
		DBPath:             envOr(envDBPath, "wazobia.db"),
		MaxHistoryTurns:    envOrInt(envMaxHistory, 10),
		MaxConcurrentChats: envOrInt(envMaxChats, 3),
	}
}

// APIKey returns the credential for the configured provider. The local
// provider needs none.
func (c Config) APIKey() string {
	switch c.LLMProvider {
	case "anthropic":
		return c.AnthropicAPIKey
	case "groq":
		return c.GroqAPIKey
	case "openai":
		return c.OpenAIAPIKey
	default:
		return ""
	}
}

// defaultModelFor picks a sensible model per provider family.
func defaultModelFor(provider string) string {
	switch provider {
	case "openai", "groq":
		return "llama-3.3-70b-versatile"
	case "local":
		return "llama3.2:3b"
	default:
		return "claude-3-5-sonnet-20241022"
	}
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
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

func envOrFloat(key string, fallback float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}

func envOrBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
