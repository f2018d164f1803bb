package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds everything the pipeline needs, resolved once at startup.
// Values come from an optional YAML file with environment variables
// taking precedence; nothing downstream reads the environment.
type Config struct {
	// PageURL is the source document. Required.
	PageURL string `yaml:"page_url"`

	// LLMProvider selects the correction service:
	// openrouter (default), gemini, or anthropic.
	LLMProvider string `yaml:"llm_provider"`

	// LLMModel overrides the provider's default model.
	LLMModel string `yaml:"llm_model"`

	// LLMEndpoint overrides the openrouter provider's endpoint.
	LLMEndpoint string `yaml:"llm_endpoint"`

	// LLMAPIKey authenticates the openrouter provider.
	LLMAPIKey string `yaml:"llm_api_key"`

	// LLMMaxTokens bounds corrected output where the provider supports it.
	LLMMaxTokens int `yaml:"llm_max_tokens"`

	GeminiAPIKey    string `yaml:"gemini_api_key"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
}

// LoadConfig reads the YAML file at path (a missing file is fine), applies
// environment variable overrides, and validates the result.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	// Env vars override YAML values
	if v := os.Getenv("DAILY_STOIC_URL"); v != "" {
		cfg.PageURL = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLMProvider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLMModel = v
	}
	if v := os.Getenv("LLM_ENDPOINT"); v != "" {
		cfg.LLMEndpoint = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("LLM_MAX_TOKENS %q is not a number", v)
		}
		cfg.LLMMaxTokens = n
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicAPIKey = v
	}

	if cfg.PageURL == "" {
		return Config{}, fmt.Errorf("page_url not configured: set it in %s or via DAILY_STOIC_URL", path)
	}

	return cfg, nil
}

func defaultConfigPath() string {
	if path := os.Getenv("DAILYSTOIC_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}
