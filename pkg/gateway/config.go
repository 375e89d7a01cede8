package gateway

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds gateway-level settings.
type Config struct {
	DefaultModel string          `yaml:"default_model"` // Used when a request names no model.
	SystemPrompt string          `yaml:"system_prompt"` // Fallback preamble for conversations without a system turn.
	Options      GenerateOptions `yaml:"options"`
}

// GenerateOptions are sampling settings passed through to the engine.
type GenerateOptions struct {
	Temperature float64 `yaml:"temperature"`
	TopP        float64 `yaml:"top_p"`
	MaxTokens   int     `yaml:"max_tokens"` // 0 = engine default.
}

// LoadConfig reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR in the YAML are expanded before parsing.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("gateway: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("gateway: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Options.Temperature < 0 || c.Options.Temperature > 2 {
		return fmt.Errorf("gateway: config: temperature %v out of range [0, 2]", c.Options.Temperature)
	}
	if c.Options.TopP < 0 || c.Options.TopP > 1 {
		return fmt.Errorf("gateway: config: top_p %v out of range [0, 1]", c.Options.TopP)
	}
	if c.Options.MaxTokens < 0 {
		return fmt.Errorf("gateway: config: max_tokens must not be negative")
	}
	return nil
}
