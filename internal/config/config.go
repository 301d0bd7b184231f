// Package config loads process configuration from an optional YAML file,
// a .env file, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI      AIConfig      `yaml:"ai" validate:"required"`
	Prompts PromptsConfig `yaml:"prompts"`
	Limits  Limits        `yaml:"limits" validate:"required"`
}

type AIConfig struct {
	// APIKey may be empty after Load; client construction rejects a
	// missing credential, not config loading.
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model" validate:"required"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}

type PromptsConfig struct {
	// OverrideDir points at a directory of <stage>.tmpl files that
	// replace the built-in prompt templates per stage.
	OverrideDir string `yaml:"override_dir"`
}

type Limits struct {
	MaxInFlight int             `yaml:"max_in_flight" validate:"required,min=1,max=100"`
	RateLimit   RateLimitConfig `yaml:"rate_limit" validate:"required"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" validate:"required,min=1,max=1000"`
	BurstSize         int `yaml:"burst_size" validate:"required,min=1,max=100"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxInFlight: 4,
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 30,
			BurstSize:         15,
		},
	}
}

func defaultConfig() Config {
	return Config{
		AI: AIConfig{
			Model: "gpt-4.1",
		},
		Limits: DefaultLimits(),
	}
}

// Load reads the config file if present and overlays environment values.
// A missing config file is not an error: defaults apply and the credential
// comes from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := getConfigPath()
	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if cfg.AI.APIKey == "" || cfg.AI.APIKey == "${OPENAI_API_KEY}" {
		cfg.AI.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func getConfigPath() string {
	// 1. Explicit config path via environment variable
	if path := os.Getenv("STORYWEAVER_CONFIG"); path != "" {
		return path
	}

	// 2. XDG_CONFIG_HOME (XDG Base Directory Specification)
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "storyweaver", "config.yaml")
	}

	// 3. Default to ~/.config/storyweaver/config.yaml (XDG fallback)
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "storyweaver", "config.yaml")
}

// expandTilde expands a tilde (~) at the beginning of a path to the user's home directory
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *Config) validate() error {
	if c.AI.Model == "" {
		c.AI.Model = "gpt-4.1"
	}
	if c.Limits.MaxInFlight == 0 {
		c.Limits = DefaultLimits()
	}
	if c.Prompts.OverrideDir != "" {
		c.Prompts.OverrideDir = expandTilde(c.Prompts.OverrideDir)
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
