package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				AI: AIConfig{
					APIKey:  "sk-1234567890abcdef1234567890abcdef",
					Model:   "gpt-4.1",
					BaseURL: "https://api.openai.com/v1",
				},
				Limits: DefaultLimits(),
			},
			wantErr: false,
		},
		{
			name: "empty API key is allowed at load time",
			config: Config{
				AI:     AIConfig{Model: "gpt-4.1"},
				Limits: DefaultLimits(),
			},
			wantErr: false,
		},
		{
			name: "invalid base URL",
			config: Config{
				AI:     AIConfig{Model: "gpt-4.1", BaseURL: "not-a-url"},
				Limits: DefaultLimits(),
			},
			wantErr: true,
		},
		{
			name: "requests per minute out of range",
			config: Config{
				AI: AIConfig{Model: "gpt-4.1"},
				Limits: Limits{
					MaxInFlight: 4,
					RateLimit: RateLimitConfig{
						RequestsPerMinute: 0,
						BurstSize:         15,
					},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.validate())

	assert.Equal(t, "gpt-4.1", cfg.AI.Model)
	assert.Equal(t, DefaultLimits(), cfg.Limits)
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
ai:
  api_key: sk-file-1234567890abcdef
  model: gpt-4o-mini
  base_url: http://localhost:8080/v1
prompts:
  override_dir: /tmp/prompts
limits:
  max_in_flight: 2
  rate_limit:
    requests_per_minute: 10
    burst_size: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("STORYWEAVER_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-file-1234567890abcdef", cfg.AI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.AI.BaseURL)
	assert.Equal(t, "/tmp/prompts", cfg.Prompts.OverrideDir)
	assert.Equal(t, 2, cfg.Limits.MaxInFlight)
	assert.Equal(t, 10, cfg.Limits.RateLimit.RequestsPerMinute)
}

func TestLoadMissingFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("STORYWEAVER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("OPENAI_API_KEY", "sk-env-1234567890abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-env-1234567890abcdef", cfg.AI.APIKey)
	assert.Equal(t, "gpt-4.1", cfg.AI.Model)
	assert.Equal(t, DefaultLimits(), cfg.Limits)
}

func TestLoadAPIKeyPlaceholderFallsBackToEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
ai:
  api_key: ${OPENAI_API_KEY}
  model: gpt-4.1
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("STORYWEAVER_CONFIG", path)
	t.Setenv("OPENAI_API_KEY", "sk-env-abcdef1234567890")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-env-abcdef1234567890", cfg.AI.APIKey)
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai: ["), 0644))
	t.Setenv("STORYWEAVER_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}
