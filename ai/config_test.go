package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1536, cfg.Dimensions)
	assert.Equal(t, 8000, cfg.MaxInputTokens)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("https://embeddings.example.com"),
		WithAPIKey("secret"),
		WithModel("text-embedding-3-small"),
		WithDimensions(768),
		WithMaxInputTokens(4000),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://embeddings.example.com/v1", cfg.Host)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "text-embedding-3-small", cfg.Model)
	assert.Equal(t, 768, cfg.Dimensions)
	assert.Equal(t, 4000, cfg.MaxInputTokens)
}

func TestConfig_Normalize(t *testing.T) {
	testCases := []struct {
		name     string
		host     string
		expected string
	}{
		{"missing suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already normalized", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty stays empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Host: tc.host}
			cfg.Normalize()
			assert.Equal(t, tc.expected, cfg.Host)
		})
	}
}

func TestConfig_Validate_Missing(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing host", func(c *Config) { c.Host = "" }},
		{"missing api key", func(c *Config) { c.APIKey = "" }},
		{"missing model", func(c *Config) { c.Model = "" }},
		{"zero dimensions", func(c *Config) { c.Dimensions = 0 }},
		{"zero max input tokens", func(c *Config) { c.MaxInputTokens = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
