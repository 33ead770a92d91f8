package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 60*time.Minute, cfg.Cache.AnalysisTTL)
	assert.Equal(t, 20*time.Minute, cfg.Cache.ValidationTTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.QuickScoreTTL)
	assert.Equal(t, 0.7, cfg.Intelligence.MinPatternConfidence)
	assert.Equal(t, 0.5, cfg.Intelligence.MinRelationshipStrength)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "medtext:", cfg.Redis.KeyPrefix)
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9999
	cfg.Cache.Backend = "redis"
	cfg.Redis.Addr = "redis.internal:6379"
	ApplyDefaults(cfg)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
}

func TestApplyDefaultsNil(t *testing.T) {
	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"bad cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, "cache.backend"},
		{"redis backend without addr", func(c *Config) {
			c.Cache.Backend = "redis"
			c.Redis.Addr = ""
		}, "redis.addr"},
		{"negative redis db", func(c *Config) { c.Redis.DB = -1 }, "redis.db"},
		{"confidence out of range", func(c *Config) { c.Intelligence.MinPatternConfidence = 1.5 }, "min_pattern_confidence"},
		{"strength out of range", func(c *Config) { c.Intelligence.MinRelationshipStrength = -0.1 }, "min_relationship_strength"},
		{"zero depth", func(c *Config) { c.Intelligence.MaxTraversalDepth = 0 }, "max_traversal_depth"},
		{"zero concurrency", func(c *Config) { c.Worker.Concurrency = 0 }, "worker.concurrency"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "medtext.yaml")
	yaml := `
server:
  port: 8090
  mode: release
cache:
  backend: memory
  validation_ttl: 25m
intelligence:
  min_pattern_confidence: 0.75
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 25*time.Minute, cfg.Cache.ValidationTTL)
	assert.Equal(t, 0.75, cfg.Intelligence.MinPatternConfidence)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset fields fall back to defaults.
	assert.Equal(t, 60*time.Minute, cfg.Cache.AnalysisTTL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/medtext.yaml")
	require.Error(t, err)
}

func TestLoadInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "medtext.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  mode: bogus\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.mode")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MEDTEXT_SERVER_PORT", "8123")
	t.Setenv("MEDTEXT_LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestNewDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.NoError(t, cfg.Validate())
}

//Personal.AI order the ending
