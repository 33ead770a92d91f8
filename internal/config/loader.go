// Package config provides configuration loading, defaults, and validation for
// the MedText-Intelligence platform.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all platform settings.
const envPrefix = "MEDTEXT"

// newViper builds a pre-configured Viper instance with the platform's standard
// settings: YAML file type, MEDTEXT_ env prefix, automatic env binding, and a
// key replacer that maps "." → "_" so that nested keys like "cache.backend"
// resolve to "MEDTEXT_CACHE_BACKEND".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindKnownKeys(v)
	return v
}

// knownKeys is the exhaustive list of configuration keys.  Viper only
// surfaces environment variables for keys it already knows about, so every
// key must be bound explicitly for LoadFromEnv to work without a file.
var knownKeys = []string{
	"server.port", "server.mode", "server.read_timeout", "server.write_timeout",
	"server.max_body_size", "server.shutdown_timeout", "server.allowed_origins",
	"redis.addr", "redis.password", "redis.db", "redis.pool_size",
	"redis.min_idle_conns", "redis.dial_timeout", "redis.read_timeout",
	"redis.write_timeout", "redis.key_prefix",
	"cache.backend", "cache.analysis_ttl", "cache.validation_ttl",
	"cache.quick_score_ttl", "cache.similarity_ttl", "cache.cleanup_interval",
	"log.level", "log.format", "log.output", "log.enable_caller", "log.enable_stacktrace",
	"intelligence.rules_path", "intelligence.watch_rules",
	"intelligence.min_pattern_confidence", "intelligence.min_relationship_strength",
	"intelligence.max_traversal_depth", "intelligence.max_text_length",
	"intelligence.australian_compliance",
	"worker.concurrency", "worker.queue_depth", "worker.job_timeout", "worker.result_ttl",
}

func bindKnownKeys(v *viper.Viper) {
	for _, key := range knownKeys {
		_ = v.BindEnv(key)
	}
}

// Load reads the YAML file at configPath, merges any MEDTEXT_* environment
// variable overrides, applies platform defaults for unset fields, and
// validates the result.  It returns a fully-populated *Config or a
// descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from MEDTEXT_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised (12-factor) deployments.
//
// Environment variable naming convention:
//
//	MEDTEXT_<SECTION>_<FIELD>   e.g.  MEDTEXT_SERVER_PORT, MEDTEXT_REDIS_ADDR
func LoadFromEnv() (*Config, error) {
	v := newViper()
	// No config file — rely solely on env vars and defaults.
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as log level and confidence
// thresholds; callers are responsible for applying only the safe subset of
// changes at runtime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// If the changed file fails to parse or validate, onChange is NOT called.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read — errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			// Config change produced an invalid config; skip the callback to
			// prevent the application from entering a broken state.
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
