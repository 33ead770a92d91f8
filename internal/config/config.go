// Package config defines all configuration structures for the
// MedText-Intelligence platform.  No I/O or parsing logic lives here — only
// plain data types and validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// AllowedOrigins restricts CORS to the listed origins.  Empty allows any
	// origin, which suits same-host browser extension deployments.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RedisConfig holds Redis connection parameters.  Redis is optional: when
// Cache.Backend is "memory" this section is ignored entirely.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// CacheConfig selects the cache backend and the TTL bands used by the
// analysis core.  TTLs are deliberately configurable because the UI layers
// tune them per deployment (10–60 minute band).
type CacheConfig struct {
	Backend         string        `mapstructure:"backend"` // "memory" | "redis"
	AnalysisTTL     time.Duration `mapstructure:"analysis_ttl"`
	ValidationTTL   time.Duration `mapstructure:"validation_ttl"`
	QuickScoreTTL   time.Duration `mapstructure:"quick_score_ttl"`
	SimilarityTTL   time.Duration `mapstructure:"similarity_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string `mapstructure:"format"` // "json" | "console"
	Output           string `mapstructure:"output"`
	EnableCaller     bool   `mapstructure:"enable_caller"`
	EnableStacktrace bool   `mapstructure:"enable_stacktrace"`
}

// IntelligenceConfig holds the analysis-engine tunables.  Thresholds mirror
// the engine defaults; overriding them here changes confidence gating without
// a rebuild.
type IntelligenceConfig struct {
	// RulesPath optionally points at a YAML correction-rule table that
	// overrides the built-in tables.  Empty means built-in only.
	RulesPath string `mapstructure:"rules_path"`

	// WatchRules enables hot reload of RulesPath on file change.
	WatchRules bool `mapstructure:"watch_rules"`

	// MinPatternConfidence is the retention threshold for reasoning patterns.
	MinPatternConfidence float64 `mapstructure:"min_pattern_confidence"`

	// MinRelationshipStrength is the graph traversal edge cutoff.
	MinRelationshipStrength float64 `mapstructure:"min_relationship_strength"`

	// MaxTraversalDepth caps knowledge-graph query depth.
	MaxTraversalDepth int `mapstructure:"max_traversal_depth"`

	// MaxTextLength rejects pathological inputs before regex scanning.
	MaxTextLength int `mapstructure:"max_text_length"`

	// AustralianCompliance toggles the Australian terminology pass.
	AustralianCompliance bool `mapstructure:"australian_compliance"`
}

// WorkerConfig holds the in-process analysis job queue parameters.
type WorkerConfig struct {
	Concurrency int           `mapstructure:"concurrency"`
	QueueDepth  int           `mapstructure:"queue_depth"`
	JobTimeout  time.Duration `mapstructure:"job_timeout"`
	ResultTTL   time.Duration `mapstructure:"result_ttl"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the entire platform.
// Every infrastructure component and application service reads its settings
// from the relevant sub-struct.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Log          LogConfig          `mapstructure:"log"`
	Intelligence IntelligenceConfig `mapstructure:"intelligence"`
	Worker       WorkerConfig       `mapstructure:"worker"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Cache
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: cache.backend %q is invalid; expected memory|redis", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when cache.backend is redis")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be ≥ 0, got %d", c.Redis.DB)
	}

	// Intelligence
	if c.Intelligence.MinPatternConfidence < 0 || c.Intelligence.MinPatternConfidence > 1 {
		return fmt.Errorf("config: intelligence.min_pattern_confidence %v is out of range [0, 1]",
			c.Intelligence.MinPatternConfidence)
	}
	if c.Intelligence.MinRelationshipStrength < 0 || c.Intelligence.MinRelationshipStrength > 1 {
		return fmt.Errorf("config: intelligence.min_relationship_strength %v is out of range [0, 1]",
			c.Intelligence.MinRelationshipStrength)
	}
	if c.Intelligence.MaxTraversalDepth < 1 {
		return fmt.Errorf("config: intelligence.max_traversal_depth must be ≥ 1, got %d",
			c.Intelligence.MaxTraversalDepth)
	}
	if c.Intelligence.MaxTextLength < 1 {
		return fmt.Errorf("config: intelligence.max_text_length must be ≥ 1, got %d",
			c.Intelligence.MaxTextLength)
	}

	// Worker
	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("config: worker.concurrency must be ≥ 1, got %d", c.Worker.Concurrency)
	}
	if c.Worker.QueueDepth < 1 {
		return fmt.Errorf("config: worker.queue_depth must be ≥ 1, got %d", c.Worker.QueueDepth)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}

//Personal.AI order the ending
