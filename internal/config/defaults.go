package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultRedisAddr = "localhost:6379"

	DefaultCacheBackend    = "memory"
	DefaultAnalysisTTL     = 60 * time.Minute
	DefaultValidationTTL   = 20 * time.Minute
	DefaultQuickScoreTTL   = 10 * time.Minute
	DefaultSimilarityTTL   = 30 * time.Minute
	DefaultCleanupInterval = 5 * time.Minute

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMinPatternConfidence    = 0.7
	DefaultMinRelationshipStrength = 0.5
	DefaultMaxTraversalDepth       = 3
	DefaultMaxTextLength           = 262144

	DefaultWorkerConcurrency = 4
	DefaultWorkerQueueDepth  = 64
)

// ApplyDefaults fills every zero-value field in cfg with the platform default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.  It must be called
// after unmarshalling raw config data and before Validate().
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "medtext:"
	}

	// ── Cache ─────────────────────────────────────────────────────────────────
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = DefaultCacheBackend
	}
	if cfg.Cache.AnalysisTTL == 0 {
		cfg.Cache.AnalysisTTL = DefaultAnalysisTTL
	}
	if cfg.Cache.ValidationTTL == 0 {
		cfg.Cache.ValidationTTL = DefaultValidationTTL
	}
	if cfg.Cache.QuickScoreTTL == 0 {
		cfg.Cache.QuickScoreTTL = DefaultQuickScoreTTL
	}
	if cfg.Cache.SimilarityTTL == 0 {
		cfg.Cache.SimilarityTTL = DefaultSimilarityTTL
	}
	if cfg.Cache.CleanupInterval == 0 {
		cfg.Cache.CleanupInterval = DefaultCleanupInterval
	}

	// ── Intelligence ──────────────────────────────────────────────────────────
	if cfg.Intelligence.MinPatternConfidence == 0 {
		cfg.Intelligence.MinPatternConfidence = DefaultMinPatternConfidence
	}
	if cfg.Intelligence.MinRelationshipStrength == 0 {
		cfg.Intelligence.MinRelationshipStrength = DefaultMinRelationshipStrength
	}
	if cfg.Intelligence.MaxTraversalDepth == 0 {
		cfg.Intelligence.MaxTraversalDepth = DefaultMaxTraversalDepth
	}
	if cfg.Intelligence.MaxTextLength == 0 {
		cfg.Intelligence.MaxTextLength = DefaultMaxTextLength
	}

	// ── Worker ────────────────────────────────────────────────────────────────
	if cfg.Worker.Concurrency == 0 {
		cfg.Worker.Concurrency = DefaultWorkerConcurrency
	}
	if cfg.Worker.QueueDepth == 0 {
		cfg.Worker.QueueDepth = DefaultWorkerQueueDepth
	}
	if cfg.Worker.JobTimeout == 0 {
		cfg.Worker.JobTimeout = 2 * time.Minute
	}
	if cfg.Worker.ResultTTL == 0 {
		cfg.Worker.ResultTTL = 30 * time.Minute
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// NewDefaultConfig returns a Config populated entirely with platform defaults.
// It is used by cmd entry points when no config file is present.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

//Personal.AI order the ending
