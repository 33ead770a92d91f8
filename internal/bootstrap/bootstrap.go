// Package bootstrap assembles the analysis stack from configuration.  It is
// the single composition root shared by the API server entry point and the
// CLI serve command, so both wire the engines identically.
package bootstrap

import (
	"context"

	"github.com/turtacn/MedText-Intelligence/internal/application/analysis"
	"github.com/turtacn/MedText-Intelligence/internal/application/jobs"
	"github.com/turtacn/MedText-Intelligence/internal/config"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/cache"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/corrections"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/reasoning"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/scoring"
	httpserver "github.com/turtacn/MedText-Intelligence/internal/interfaces/http"
	"github.com/turtacn/MedText-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// metricsNamespace prefixes every exported Prometheus series.
const metricsNamespace = "medtext"

// Core bundles the long-lived components built from a Config.
type Core struct {
	Config    *config.Config
	Logger    logging.Logger
	Cache     cache.Cache
	Corrector corrections.Corrector
	Extractor extractor.Extractor
	Detector  reasoning.Detector
	Graph     knowledge.Graph
	Scorer    scoring.Scorer
	Service   analysis.Service
	Metrics   *prometheus.AppMetrics
	Collector prometheus.MetricsCollector

	stopRulesWatch func()
}

// LoadConfig reads the configuration file when a path is given, otherwise
// builds the configuration from MEDTEXT_* environment variables alone.
func LoadConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.LoadFromEnv()
}

// NewLoggerFromConfig builds the process logger from the log section.
func NewLoggerFromConfig(cfg config.LogConfig) (logging.Logger, error) {
	logCfg := logging.LogConfig{
		Level:            cfg.Level,
		Format:           cfg.Format,
		EnableCaller:     cfg.EnableCaller,
		EnableStacktrace: cfg.EnableStacktrace,
	}
	if cfg.Output != "" {
		logCfg.OutputPaths = []string{cfg.Output}
	}
	return logging.NewLogger(logCfg)
}

// NewCore builds the full engine stack.  The rule table is loaded from
// Intelligence.RulesPath when set, with hot reload when WatchRules is on;
// Close releases the watcher.
func NewCore(cfg *config.Config, log logging.Logger) (*Core, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            metricsNamespace,
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, log)
	if err != nil {
		return nil, err
	}
	metrics := prometheus.NewAppMetrics(collector)

	var store cache.Cache
	switch cfg.Cache.Backend {
	case "redis":
		store = cache.NewRedisCache(cfg.Redis, log)
	default:
		store = cache.NewMemoryCache(log, cfg.Cache.CleanupInterval)
	}

	var table *corrections.RuleTable
	if cfg.Intelligence.RulesPath != "" {
		if table, err = corrections.LoadTable(cfg.Intelligence.RulesPath); err != nil {
			return nil, err
		}
	}
	corrector, err := corrections.NewCorrector(table, log)
	if err != nil {
		return nil, err
	}

	var stopWatch func()
	if cfg.Intelligence.RulesPath != "" && cfg.Intelligence.WatchRules {
		if stopWatch, err = corrections.WatchTable(cfg.Intelligence.RulesPath, corrector, log); err != nil {
			return nil, err
		}
	}

	ext := extractor.NewExtractor(log)
	det := reasoning.NewDetector(log)
	graph := knowledge.NewGraph(log, knowledge.WithSimilarityTTL(cfg.Cache.SimilarityTTL))

	scorer, err := scoring.NewScorer(ext, det, graph, store, log,
		scoring.WithValidationTTL(cfg.Cache.ValidationTTL),
		scoring.WithQuickTTL(cfg.Cache.QuickScoreTTL),
		scoring.WithMetrics(metrics))
	if err != nil {
		return nil, err
	}

	svc, err := analysis.NewService(corrector, ext, det, graph, scorer, store, log,
		analysis.WithAnalysisTTL(cfg.Cache.AnalysisTTL),
		analysis.WithMaxTextLength(cfg.Intelligence.MaxTextLength),
		analysis.WithEngineDefaults(cfg.Intelligence),
		analysis.WithMetrics(metrics))
	if err != nil {
		return nil, err
	}

	return &Core{
		Config:         cfg,
		Logger:         log,
		Cache:          store,
		Corrector:      corrector,
		Extractor:      ext,
		Detector:       det,
		Graph:          graph,
		Scorer:         scorer,
		Service:        svc,
		Metrics:        metrics,
		Collector:      collector,
		stopRulesWatch: stopWatch,
	}, nil
}

// Close releases background resources held by the core.
func (c *Core) Close() {
	if c.stopRulesWatch != nil {
		c.stopRulesWatch()
	}
}

// graphChecker reports ready once the seeded concepts are loaded.
func graphChecker(g knowledge.Graph) handlers.Checker {
	return func(context.Context) error {
		if g.Stats().ConceptCount == 0 {
			return errors.New(errors.ErrCodeServiceUnavailable, "knowledge graph is empty")
		}
		return nil
	}
}

// Run starts the API server described by configFile and blocks until ctx is
// cancelled or the listener fails.  Shutdown drains in-flight requests and
// running jobs within Server.ShutdownTimeout.
func Run(ctx context.Context, configFile string) error {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}

	log, err := NewLoggerFromConfig(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(log)

	core, err := NewCore(cfg, log)
	if err != nil {
		return err
	}
	defer core.Close()

	queue, err := jobs.NewQueue(core.Service, cfg.Worker, log, jobs.WithMetrics(core.Metrics))
	if err != nil {
		return err
	}
	queue.Start()

	router := httpserver.NewRouter(httpserver.RouterConfig{
		TextHandler:     handlers.NewTextHandler(core.Service),
		AnalysisHandler: handlers.NewAnalysisHandler(core.Service, queue),
		GraphHandler:    handlers.NewGraphHandler(core.Graph, core.Metrics),
		HealthHandler: handlers.NewHealthHandler(map[string]handlers.Checker{
			"cache": core.Cache.Ping,
			"graph": graphChecker(core.Graph),
		}, core.Metrics),
		Logger:           log,
		Metrics:          core.Metrics,
		MetricsCollector: core.Collector,
		Mode:             cfg.Server.Mode,
		AllowedOrigins:   cfg.Server.AllowedOrigins,
	})
	server := httpserver.NewServer(router, cfg.Server, log)

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Start() }()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	if stopErr := queue.Stop(shutdownCtx); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}

//Personal.AI order the ending
