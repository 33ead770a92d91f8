// Package analysis orchestrates the intelligence engines into the full
// clinical text pipeline: corrections, component extraction, reasoning
// detection, knowledge-graph enrichment, and optional validation. Every
// dependency is constructor-injected; the service holds no global state
// beyond its cache.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/MedText-Intelligence/internal/config"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/cache"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/corrections"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/reasoning"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/scoring"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

const (
	defaultAnalysisTTL   = 60 * time.Minute
	defaultMaxTextLength = 100_000
	defaultGraphDepth    = 2
)

// Service is the application-level facade over the intelligence engines.
type Service interface {
	// CorrectText applies the correction table (and the medication pipeline
	// when medication is in scope) and returns the corrected text.
	CorrectText(ctx context.Context, text string, categories ...corrections.Category) (string, error)

	// ExtractComponents returns the clinical components found in text.
	ExtractComponents(ctx context.Context, text string) ([]extractor.ClinicalComponent, error)

	// AnalyzeClinicalReasoning runs the full pipeline and assembles a report.
	// Results are cached by (text, options) hash.
	AnalyzeClinicalReasoning(ctx context.Context, text string, opts Options) (*Report, error)

	// ValidateText runs the five-pass accuracy validation.
	ValidateText(ctx context.Context, text string, cfg scoring.Config) (scoring.ValidationResult, error)

	// QuickConfidence returns the fast heuristic confidence estimate.
	QuickConfidence(ctx context.Context, text string) float64

	// RuleTables reports the active correction rule counts per category.
	RuleTables() map[corrections.Category]int
}

type service struct {
	corrector corrections.Corrector
	extractor extractor.Extractor
	detector  reasoning.Detector
	graph     knowledge.Graph
	scorer    scoring.Scorer
	cache     cache.Cache
	logger    logging.Logger
	metrics   *prometheus.AppMetrics

	analysisTTL   time.Duration
	maxTextLength int

	graphDepth      int
	minConfidence   float64
	australianFocus bool
}

// Option customises service construction.
type Option func(*service)

// WithAnalysisTTL overrides the report cache TTL.
func WithAnalysisTTL(ttl time.Duration) Option {
	return func(s *service) { s.analysisTTL = ttl }
}

// WithMaxTextLength overrides the input length ceiling.
func WithMaxTextLength(n int) Option {
	return func(s *service) { s.maxTextLength = n }
}

// WithMetrics attaches application metrics.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(s *service) { s.metrics = m }
}

// WithEngineDefaults seeds per-request option defaults from configuration:
// the graph traversal depth and pattern confidence floor applied when a
// request leaves them unset, and the platform-wide Australian terminology
// toggle. The toggle turns the Australian pass on for every request;
// individual requests may still opt in when it is off.
func WithEngineDefaults(cfg config.IntelligenceConfig) Option {
	return func(s *service) {
		if cfg.MaxTraversalDepth > 0 {
			s.graphDepth = cfg.MaxTraversalDepth
		}
		if cfg.MinPatternConfidence > 0 {
			s.minConfidence = cfg.MinPatternConfidence
		}
		s.australianFocus = cfg.AustralianCompliance
	}
}

// NewService wires the pipeline. All five engines and the cache are required;
// a nil logger falls back to a no-op.
func NewService(corr corrections.Corrector, ext extractor.Extractor, det reasoning.Detector,
	g knowledge.Graph, sc scoring.Scorer, c cache.Cache, log logging.Logger, opts ...Option) (Service, error) {

	if corr == nil || ext == nil || det == nil || g == nil || sc == nil || c == nil {
		return nil, errors.New(errors.ErrCodeAnalysisOptsInvalid,
			"analysis service requires all five engines and a cache")
	}
	if log == nil {
		log = logging.NewNopLogger()
	}

	s := &service{
		corrector:     corr,
		extractor:     ext,
		detector:      det,
		graph:         g,
		scorer:        sc,
		cache:         c,
		logger:        log.Named("analysis"),
		analysisTTL:   defaultAnalysisTTL,
		maxTextLength: defaultMaxTextLength,
		graphDepth:    defaultGraphDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// checkText enforces the input contract shared by every operation.
func (s *service) checkText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New(errors.ErrCodeTextEmpty, "clinical text is empty")
	}
	if len(text) > s.maxTextLength {
		return errors.New(errors.ErrCodeTextTooLong,
			fmt.Sprintf("clinical text is %d bytes, maximum is %d", len(text), s.maxTextLength))
	}
	return nil
}

func (s *service) CorrectText(ctx context.Context, text string, categories ...corrections.Category) (string, error) {
	if err := s.checkText(text); err != nil {
		return "", err
	}

	started := time.Now()
	corrected := s.corrector.Apply(text, categories...)
	if medicationInScope(categories) {
		corrected = s.corrector.ApplyMedication(corrected)
	}

	if s.metrics != nil {
		label := "all"
		if len(categories) == 1 {
			label = string(categories[0])
		} else if len(categories) > 1 {
			label = "subset"
		}
		s.metrics.CorrectionDuration.WithLabelValues(label).Observe(time.Since(started).Seconds())
		if corrected != text {
			s.metrics.CorrectionsAppliedTotal.WithLabelValues(label).Inc()
		}
	}
	return corrected, nil
}

// medicationInScope reports whether the medication pipeline should run for
// the requested category set.
func medicationInScope(categories []corrections.Category) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if c == corrections.CategoryMedication {
			return true
		}
	}
	return false
}

func (s *service) ExtractComponents(ctx context.Context, text string) ([]extractor.ClinicalComponent, error) {
	if err := s.checkText(text); err != nil {
		return nil, err
	}

	components := s.extractor.Extract(text)
	if s.metrics != nil {
		for _, component := range components {
			s.metrics.ComponentsExtractedTotal.
				WithLabelValues(string(component.Category), string(component.ClinicalSignificance)).Inc()
		}
	}
	return components, nil
}

func (s *service) AnalyzeClinicalReasoning(ctx context.Context, text string, opts Options) (*Report, error) {
	if err := s.checkText(text); err != nil {
		return nil, err
	}

	// Fill unset options before the cache key is computed so that equivalent
	// requests share an entry.
	if opts.GraphDepth <= 0 {
		opts.GraphDepth = s.graphDepth
	}
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = s.minConfidence
	}
	if s.australianFocus {
		opts.AustralianFocus = true
	}

	key := cache.Key("analysis", text, fmt.Sprintf("%+v", opts))
	var cached Report
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		prometheus.RecordCacheAccess(s.metrics, "analysis", true)
		return &cached, nil
	}
	prometheus.RecordCacheAccess(s.metrics, "analysis", false)

	started := time.Now()

	corrected := s.corrector.Apply(text, opts.Categories...)
	if medicationInScope(opts.Categories) {
		corrected = s.corrector.ApplyMedication(corrected)
	}

	components := s.extractor.Extract(corrected)

	patterns := s.detector.DetectPatterns(corrected, components, reasoning.Options{
		AustralianFocus: opts.AustralianFocus,
		MinConfidence:   opts.MinConfidence,
	})
	if s.metrics != nil {
		for _, pattern := range patterns {
			s.metrics.ReasoningPatternsTotal.WithLabelValues(string(pattern.Type)).Inc()
		}
	}

	report := &Report{
		ID:              uuid.NewString(),
		OriginalText:    text,
		CorrectedText:   corrected,
		Components:      components,
		Patterns:        patterns,
		GraphContext:    s.enrich(components, opts),
		QuickConfidence: s.scorer.QuickConfidence(ctx, corrected),
		GeneratedAt:     started,
	}

	if opts.IncludeValidation {
		validation, err := s.scorer.ValidateMedicalAccuracy(ctx, corrected, scoring.Config{
			AustralianFocus: opts.AustralianFocus,
		})
		if err != nil {
			// Validation is an enrichment here; the report stands without it.
			s.logger.Warn("validation stage failed, returning partial report", logging.Err(err))
			prometheus.RecordError(s.metrics, "analysis", "validation")
		} else {
			report.Validation = &validation
		}
	}
	report.Elapsed = time.Since(started)

	if err := s.cache.Set(ctx, key, report, s.analysisTTL); err != nil {
		s.logger.Warn("failed to cache analysis report", logging.Err(err))
	}
	s.logger.Info("analysis complete",
		logging.String("report_id", report.ID),
		logging.Int("components", len(components)),
		logging.Int("patterns", len(patterns)),
		logging.Duration("elapsed", report.Elapsed))
	return report, nil
}

// enrich queries the knowledge graph for every diagnosis component, skipping
// duplicates and unresolvable names.
func (s *service) enrich(components []extractor.ClinicalComponent, opts Options) []ConceptContext {
	depth := opts.GraphDepth
	if depth <= 0 {
		depth = defaultGraphDepth
	}

	contexts := make([]ConceptContext, 0, len(components))
	seen := make(map[string]bool)
	for _, component := range components {
		if component.Category != extractor.CategoryDiagnosis {
			continue
		}
		name := strings.ToLower(component.Value)
		if seen[name] {
			continue
		}
		seen[name] = true

		started := time.Now()
		result := s.graph.Query(component.Value, knowledge.QueryOptions{MaxDepth: depth})
		if s.metrics != nil {
			s.metrics.GraphQueryDuration.WithLabelValues("enrich").Observe(time.Since(started).Seconds())
		}
		if len(result.Concepts) == 0 {
			continue
		}
		contexts = append(contexts, ConceptContext{Component: component.Value, Result: result})
	}
	return contexts
}

func (s *service) ValidateText(ctx context.Context, text string, cfg scoring.Config) (scoring.ValidationResult, error) {
	if err := s.checkText(text); err != nil {
		return scoring.ValidationResult{}, err
	}
	return s.scorer.ValidateMedicalAccuracy(ctx, text, cfg)
}

func (s *service) QuickConfidence(ctx context.Context, text string) float64 {
	return s.scorer.QuickConfidence(ctx, text)
}

func (s *service) RuleTables() map[corrections.Category]int {
	counts := s.corrector.RuleCount()
	if s.metrics != nil {
		for category, n := range counts {
			s.metrics.CorrectionRulesLoaded.WithLabelValues(string(category)).Set(float64(n))
		}
	}
	return counts
}

//Personal.AI order the ending
