// Package scoring orchestrates the analysis engines into a multi-dimensional
// confidence report: it runs five independent validation passes in parallel,
// aggregates their findings into nine bounded sub-scores, and derives a
// pass/fail validity verdict. Results are cached by (text, config) hash.
package scoring

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/cache"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/common"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/reasoning"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

const (
	// validOverallThreshold is the minimum overall confidence for a valid
	// verdict.
	validOverallThreshold = 0.6

	// maxMajorIssues is the exclusive bound on major issues for validity.
	maxMajorIssues = 3

	// Overall confidence weights. The base plus the weights sum to 1.0.
	overallBase       = 0.4
	weightSemantic    = 0.15
	weightTerminology = 0.15
	weightReasoning   = 0.10
	weightCompliance  = 0.05
	weightFactual     = 0.15

	defaultValidationTTL = 20 * time.Minute
	defaultQuickTTL      = 10 * time.Minute
)

// Scorer validates medical text accuracy and produces confidence reports.
type Scorer interface {
	// ValidateMedicalAccuracy runs the full five-pass validation. A pass
	// that fails is logged and contributes nothing; only extraction-level
	// failures propagate. Empty text yields an invalid, zero-confidence
	// result without error.
	ValidateMedicalAccuracy(ctx context.Context, text string, cfg Config) (ValidationResult, error)

	// QuickConfidence computes a fast three-term heuristic estimate without
	// running any validation pass.
	QuickConfidence(ctx context.Context, text string) float64
}

type scorer struct {
	extractor extractor.Extractor
	detector  reasoning.Detector
	graph     knowledge.Graph
	cache     cache.Cache
	logger    logging.Logger
	metrics   *prometheus.AppMetrics

	validationTTL time.Duration
	quickTTL      time.Duration
}

// ScorerOption customises scorer construction.
type ScorerOption func(*scorer)

// WithValidationTTL overrides the validation result cache TTL.
func WithValidationTTL(ttl time.Duration) ScorerOption {
	return func(s *scorer) { s.validationTTL = ttl }
}

// WithQuickTTL overrides the quick-confidence cache TTL.
func WithQuickTTL(ttl time.Duration) ScorerOption {
	return func(s *scorer) { s.quickTTL = ttl }
}

// WithMetrics attaches application metrics.
func WithMetrics(m *prometheus.AppMetrics) ScorerOption {
	return func(s *scorer) { s.metrics = m }
}

// NewScorer wires the scorer's collaborators explicitly. The extractor,
// detector, and graph are required; a nil cache disables caching via an
// in-process store and a nil logger falls back to a no-op.
func NewScorer(ext extractor.Extractor, det reasoning.Detector, graph knowledge.Graph,
	c cache.Cache, log logging.Logger, opts ...ScorerOption) (Scorer, error) {

	if ext == nil || det == nil || graph == nil {
		return nil, errors.New(errors.ErrCodeScoringConfigInvalid,
			"scorer requires an extractor, a detector, and a knowledge graph")
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	if c == nil {
		c = cache.NewMemoryCache(log, 5*time.Minute)
	}

	s := &scorer{
		extractor:     ext,
		detector:      det,
		graph:         graph,
		cache:         c,
		logger:        log,
		validationTTL: defaultValidationTTL,
		quickTTL:      defaultQuickTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ============================================================================
// Full Validation
// ============================================================================

func (s *scorer) ValidateMedicalAccuracy(ctx context.Context, text string, cfg Config) (ValidationResult, error) {
	if strings.TrimSpace(text) == "" {
		return ValidationResult{
			IsValid:         false,
			Issues:          []ValidationIssue{},
			Recommendations: []string{"no text supplied for validation"},
		}, nil
	}

	key := cache.Key("validation", text, fmt.Sprintf("%+v", cfg))
	var cached ValidationResult
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		prometheus.RecordCacheAccess(s.metrics, "validation", true)
		return cached, nil
	}
	prometheus.RecordCacheAccess(s.metrics, "validation", false)

	started := time.Now()
	components := s.extractor.Extract(text)

	results := make([]passResult, 5)
	passes := []struct {
		name string
		run  func() passResult
	}{
		{"semantic", func() passResult { return semanticPass(text, components, cfg) }},
		{"terminology", func() passResult { return terminologyPass(text, components, cfg) }},
		{"clinical_reasoning", func() passResult { return reasoningPass(text, components, cfg, s.detector) }},
		{"australian_compliance", func() passResult { return compliancePass(text, components, cfg) }},
		{"factual_accuracy", func() passResult { return factualPass(text, components, cfg) }},
	}

	g, _ := errgroup.WithContext(ctx)
	for i, pass := range passes {
		i, pass := i, pass
		g.Go(func() error {
			// A failing pass contributes nothing; it never fails the run.
			defer func() {
				if r := recover(); r != nil {
					s.logger.Warn("validation pass failed",
						logging.String("pass", pass.name),
						logging.Any("panic", r))
					prometheus.RecordError(s.metrics, "scoring", pass.name)
					results[i] = passResult{}
				}
			}()
			results[i] = pass.run()
			return nil
		})
	}
	// Pass errors are absorbed above; Wait only orders completion.
	_ = g.Wait()

	result := s.assemble(text, components, cfg, results)

	if err := s.cache.Set(ctx, key, result, s.validationTTL); err != nil {
		// A cache write failure degrades to recomputation, nothing more.
		s.logger.Warn("failed to cache validation result", logging.Err(err))
	}
	prometheus.RecordValidation(s.metrics, result.IsValid, result.Confidence.Overall, time.Since(started))
	return result, nil
}

// assemble merges the pass results into the final report.
func (s *scorer) assemble(text string, components []extractor.ClinicalComponent,
	cfg Config, results []passResult) ValidationResult {

	var issues []ValidationIssue
	var accuracyFlags []AccuracyFlag
	var complianceFlags []AccuracyFlag
	for _, r := range results {
		issues = append(issues, r.issues...)
		accuracyFlags = append(accuracyFlags, r.accuracyFlags...)
		complianceFlags = append(complianceFlags, r.complianceFlags...)
	}

	metrics := ConfidenceMetrics{
		Semantic:             passScore(issues, IssueSemantic),
		Terminology:          passScore(issues, IssueTerminology),
		ClinicalReasoning:    passScore(issues, IssueClinicalReasoning),
		AustralianCompliance: complianceScore(issues, cfg),
		FactualAccuracy:      passScore(issues, IssueFactualAccuracy),
		Coherence:            coherenceScore(text),
		TermDensity:          termDensityScore(text),
		Completeness:         s.completenessScore(components),
	}
	metrics.Overall = common.Clamp01(overallBase +
		weightSemantic*metrics.Semantic +
		weightTerminology*metrics.Terminology +
		weightReasoning*metrics.ClinicalReasoning +
		weightCompliance*metrics.AustralianCompliance +
		weightFactual*metrics.FactualAccuracy)

	critical, major, minor := countBySeverity(issues)
	isValid := critical == 0 && major < maxMajorIssues && metrics.Overall >= validOverallThreshold

	if issues == nil {
		issues = []ValidationIssue{}
	}
	return ValidationResult{
		IsValid:                   isValid,
		Confidence:                metrics,
		Issues:                    issues,
		Recommendations:           recommend(critical, major, minor),
		MedicalAccuracyFlags:      accuracyFlags,
		AustralianComplianceFlags: complianceFlags,
	}
}

// passScore turns one pass's issue counts into a bounded sub-score.
func passScore(issues []ValidationIssue, issueType IssueType) float64 {
	score := 1.0
	for _, issue := range issues {
		if issue.Type != issueType {
			continue
		}
		switch issue.Severity {
		case SeverityCritical:
			score -= 0.4
		case SeverityMajor:
			score -= 0.2
		case SeverityMinor:
			score -= 0.05
		}
	}
	return common.Clamp01(score)
}

// complianceScore is neutral-high when the compliance pass is disabled so a
// non-Australian deployment is not penalised.
func complianceScore(issues []ValidationIssue, cfg Config) float64 {
	if !cfg.AustralianFocus {
		return 1.0
	}
	return passScore(issues, IssueAustralianCompliance)
}

// coherenceScore is the fraction of sentences within the run-on bound.
func coherenceScore(text string) float64 {
	sentences := sentenceSplit.Split(text, -1)
	total, good := 0, 0
	for _, sentence := range sentences {
		words := len(strings.Fields(sentence))
		if words == 0 {
			continue
		}
		total++
		if words <= longSentenceWords {
			good++
		}
	}
	if total == 0 {
		return 0
	}
	return common.Clamp01(float64(good) / float64(total))
}

// medicalTermPattern approximates medical-term density via capitalised
// abbreviations (EF, TTE, EUC) and dose tokens.
var medicalTermPattern = regexp.MustCompile(`\b[A-Z][A-Z0-9]{1,7}\b|\b\d+(?:\.\d+)?\s*(?:mg|mcg|mmHg|mmol)\b`)

// termDensityScore scales medical-term count per hundred words.
func termDensityScore(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	terms := len(medicalTermPattern.FindAllString(text, -1))
	return common.Clamp01(float64(terms) / float64(words) * 5)
}

// completenessScore is the fraction of components resolvable in the
// knowledge graph, neutral at 0.5 when nothing was extracted.
func (s *scorer) completenessScore(components []extractor.ClinicalComponent) float64 {
	if len(components) == 0 {
		return 0.5
	}
	resolved := 0
	for _, component := range components {
		result := s.graph.Query(component.Value, knowledge.QueryOptions{MaxDepth: 1})
		if len(result.Concepts) > 0 {
			resolved++
		}
	}
	return common.Clamp01(float64(resolved) / float64(len(components)))
}

func countBySeverity(issues []ValidationIssue) (critical, major, minor int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			critical++
		case SeverityMajor:
			major++
		case SeverityMinor:
			minor++
		}
	}
	return critical, major, minor
}

// recommend builds fixed-template recommendations from the severity buckets.
func recommend(critical, major, minor int) []string {
	var recommendations []string
	if critical > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("resolve %d critical issue(s) before using this text clinically", critical))
	}
	if major > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("review %d major issue(s) flagged for correction", major))
	}
	if minor > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("consider %d minor improvement(s)", minor))
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "no corrections required")
	}
	return recommendations
}

// ============================================================================
// Quick Confidence
// ============================================================================

// QuickConfidence computes a three-term heuristic: text length, medical-term
// density, and a multi-sentence bonus. No validation pass runs.
func (s *scorer) QuickConfidence(ctx context.Context, text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	key := cache.Key("quick-confidence", text)
	var cached float64
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		prometheus.RecordCacheAccess(s.metrics, "quick_score", true)
		return cached
	}
	prometheus.RecordCacheAccess(s.metrics, "quick_score", false)

	lengthTerm := float64(len(text)) / 500.0
	if lengthTerm > 0.4 {
		lengthTerm = 0.4
	}
	densityTerm := termDensityScore(text) * 0.4

	sentenceTerm := 0.0
	if sentences := sentenceSplit.Split(text, -1); countNonEmpty(sentences) >= 2 {
		sentenceTerm = 0.2
	}

	score := common.Clamp01(lengthTerm + densityTerm + sentenceTerm)
	if err := s.cache.Set(ctx, key, score, s.quickTTL); err != nil {
		s.logger.Warn("failed to cache quick confidence", logging.Err(err))
	}
	return score
}

func countNonEmpty(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

//Personal.AI order the ending
