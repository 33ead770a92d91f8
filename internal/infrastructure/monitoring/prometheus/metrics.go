package prometheus

import (
	"fmt"
	"time"
)

// AppMetrics holds every metric the platform emits, grouped by layer.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Correction layer
	CorrectionsAppliedTotal CounterVec
	CorrectionDuration      HistogramVec
	CorrectionRulesLoaded   GaugeVec

	// Extraction layer
	ComponentsExtractedTotal CounterVec
	ExtractionDuration       HistogramVec

	// Reasoning layer
	ReasoningPatternsTotal CounterVec
	ReasoningDuration      HistogramVec

	// Knowledge graph layer
	GraphConceptsTotal      GaugeVec
	GraphRelationshipsTotal GaugeVec
	GraphQueryDuration      HistogramVec

	// Scoring layer
	ValidationsTotal     CounterVec
	ValidationDuration   HistogramVec
	ValidationIssueTotal CounterVec
	ConfidenceScore      HistogramVec

	// Job layer
	JobsTotal      CounterVec
	JobDuration    HistogramVec
	JobQueueDepth  GaugeVec
	JobActiveCount GaugeVec

	// Infrastructure
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec

	// System health
	HealthCheckStatus GaugeVec
	ErrorsTotal       CounterVec
}

// Default buckets tuned for an in-process text pipeline: most operations
// complete in well under a second.
var (
	DefaultHTTPDurationBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultAnalysisDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	DefaultConfidenceBuckets       = []float64{0, .1, .2, .3, .4, .5, .6, .7, .8, .9, 1}
)

// NewAppMetrics registers all metrics and returns the populated struct.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	// HTTP
	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method", "path")

	// Corrections
	m.CorrectionsAppliedTotal = collector.RegisterCounter("corrections_applied_total", "Correction rules applied", "category")
	m.CorrectionDuration = collector.RegisterHistogram("correction_duration_seconds", "Correction pass duration", DefaultAnalysisDurationBuckets, "category")
	m.CorrectionRulesLoaded = collector.RegisterGauge("correction_rules_loaded", "Correction rules currently loaded", "category")

	// Extraction
	m.ComponentsExtractedTotal = collector.RegisterCounter("components_extracted_total", "Clinical components extracted", "category", "significance")
	m.ExtractionDuration = collector.RegisterHistogram("extraction_duration_seconds", "Component extraction duration", DefaultAnalysisDurationBuckets)

	// Reasoning
	m.ReasoningPatternsTotal = collector.RegisterCounter("reasoning_patterns_total", "Reasoning patterns detected", "type")
	m.ReasoningDuration = collector.RegisterHistogram("reasoning_duration_seconds", "Reasoning detection duration", DefaultAnalysisDurationBuckets)

	// Knowledge graph
	m.GraphConceptsTotal = collector.RegisterGauge("graph_concepts_total", "Concepts in the knowledge graph", "domain")
	m.GraphRelationshipsTotal = collector.RegisterGauge("graph_relationships_total", "Relationships in the knowledge graph", "type")
	m.GraphQueryDuration = collector.RegisterHistogram("graph_query_duration_seconds", "Knowledge graph query duration", DefaultAnalysisDurationBuckets, "operation")

	// Scoring
	m.ValidationsTotal = collector.RegisterCounter("validations_total", "Validation runs", "valid")
	m.ValidationDuration = collector.RegisterHistogram("validation_duration_seconds", "Validation duration", DefaultAnalysisDurationBuckets)
	m.ValidationIssueTotal = collector.RegisterCounter("validation_issues_total", "Validation issues raised", "type", "severity")
	m.ConfidenceScore = collector.RegisterHistogram("confidence_score", "Overall confidence score distribution", DefaultConfidenceBuckets)

	// Jobs
	m.JobsTotal = collector.RegisterCounter("jobs_total", "Analysis jobs processed", "status")
	m.JobDuration = collector.RegisterHistogram("job_duration_seconds", "Analysis job duration", DefaultAnalysisDurationBuckets)
	m.JobQueueDepth = collector.RegisterGauge("job_queue_depth", "Queued analysis jobs", "queue")
	m.JobActiveCount = collector.RegisterGauge("job_active_workers", "Workers currently running a job", "queue")

	// Infrastructure
	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Cache misses", "cache")

	// System health
	m.HealthCheckStatus = collector.RegisterGauge("health_check_status", "Health check status (1=up, 0=down)", "component")
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Total errors", "component", "error_type")

	return m
}

// Helpers

func RecordHTTPRequest(metrics *AppMetrics, method, path string, statusCode int, duration time.Duration) {
	if metrics == nil {
		return
	}
	status := fmt.Sprintf("%d", statusCode)
	metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordCacheAccess(metrics *AppMetrics, cache string, hit bool) {
	if metrics == nil {
		return
	}
	if hit {
		metrics.CacheHitsTotal.WithLabelValues(cache).Inc()
	} else {
		metrics.CacheMissesTotal.WithLabelValues(cache).Inc()
	}
}

func RecordValidation(metrics *AppMetrics, valid bool, overallConfidence float64, duration time.Duration) {
	if metrics == nil {
		return
	}
	metrics.ValidationsTotal.WithLabelValues(fmt.Sprintf("%t", valid)).Inc()
	metrics.ValidationDuration.WithLabelValues().Observe(duration.Seconds())
	metrics.ConfidenceScore.WithLabelValues().Observe(overallConfidence)
}

func RecordError(metrics *AppMetrics, component, errorType string) {
	if metrics == nil {
		return
	}
	metrics.ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

//Personal.AI order the ending
