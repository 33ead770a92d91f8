// Package http wires the gin route tree and the HTTP server for the
// analysis API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MedText-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/MedText-Intelligence/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies for the
// complete route tree.
type RouterConfig struct {
	TextHandler     *handlers.TextHandler
	AnalysisHandler *handlers.AnalysisHandler
	GraphHandler    *handlers.GraphHandler
	HealthHandler   *handlers.HealthHandler

	Logger           logging.Logger
	Metrics          *prometheus.AppMetrics
	MetricsCollector prometheus.MetricsCollector

	Mode           string // gin mode: "debug" | "release" | "test"
	AllowedOrigins []string
}

// NewRouter constructs the complete route tree as an http.Handler.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}))
	r.Use(middleware.RequestLogging(cfg.Logger, cfg.Metrics))

	// Ops surface, outside the API group.
	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsCollector.Handler()))
	}

	api := r.Group("/api/v1")

	if h := cfg.TextHandler; h != nil {
		api.POST("/text/corrections", h.Correct)
		api.GET("/corrections/tables", h.Tables)
	}

	if h := cfg.AnalysisHandler; h != nil {
		analysis := api.Group("/analysis")
		analysis.POST("/components", h.Components)
		analysis.POST("/reasoning", h.Analyze)
		analysis.POST("/validate", h.Validate)
		analysis.GET("/confidence", h.QuickConfidence)
		analysis.POST("/jobs", h.SubmitJob)
		analysis.GET("/jobs/:id", h.GetJob)
	}

	if h := cfg.GraphHandler; h != nil {
		graph := api.Group("/graph")
		graph.GET("/concepts", h.ListConcepts)
		graph.POST("/concepts", h.AddConcept)
		graph.POST("/relationships", h.AddRelationship)
		graph.GET("/query", h.Query)
		graph.GET("/similarity", h.Similarity)
		graph.GET("/clusters", h.Clusters)
		graph.GET("/stats", h.Stats)
	}

	return r
}

//Personal.AI order the ending
