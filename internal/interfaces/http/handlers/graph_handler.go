package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// GraphHandler serves the knowledge graph endpoints.
type GraphHandler struct {
	graph   knowledge.Graph
	metrics *prometheus.AppMetrics
}

// NewGraphHandler builds the handler over the knowledge graph. A nil metrics
// disables the size gauges.
func NewGraphHandler(graph knowledge.Graph, metrics *prometheus.AppMetrics) *GraphHandler {
	h := &GraphHandler{graph: graph, metrics: metrics}
	h.syncGauges()
	return h
}

// syncGauges republishes the per-domain and per-type size gauges from a
// whole-graph snapshot, so upserts never double count.
func (h *GraphHandler) syncGauges() {
	if h.metrics == nil {
		return
	}
	stats := h.graph.Stats()
	for domain, n := range stats.ConceptsByDomain {
		h.metrics.GraphConceptsTotal.WithLabelValues(string(domain)).Set(float64(n))
	}
	for relType, n := range stats.RelationshipsByType {
		h.metrics.GraphRelationshipsTotal.WithLabelValues(string(relType)).Set(float64(n))
	}
}

// AddConcept handles POST /graph/concepts.
func (h *GraphHandler) AddConcept(c *gin.Context) {
	var concept knowledge.MedicalConcept
	if !bindJSON(c, &concept) {
		return
	}
	added, err := h.graph.AddConcept(concept)
	if err != nil {
		respondError(c, err)
		return
	}
	h.syncGauges()
	c.JSON(http.StatusCreated, added)
}

// AddRelationship handles POST /graph/relationships.
func (h *GraphHandler) AddRelationship(c *gin.Context) {
	var rel knowledge.MedicalRelationship
	if !bindJSON(c, &rel) {
		return
	}
	added, err := h.graph.AddRelationship(rel)
	if err != nil {
		respondError(c, err)
		return
	}
	h.syncGauges()
	c.JSON(http.StatusCreated, added)
}

// ListConcepts handles GET /graph/concepts.
func (h *GraphHandler) ListConcepts(c *gin.Context) {
	concepts := h.graph.Concepts()
	c.JSON(http.StatusOK, gin.H{"concepts": concepts, "count": len(concepts)})
}

// Query handles GET /graph/query?concept=&depth=&pathways=.
func (h *GraphHandler) Query(c *gin.Context) {
	concept := c.Query("concept")
	if concept == "" {
		respondError(c, errors.InvalidParam("query parameter 'concept' is required"))
		return
	}

	opts := knowledge.QueryOptions{MaxDepth: 1}
	if raw := c.Query("depth"); raw != "" {
		depth, err := strconv.Atoi(raw)
		if err != nil || depth < 1 {
			respondError(c, errors.InvalidParam("query parameter 'depth' must be a positive integer"))
			return
		}
		opts.MaxDepth = depth
	}
	opts.IncludePathways = c.Query("pathways") == "true"
	if domain := c.Query("domain"); domain != "" {
		opts.Domains = []knowledge.MedicalDomain{knowledge.MedicalDomain(domain)}
	}

	c.JSON(http.StatusOK, h.graph.Query(concept, opts))
}

// Similarity handles GET /graph/similarity?a=&b=.
func (h *GraphHandler) Similarity(c *gin.Context) {
	a, b := c.Query("a"), c.Query("b")
	if a == "" || b == "" {
		respondError(c, errors.InvalidParam("query parameters 'a' and 'b' are required"))
		return
	}
	score, err := h.graph.Similarity(a, b)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

// Clusters handles GET /graph/clusters?domain=.
func (h *GraphHandler) Clusters(c *gin.Context) {
	domain := knowledge.MedicalDomain(c.Query("domain"))
	clusters := h.graph.Clusters(domain)
	c.JSON(http.StatusOK, gin.H{"clusters": clusters, "count": len(clusters)})
}

// Stats handles GET /graph/stats.
func (h *GraphHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.graph.Stats())
}

//Personal.AI order the ending
