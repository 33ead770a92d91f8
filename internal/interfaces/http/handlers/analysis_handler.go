package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MedText-Intelligence/internal/application/analysis"
	"github.com/turtacn/MedText-Intelligence/internal/application/jobs"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/scoring"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// AnalysisHandler serves the extraction, reasoning, validation, and async
// job endpoints.
type AnalysisHandler struct {
	service analysis.Service
	queue   jobs.Queue
}

// NewAnalysisHandler builds the handler. The queue may be nil, in which case
// the async endpoints report service unavailable.
func NewAnalysisHandler(service analysis.Service, queue jobs.Queue) *AnalysisHandler {
	return &AnalysisHandler{service: service, queue: queue}
}

// TextRequest carries a single text payload.
type TextRequest struct {
	Text string `json:"text"`
}

// Components handles POST /analysis/components.
func (h *AnalysisHandler) Components(c *gin.Context) {
	var req TextRequest
	if !bindJSON(c, &req) {
		return
	}
	components, err := h.service.ExtractComponents(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"components": components, "count": len(components)})
}

// AnalyzeRequest is the body of POST /analysis/reasoning.
type AnalyzeRequest struct {
	Text    string           `json:"text"`
	Options analysis.Options `json:"options"`
}

// Analyze handles POST /analysis/reasoning.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.service.AnalyzeClinicalReasoning(c.Request.Context(), req.Text, req.Options)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ValidateRequest is the body of POST /analysis/validate.
type ValidateRequest struct {
	Text   string         `json:"text"`
	Config scoring.Config `json:"config"`
}

// Validate handles POST /analysis/validate.
func (h *AnalysisHandler) Validate(c *gin.Context) {
	var req ValidateRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.ValidateText(c.Request.Context(), req.Text, req.Config)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// QuickConfidence handles GET /analysis/confidence?text=.
func (h *AnalysisHandler) QuickConfidence(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		respondError(c, errors.New(errors.ErrCodeTextEmpty, "query parameter 'text' is required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"confidence": h.service.QuickConfidence(c.Request.Context(), text),
	})
}

// SubmitJob handles POST /analysis/jobs.
func (h *AnalysisHandler) SubmitJob(c *gin.Context) {
	if h.queue == nil {
		respondError(c, errors.New(errors.ErrCodeServiceUnavailable, "async analysis is disabled"))
		return
	}
	var req AnalyzeRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.queue.Submit(c.Request.Context(), req.Text, req.Options)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, job)
}

// GetJob handles GET /analysis/jobs/:id.
func (h *AnalysisHandler) GetJob(c *gin.Context) {
	if h.queue == nil {
		respondError(c, errors.New(errors.ErrCodeServiceUnavailable, "async analysis is disabled"))
		return
	}
	job, err := h.queue.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

//Personal.AI order the ending
