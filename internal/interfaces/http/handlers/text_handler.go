package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MedText-Intelligence/internal/application/analysis"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/corrections"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// TextHandler serves the correction endpoints.
type TextHandler struct {
	service analysis.Service
}

// NewTextHandler builds the handler over the analysis service.
func NewTextHandler(service analysis.Service) *TextHandler {
	return &TextHandler{service: service}
}

// CorrectRequest is the body of POST /text/corrections.
type CorrectRequest struct {
	Text       string   `json:"text"`
	Categories []string `json:"categories,omitempty"`
}

// CorrectResponse returns the corrected text and the categories applied.
type CorrectResponse struct {
	CorrectedText string   `json:"corrected_text"`
	Categories    []string `json:"categories"`
	Changed       bool     `json:"changed"`
}

// Correct handles POST /text/corrections.
func (h *TextHandler) Correct(c *gin.Context) {
	var req CorrectRequest
	if !bindJSON(c, &req) {
		return
	}

	categories := make([]corrections.Category, 0, len(req.Categories))
	for _, name := range req.Categories {
		category := corrections.Category(name)
		if !category.IsValid() {
			respondError(c, errors.New(errors.ErrCodeCategoryUnknown,
				"unknown correction category").WithDetail("category="+name))
			return
		}
		categories = append(categories, category)
	}

	corrected, err := h.service.CorrectText(c.Request.Context(), req.Text, categories...)
	if err != nil {
		respondError(c, err)
		return
	}

	applied := req.Categories
	if len(applied) == 0 {
		applied = make([]string, 0, len(corrections.AllCategories))
		for _, category := range corrections.AllCategories {
			applied = append(applied, string(category))
		}
	}
	c.JSON(http.StatusOK, CorrectResponse{
		CorrectedText: corrected,
		Categories:    applied,
		Changed:       corrected != req.Text,
	})
}

// TablesResponse describes the loaded rule tables.
type TablesResponse struct {
	Categories map[string]int `json:"categories"`
	TotalRules int            `json:"total_rules"`
}

// Tables handles GET /corrections/tables.
func (h *TextHandler) Tables(c *gin.Context) {
	counts := h.service.RuleTables()
	resp := TablesResponse{Categories: make(map[string]int, len(counts))}
	for category, n := range counts {
		resp.Categories[string(category)] = n
		resp.TotalRules += n
	}
	c.JSON(http.StatusOK, resp)
}

//Personal.AI order the ending
