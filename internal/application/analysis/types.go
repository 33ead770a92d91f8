package analysis

import (
	"time"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/corrections"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/reasoning"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/scoring"
)

// Options controls one analysis run. The zero value runs every correction
// category, default reasoning thresholds, depth-2 graph enrichment, and no
// validation pass.
type Options struct {
	// Categories restricts the correction pass. Empty means all categories.
	Categories []corrections.Category `json:"categories,omitempty"`

	// AustralianFocus enables the Australian compliance assessments in the
	// reasoning and validation stages.
	AustralianFocus bool `json:"australian_focus"`

	// MinConfidence overrides the reasoning retention threshold when > 0.
	MinConfidence float64 `json:"min_confidence,omitempty"`

	// GraphDepth bounds the enrichment traversal. Zero selects the default.
	GraphDepth int `json:"graph_depth,omitempty"`

	// IncludeValidation attaches a full ValidationResult to the report. A
	// validation failure degrades to a report without one.
	IncludeValidation bool `json:"include_validation"`
}

// ConceptContext is one graph enrichment: the extracted component value and
// what the knowledge graph knows about it.
type ConceptContext struct {
	Component string                `json:"component"`
	Result    knowledge.QueryResult `json:"result"`
}

// Report is the assembled output of a full analysis run. Cached reports are
// returned as-is, so the ID and timestamp identify the run that produced the
// content, not the request that fetched it.
type Report struct {
	ID              string                               `json:"id"`
	OriginalText    string                               `json:"original_text"`
	CorrectedText   string                               `json:"corrected_text"`
	Components      []extractor.ClinicalComponent        `json:"components"`
	Patterns        []reasoning.ClinicalReasoningPattern `json:"patterns"`
	GraphContext    []ConceptContext                     `json:"graph_context"`
	Validation      *scoring.ValidationResult            `json:"validation,omitempty"`
	QuickConfidence float64                              `json:"quick_confidence"`
	GeneratedAt     time.Time                            `json:"generated_at"`
	Elapsed         time.Duration                        `json:"elapsed"`
}

//Personal.AI order the ending
