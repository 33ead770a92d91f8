// Package extractor pulls typed clinical components out of free text via
// per-category regex libraries, tagging each match with a position span, a
// heuristic confidence score, and a clinical significance level.
package extractor

import (
	"sort"
	"strings"
	"unicode"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/common"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
)

// baseConfidence is the floor every match starts from before bonuses.
const baseConfidence = 0.6

// Extractor extracts clinical components from raw text.
type Extractor interface {
	// Extract returns one component per pattern occurrence, deduplicated by
	// (value, category, start offset) and sorted by position. Empty or
	// non-medical text yields an empty slice, never an error.
	Extract(text string) []ClinicalComponent
}

type patternExtractor struct {
	logger logging.Logger
}

// NewExtractor builds the regex-library extractor.
func NewExtractor(log logging.Logger) Extractor {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &patternExtractor{logger: log}
}

func (e *patternExtractor) Extract(text string) []ClinicalComponent {
	if strings.TrimSpace(text) == "" {
		return []ClinicalComponent{}
	}

	var components []ClinicalComponent
	for _, category := range AllCategories {
		for _, re := range categoryPatterns[category] {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				value := strings.TrimSpace(text[loc[0]:loc[1]])
				if value == "" {
					continue
				}
				components = append(components, ClinicalComponent{
					Category:             category,
					Value:                value,
					Confidence:           scoreMatch(category, value),
					Position:             Position{Start: loc[0], End: loc[1]},
					ClinicalSignificance: classifySignificance(category, value),
				})
			}
		}
	}

	components = dedupe(components)
	sort.SliceStable(components, func(i, j int) bool {
		if components[i].Position.Start != components[j].Position.Start {
			return components[i].Position.Start < components[j].Position.Start
		}
		return components[i].Category < components[j].Category
	})

	e.logger.Debug("components extracted",
		logging.Int("count", len(components)),
		logging.Int("text_length", len(text)))
	return components
}

// scoreMatch computes the heuristic confidence: 0.6 base, plus the category
// bonus, plus 0.05 for spans over 10 characters, 0.1 for a digit, and 0.1 for
// a recognised unit token.
func scoreMatch(category ComponentCategory, value string) float64 {
	confidence := baseConfidence + categoryConfidenceBonus[category]
	if len(value) > 10 {
		confidence += 0.05
	}
	if containsDigit(value) {
		confidence += 0.1
	}
	if containsUnit(value) {
		confidence += 0.1
	}
	return common.Clamp01(confidence)
}

// classifySignificance applies the critical keyword override first, then the
// per-category default.
func classifySignificance(category ComponentCategory, value string) Significance {
	lower := strings.ToLower(value)
	for _, kw := range criticalKeywords {
		if strings.Contains(lower, kw) {
			return SignificanceCritical
		}
	}
	if sig, ok := categoryDefaultSignificance[category]; ok {
		return sig
	}
	return SignificanceInformational
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsUnit(s string) bool {
	lower := strings.ToLower(s)
	for _, unit := range unitTokens {
		if strings.Contains(lower, unit) {
			return true
		}
	}
	return false
}

// dedupe drops components sharing (value, category, start offset); repeated
// mentions at different positions survive.
func dedupe(components []ClinicalComponent) []ClinicalComponent {
	type key struct {
		value    string
		category ComponentCategory
		start    int
	}
	seen := make(map[key]bool, len(components))
	out := components[:0]
	for _, c := range components {
		k := key{value: c.Value, category: c.Category, start: c.Position.Start}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

//Personal.AI order the ending
