// Package reasoning detects higher-level clinical reasoning patterns over
// extracted components and raw text: it classifies the reasoning type,
// assembles an ordered workflow of clinical actions, and derives causal
// relationships between clinical entities.
package reasoning

import (
	"regexp"
	"sort"
	"strings"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/common"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
)

// MinConfidenceThreshold gates pattern retention: only patterns scoring at or
// above it survive detection. Declared once; every confidence gate in the
// reasoning layer reuses it.
const MinConfidenceThreshold = 0.7

// longMatchLength is the span size above which a match earns a confidence
// bonus.
const longMatchLength = 20

// Detector finds clinical reasoning patterns in analysed text.
type Detector interface {
	// DetectPatterns returns every reasoning pattern whose confidence clears
	// the retention threshold, in type-declaration order. Empty text or no
	// matches yield an empty slice, never an error.
	DetectPatterns(text string, components []extractor.ClinicalComponent, opts Options) []ClinicalReasoningPattern
}

type patternDetector struct {
	logger logging.Logger
}

// NewDetector builds the template-driven reasoning detector.
func NewDetector(log logging.Logger) Detector {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &patternDetector{logger: log}
}

func (d *patternDetector) DetectPatterns(text string, components []extractor.ClinicalComponent,
	opts Options) []ClinicalReasoningPattern {

	if strings.TrimSpace(text) == "" {
		return []ClinicalReasoningPattern{}
	}

	threshold := MinConfidenceThreshold
	if opts.MinConfidence > 0 {
		threshold = opts.MinConfidence
	}

	patterns := make([]ClinicalReasoningPattern, 0, 2)
	for _, reasoningType := range AllReasoningTypes {
		matches := collectMatches(reasoningType, text)
		if len(matches) == 0 {
			continue
		}

		pattern := d.buildPattern(reasoningType, text, components, matches, opts)
		if pattern.Confidence < threshold {
			continue
		}
		patterns = append(patterns, pattern)
	}

	d.logger.Debug("reasoning patterns detected",
		logging.Int("count", len(patterns)),
		logging.Int("components", len(components)))
	return patterns
}

// collectMatches returns the matched spans of every template of the given
// type, in template order.
func collectMatches(reasoningType ReasoningType, text string) []string {
	var matches []string
	for _, re := range reasoningTemplates[reasoningType] {
		for _, m := range re.FindAllString(text, -1) {
			matches = append(matches, m)
		}
	}
	return matches
}

func (d *patternDetector) buildPattern(reasoningType ReasoningType, text string,
	components []extractor.ClinicalComponent, matches []string, opts Options) ClinicalReasoningPattern {

	relevant := filterComponents(reasoningType, components)
	relationships := BuildRelationships(relevant, text)

	pattern := ClinicalReasoningPattern{
		Type:            reasoningType,
		Confidence:      scorePattern(reasoningType, matches),
		Components:      relevant,
		Workflow:        extractWorkflow(text),
		Relationships:   relationships,
		ClinicalContext: DeriveContext(text, relevant, relationships),
	}
	if opts.AustralianFocus {
		pattern.AustralianCompliance = assessAustralianCompliance(text)
	}
	return pattern
}

// scorePattern computes 0.7 base + type modifier + 0.05 for a long first
// match + 0.1 when multiple templates matched, clamped to [0,1].
func scorePattern(reasoningType ReasoningType, matches []string) float64 {
	confidence := MinConfidenceThreshold + typeConfidenceModifier[reasoningType]
	if len(matches) > 0 && len(matches[0]) > longMatchLength {
		confidence += 0.05
	}
	if len(matches) > 1 {
		confidence += 0.1
	}
	return common.Clamp01(confidence)
}

// filterComponents keeps only the categories in the type's allowlist,
// preserving input order.
func filterComponents(reasoningType ReasoningType,
	components []extractor.ClinicalComponent) []extractor.ClinicalComponent {

	allowed := make(map[extractor.ComponentCategory]bool)
	for _, cat := range typeComponentAllowlist[reasoningType] {
		allowed[cat] = true
	}

	relevant := make([]extractor.ClinicalComponent, 0, len(components))
	for _, c := range components {
		if allowed[c.Category] {
			relevant = append(relevant, c)
		}
	}
	return relevant
}

// extractWorkflow scans for sequencing connectives and assigns increasing
// sequence numbers in text-encounter order.
func extractWorkflow(text string) []WorkflowStep {
	type hit struct {
		offset int
		action WorkflowAction
		match  string
	}

	var hits []hit
	for _, connective := range workflowConnectives {
		for _, loc := range connective.re.FindAllStringIndex(text, -1) {
			hits = append(hits, hit{
				offset: loc[0],
				action: connective.action,
				match:  text[loc[0]:loc[1]],
			})
		}
	}
	if len(hits) == 0 {
		return nil
	}

	// Encounter order, with connective-table order breaking offset ties.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].offset < hits[j].offset })

	steps := make([]WorkflowStep, 0, len(hits))
	var prevAction WorkflowAction
	for _, h := range hits {
		// Collapse adjacent repeats of the same action.
		if h.action == prevAction {
			continue
		}
		step := WorkflowStep{
			Sequence:      len(steps) + 1,
			Action:        h.action,
			Rationale:     "Connective found: " + h.match,
			EvidenceLevel: "textual",
		}
		if len(steps) > 0 {
			step.Dependencies = []string{string(steps[len(steps)-1].Action)}
		}
		steps = append(steps, step)
		prevAction = h.action
	}
	return steps
}

// guidelinePattern finds references to Australian guideline bodies.
var guidelinePattern = regexp.MustCompile(
	`(?i)\b(?:CSANZ|NHFA|Heart Foundation|Therapeutic Guidelines|eTG|PBS|MBS)\b`)

// usSpellingPattern flags common US spellings that should have been rewritten
// to Australian forms upstream.
var usSpellingPattern = regexp.MustCompile(
	`(?i)\b(?:furosemide|acetaminophen|epinephrine|anemia|edema|hemoglobin)\b`)

// assessAustralianCompliance annotates a pattern with Australian-practice
// signals found in the text.
func assessAustralianCompliance(text string) *AustralianCompliance {
	mentions := guidelinePattern.FindAllString(text, -1)
	compliance := &AustralianCompliance{
		GuidelineMentions:  mentions,
		TerminologyCorrect: !usSpellingPattern.MatchString(text),
	}
	for _, m := range mentions {
		if strings.EqualFold(m, "PBS") {
			compliance.PBSRelevant = true
		}
	}
	return compliance
}

//Personal.AI order the ending
