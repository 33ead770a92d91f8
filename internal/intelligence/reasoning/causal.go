package reasoning

import (
	"regexp"
	"strings"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
)

// ============================================================================
// Causal Relationship Builder
// ============================================================================

// connectiveStrength is the fixed strength assigned to relationships found by
// live connective scanning, lower than curated static-table entries.
const connectiveStrength = 0.7

// staticCausal is the hand-authored lookup of known cause-effect pairs,
// keyed by a lowercase term found in a component's value.
var staticCausal = map[string]CausalRelationship{
	"stenosis": {
		Cause:             "valve stenosis",
		Effect:            "elevated pressure gradient",
		Strength:          0.9,
		Type:              CausalDirectCause,
		ClinicalRelevance: "gradient severity guides intervention timing",
	},
	"regurgitation": {
		Cause:             "valve regurgitation",
		Effect:            "volume overload",
		Strength:          0.85,
		Type:              CausalDirectCause,
		ClinicalRelevance: "chronic volume overload drives ventricular dilatation",
	},
	"hypertension": {
		Cause:             "hypertension",
		Effect:            "left ventricular hypertrophy",
		Strength:          0.8,
		Type:              CausalRiskFactor,
		ClinicalRelevance: "sustained afterload elevation remodels the ventricle",
	},
	"atrial fibrillation": {
		Cause:             "atrial fibrillation",
		Effect:            "thromboembolic stroke",
		Strength:          0.85,
		Type:              CausalRiskFactor,
		ClinicalRelevance: "stasis in the left atrial appendage promotes thrombus",
	},
	"smoking": {
		Cause:             "smoking",
		Effect:            "coronary artery disease",
		Strength:          0.8,
		Type:              CausalRiskFactor,
		ClinicalRelevance: "dose-dependent atherosclerotic risk",
	},
	"myocardial infarction": {
		Cause:             "myocardial infarction",
		Effect:            "reduced ejection fraction",
		Strength:          0.85,
		Type:              CausalConsequence,
		ClinicalRelevance: "infarcted myocardium impairs systolic function",
	},
	"anticoagulation": {
		Cause:             "anticoagulation",
		Effect:            "reduced stroke risk",
		Strength:          0.85,
		Type:              CausalTherapeuticEffect,
		ClinicalRelevance: "stroke prevention in atrial fibrillation",
	},
	"diuretic": {
		Cause:             "diuretic therapy",
		Effect:            "reduced congestion",
		Strength:          0.8,
		Type:              CausalTherapeuticEffect,
		ClinicalRelevance: "symptom relief in fluid overload",
	},
}

// staticCausalTerms fixes the lookup order so repeated analyses of the same
// text produce identical relationship lists.
var staticCausalTerms = []string{
	"stenosis",
	"regurgitation",
	"hypertension",
	"atrial fibrillation",
	"smoking",
	"myocardial infarction",
	"anticoagulation",
	"diuretic",
}

// causalConnectives are the live connective templates scanned over raw text.
// Group 1 captures the cause, group 2 the effect, except dueToPattern where
// the roles are reversed.
var (
	causesPattern = regexp.MustCompile(
		`(?i)([a-z][a-z \-]{2,40}?)\s+(?:causes?|leads? to|results? in)\s+([a-z][a-z \-]{2,40})`)
	dueToPattern = regexp.MustCompile(
		`(?i)([a-z][a-z \-]{2,40}?)\s+(?:due to|because of|secondary to)\s+([a-z][a-z \-]{2,40})`)
	riskPattern = regexp.MustCompile(
		`(?i)([a-z][a-z \-]{2,40}?)\s+increases?\s+(?:the\s+)?risk\s+of\s+([a-z][a-z \-]{2,40})`)
)

// BuildRelationships derives causal relationships from two sources,
// concatenated without deduplication: static lookups keyed by component
// values, and live connective scanning over the raw text.
func BuildRelationships(components []extractor.ClinicalComponent, text string) []CausalRelationship {
	relationships := make([]CausalRelationship, 0, 4)

	// Static lookups: each component whose value mentions a known term
	// contributes that term's curated relationship.
	for _, component := range components {
		lower := strings.ToLower(component.Value)
		for _, term := range staticCausalTerms {
			if strings.Contains(lower, term) {
				entry := staticCausal[term]
				entry.Evidence = []string{"Component matched: " + component.Value}
				relationships = append(relationships, entry)
			}
		}
	}

	// Live connective scanning.
	for _, m := range causesPattern.FindAllStringSubmatch(text, -1) {
		relationships = append(relationships, connectiveRelationship(m[1], m[2], CausalDirectCause, m[0]))
	}
	for _, m := range dueToPattern.FindAllStringSubmatch(text, -1) {
		// "X due to Y" states Y as the cause of X.
		relationships = append(relationships, connectiveRelationship(m[2], m[1], CausalDirectCause, m[0]))
	}
	for _, m := range riskPattern.FindAllStringSubmatch(text, -1) {
		relationships = append(relationships, connectiveRelationship(m[1], m[2], CausalRiskFactor, m[0]))
	}

	return relationships
}

// connectiveRelationship lowercases cause and effect so graph lookups keyed
// on them are case-stable; the evidence string keeps the original casing.
func connectiveRelationship(cause, effect string, relType CausalType, match string) CausalRelationship {
	return CausalRelationship{
		Cause:    strings.ToLower(strings.TrimSpace(cause)),
		Effect:   strings.ToLower(strings.TrimSpace(effect)),
		Strength: connectiveStrength,
		Type:     relType,
		Evidence: []string{"Pattern detected: " + strings.TrimSpace(match)},
	}
}

//Personal.AI order the ending
