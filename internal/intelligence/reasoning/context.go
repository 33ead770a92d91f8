package reasoning

import (
	"strconv"
	"strings"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
)

// ============================================================================
// Clinical Context Derivation
// ============================================================================

// DeriveContext computes urgency, complexity, and patient factors from the
// raw text and the analysis products. Shared by the per-pattern builder and
// the top-level analyzer.
func DeriveContext(text string, components []extractor.ClinicalComponent,
	relationships []CausalRelationship) ClinicalContext {

	return ClinicalContext{
		Urgency:        deriveUrgency(text),
		Complexity:     deriveComplexity(len(components) + len(relationships)),
		PatientFactors: derivePatientFactors(text),
	}
}

// deriveUrgency walks the keyword tiers highest-first; the first tier with
// any match wins, defaulting to routine.
func deriveUrgency(text string) Urgency {
	lower := strings.ToLower(text)
	for _, tier := range urgencyKeywords {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return tier.level
			}
		}
	}
	return UrgencyRoutine
}

// deriveComplexity buckets the combined component and relationship count.
func deriveComplexity(count int) Complexity {
	switch {
	case count < 5:
		return ComplexitySimple
	case count <= 10:
		return ComplexityModerate
	case count <= 15:
		return ComplexityComplex
	default:
		return ComplexityHighlyComplex
	}
}

// derivePatientFactors extracts the patient's age when stated, flagging
// advanced age as a negative-impact factor.
func derivePatientFactors(text string) []PatientFactor {
	m := agePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	ageToken := m[1]
	if ageToken == "" {
		ageToken = m[2]
	}
	age, err := strconv.Atoi(ageToken)
	if err != nil {
		return nil
	}

	impact := "neutral"
	if age > elderlyAgeThreshold {
		impact = "negative"
	}
	return []PatientFactor{{
		Factor: "age",
		Value:  ageToken,
		Impact: impact,
	}}
}

//Personal.AI order the ending
