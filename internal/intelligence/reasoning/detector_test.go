package reasoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
)

func findPattern(patterns []ClinicalReasoningPattern, t ReasoningType) *ClinicalReasoningPattern {
	for i := range patterns {
		if patterns[i].Type == t {
			return &patterns[i]
		}
	}
	return nil
}

func TestDetectPatternsEmptyText(t *testing.T) {
	d := NewDetector(nil)
	assert.Empty(t, d.DetectPatterns("", nil, Options{}))
}

func TestDetectPatternsNoTriggers(t *testing.T) {
	d := NewDetector(nil)
	assert.Empty(t, d.DetectPatterns("the meeting ran long and nothing was decided", nil, Options{}))
}

func TestDetectDiagnosticWorkup(t *testing.T) {
	d := NewDetector(nil)
	e := extractor.NewExtractor(nil)

	text := "Ordered an echo and troponin to exclude acute coronary syndrome."
	patterns := d.DetectPatterns(text, e.Extract(text), Options{})

	p := findPattern(patterns, ReasoningDiagnosticWorkup)
	require.NotNil(t, p)
	assert.GreaterOrEqual(t, p.Confidence, MinConfidenceThreshold)
	assert.LessOrEqual(t, p.Confidence, 1.0)
}

func TestDetectMultipleMatchesRaiseConfidence(t *testing.T) {
	d := NewDetector(nil)

	single := d.DetectPatterns("smoking cessation discussed", nil, Options{})
	multiple := d.DetectPatterns(
		"smoking cessation discussed, advised on diet and exercise, cardiac rehabilitation arranged",
		nil, Options{})

	sp := findPattern(single, ReasoningLifestyleModification)
	mp := findPattern(multiple, ReasoningLifestyleModification)
	require.NotNil(t, sp)
	require.NotNil(t, mp)
	assert.Greater(t, mp.Confidence, sp.Confidence)
}

func TestDetectFiltersComponentsByAllowlist(t *testing.T) {
	d := NewDetector(nil)
	components := []extractor.ClinicalComponent{
		{Category: extractor.CategoryMedication, Value: "frusemide 40mg", Confidence: 0.9},
		{Category: extractor.CategorySymptom, Value: "chest pain", Confidence: 0.7},
	}

	patterns := d.DetectPatterns("dose adjustment of frusemide, monitor renal function", components, Options{})
	p := findPattern(patterns, ReasoningMedicationManagement)
	require.NotNil(t, p)

	for _, c := range p.Components {
		assert.NotEqual(t, extractor.CategorySymptom, c.Category,
			"symptoms are outside the medication-management allowlist")
	}
	require.Len(t, p.Components, 1)
	assert.Equal(t, "frusemide 40mg", p.Components[0].Value)
}

func TestWorkflowStepsFollowEncounterOrder(t *testing.T) {
	steps := extractWorkflow(
		"Initially assessed in clinic. Bloods taken and echo ordered. " +
			"Diagnosis confirmed as severe aortic stenosis. Commenced frusemide. " +
			"Will monitor symptoms and review in 3 months.")
	require.NotEmpty(t, steps)

	for i, step := range steps {
		assert.Equal(t, i+1, step.Sequence)
	}
	assert.Equal(t, ActionAssess, steps[0].Action)

	// Later steps carry a dependency on the preceding action.
	for _, step := range steps[1:] {
		assert.NotEmpty(t, step.Dependencies)
	}
}

func TestWorkflowTextualOrderNotClinicalOrder(t *testing.T) {
	// A monitor phrase appearing before a diagnose phrase is sequenced first;
	// sequence numbers reflect text order by contract.
	steps := extractWorkflow("monitoring continued. Diagnosis confirmed later.")
	require.GreaterOrEqual(t, len(steps), 2)
	assert.Equal(t, ActionMonitor, steps[0].Action)
	assert.Equal(t, ActionDiagnose, steps[1].Action)
}

func TestBuildRelationshipsStaticLookup(t *testing.T) {
	components := []extractor.ClinicalComponent{
		{Category: extractor.CategoryDiagnosis, Value: "severe aortic stenosis"},
	}
	relationships := BuildRelationships(components, "severe aortic stenosis noted")
	require.NotEmpty(t, relationships)

	assert.Equal(t, "valve stenosis", relationships[0].Cause)
	assert.Equal(t, 0.9, relationships[0].Strength)
	assert.Equal(t, CausalDirectCause, relationships[0].Type)
}

func TestBuildRelationshipsConnectives(t *testing.T) {
	relationships := BuildRelationships(nil,
		"hypertension leads to ventricular hypertrophy. Dyspnoea due to fluid overload. "+
			"Smoking increases the risk of coronary disease.")
	require.Len(t, relationships, 3)

	for _, rel := range relationships {
		assert.Equal(t, connectiveStrength, rel.Strength)
		require.Len(t, rel.Evidence, 1)
		assert.Contains(t, rel.Evidence[0], "Pattern detected: ")
	}

	// "X due to Y" reverses roles: Y is the cause.
	assert.Equal(t, "fluid overload", relationships[1].Cause)
	assert.Equal(t, "dyspnoea", relationships[1].Effect)

	assert.Equal(t, CausalRiskFactor, relationships[2].Type)
}

func TestBuildRelationshipsConcatenatesSources(t *testing.T) {
	components := []extractor.ClinicalComponent{
		{Category: extractor.CategoryDiagnosis, Value: "mitral stenosis"},
	}
	relationships := BuildRelationships(components, "mitral stenosis causes raised atrial pressure")
	// One static entry plus one connective entry; no deduplication.
	assert.Len(t, relationships, 2)
}

func TestDeriveUrgencyTiers(t *testing.T) {
	tests := []struct {
		text string
		want Urgency
	}{
		{"emergency transfer for primary PCI", UrgencyEmergency},
		{"urgent outpatient echo requested", UrgencyUrgent},
		{"routine review in six months", UrgencyRoutine},
		{"", UrgencyRoutine},
		// Emergency outranks urgent when both appear.
		{"urgent review; patient then had an arrest, emergency response called", UrgencyEmergency},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deriveUrgency(tt.text), "text: %s", tt.text)
	}
}

func TestDeriveComplexityBuckets(t *testing.T) {
	assert.Equal(t, ComplexitySimple, deriveComplexity(0))
	assert.Equal(t, ComplexitySimple, deriveComplexity(4))
	assert.Equal(t, ComplexityModerate, deriveComplexity(5))
	assert.Equal(t, ComplexityModerate, deriveComplexity(10))
	assert.Equal(t, ComplexityComplex, deriveComplexity(11))
	assert.Equal(t, ComplexityComplex, deriveComplexity(15))
	assert.Equal(t, ComplexityHighlyComplex, deriveComplexity(16))
}

func TestDerivePatientFactorsAge(t *testing.T) {
	factors := derivePatientFactors("An 82 year old man with exertional dyspnoea")
	require.Len(t, factors, 1)
	assert.Equal(t, "age", factors[0].Factor)
	assert.Equal(t, "82", factors[0].Value)
	assert.Equal(t, "negative", factors[0].Impact)

	factors = derivePatientFactors("A 54-year-old woman")
	require.Len(t, factors, 1)
	assert.Equal(t, "neutral", factors[0].Impact)

	assert.Empty(t, derivePatientFactors("no age stated"))
}

func TestAustralianComplianceAnnotations(t *testing.T) {
	d := NewDetector(nil)

	text := "Commenced on apixaban per PBS criteria and CSANZ guidelines."
	patterns := d.DetectPatterns(text, nil, Options{AustralianFocus: true})
	p := findPattern(patterns, ReasoningTherapeuticDecision)
	require.NotNil(t, p)
	require.NotNil(t, p.AustralianCompliance)
	assert.True(t, p.AustralianCompliance.PBSRelevant)
	assert.NotEmpty(t, p.AustralianCompliance.GuidelineMentions)
	assert.True(t, p.AustralianCompliance.TerminologyCorrect)

	// Without the option, no compliance annotation is attached.
	patterns = d.DetectPatterns(text, nil, Options{})
	p = findPattern(patterns, ReasoningTherapeuticDecision)
	require.NotNil(t, p)
	assert.Nil(t, p.AustralianCompliance)
}

func TestConfidenceBoundsAcrossTypes(t *testing.T) {
	d := NewDetector(nil)
	e := extractor.NewExtractor(nil)

	text := "Urgent workup for severe aortic stenosis: ordered an echo, high risk features, " +
		"meets criteria for TAVI, referred to the heart team, commenced frusemide 40mg BD, " +
		"uptitrate metoprolol, smoking cessation advised, review in 6 weeks."
	patterns := d.DetectPatterns(text, e.Extract(text), Options{})
	require.NotEmpty(t, patterns)

	for _, p := range patterns {
		assert.GreaterOrEqual(t, p.Confidence, MinConfidenceThreshold)
		assert.LessOrEqual(t, p.Confidence, 1.0)
		for _, rel := range p.Relationships {
			assert.GreaterOrEqual(t, rel.Strength, 0.0)
			assert.LessOrEqual(t, rel.Strength, 1.0)
		}
	}
}

func TestDetectDeterministic(t *testing.T) {
	d := NewDetector(nil)
	e := extractor.NewExtractor(nil)

	text := "Severe mitral regurgitation due to prolapse. Referred for surgical opinion. Review in 3 months."
	components := e.Extract(text)

	first := d.DetectPatterns(text, components, Options{})
	second := d.DetectPatterns(text, components, Options{})
	assert.Equal(t, first, second)
}

//Personal.AI order the ending
