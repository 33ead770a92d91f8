package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findByCategory(components []ClinicalComponent, cat ComponentCategory) []ClinicalComponent {
	var out []ClinicalComponent
	for _, c := range components {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

func TestExtractEmptyText(t *testing.T) {
	e := NewExtractor(nil)
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n\t  "))
}

func TestExtractNoMedicalContent(t *testing.T) {
	e := NewExtractor(nil)
	assert.Empty(t, e.Extract("the weather was pleasant on the drive home"))
}

func TestExtractMedicationWithDose(t *testing.T) {
	e := NewExtractor(nil)
	components := e.Extract("commenced on frusemide 40mg BD for fluid overload")

	meds := findByCategory(components, CategoryMedication)
	require.NotEmpty(t, meds)

	var dosed *ClinicalComponent
	for i := range meds {
		if strings.Contains(meds[i].Value, "40mg") {
			dosed = &meds[i]
			break
		}
	}
	require.NotNil(t, dosed, "expected a dosed medication component")
	// 0.6 base + 0.25 category + 0.05 long span + 0.1 digit + 0.1 unit = 1.0 clamped.
	assert.Equal(t, 1.0, dosed.Confidence)
	assert.Equal(t, SignificanceHigh, dosed.ClinicalSignificance)
}

func TestExtractDiagnosisAndInvestigation(t *testing.T) {
	e := NewExtractor(nil)
	text := "Severe aortic stenosis with mean gradient of 45 mmHg and EF 55%."
	components := e.Extract(text)

	diagnoses := findByCategory(components, CategoryDiagnosis)
	require.NotEmpty(t, diagnoses)
	assert.Equal(t, SignificanceCritical, diagnoses[0].ClinicalSignificance,
		"severe language must override the category default")

	results := findByCategory(components, CategoryInvestigationResult)
	require.GreaterOrEqual(t, len(results), 2)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Confidence, 0.85)
	}
}

func TestExtractPositionsSpanSource(t *testing.T) {
	e := NewExtractor(nil)
	text := "Patient reports chest pain and palpitations."
	components := e.Extract(text)
	require.NotEmpty(t, components)

	for _, c := range components {
		require.GreaterOrEqual(t, c.Position.Start, 0)
		require.LessOrEqual(t, c.Position.End, len(text))
		assert.Equal(t, c.Value, strings.TrimSpace(text[c.Position.Start:c.Position.End]))
	}
}

func TestExtractRepeatedMentionsYieldRepeatedComponents(t *testing.T) {
	e := NewExtractor(nil)
	components := e.Extract("chest pain on exertion, chest pain at rest")

	symptoms := findByCategory(components, CategorySymptom)
	count := 0
	for _, s := range symptoms {
		if strings.EqualFold(s.Value, "chest pain") {
			count++
		}
	}
	assert.Equal(t, 2, count, "each occurrence yields its own component")
}

func TestExtractDeduplicatesSameSpan(t *testing.T) {
	e := NewExtractor(nil)
	// "dyspnoea" could in principle match multiple symptom patterns; identical
	// (value, category, start) triples must collapse to one component.
	components := e.Extract("dyspnoea on exertion")
	type key struct {
		value    string
		category ComponentCategory
		start    int
	}
	seen := map[key]bool{}
	for _, c := range components {
		k := key{c.Value, c.Category, c.Position.Start}
		assert.False(t, seen[k], "duplicate component %+v", c)
		seen[k] = true
	}
}

func TestExtractConfidenceBounds(t *testing.T) {
	e := NewExtractor(nil)
	texts := []string{
		"",
		"severe aortic stenosis, STEMI, frusemide 40mg BD, EF 25%, urgent TAVI workup",
		strings.Repeat("chest pain and palpitations with BP 180/110. ", 200),
		"no medical content here whatsoever",
	}
	for _, text := range texts {
		for _, c := range e.Extract(text) {
			assert.GreaterOrEqual(t, c.Confidence, 0.0)
			assert.LessOrEqual(t, c.Confidence, 1.0)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := NewExtractor(nil)
	text := "Atrial fibrillation on warfarin, INR 2.5, for TOE and cardioversion."

	first := e.Extract(text)
	second := e.Extract(text)
	assert.Equal(t, first, second)
}

func TestExtractSortedByPosition(t *testing.T) {
	e := NewExtractor(nil)
	components := e.Extract("Chest pain. Troponin I 45. Coronary angiogram arranged. Aspirin given.")
	require.NotEmpty(t, components)

	for i := 1; i < len(components); i++ {
		assert.LessOrEqual(t, components[i-1].Position.Start, components[i].Position.Start)
	}
}

func TestExtractContraindicationIsCritical(t *testing.T) {
	e := NewExtractor(nil)
	components := e.Extract("anticoagulation contraindicated in view of recent bleed")

	contras := findByCategory(components, CategoryContraindication)
	require.NotEmpty(t, contras)
	assert.Equal(t, SignificanceCritical, contras[0].ClinicalSignificance)
}

//Personal.AI order the ending
