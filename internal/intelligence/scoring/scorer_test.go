package scoring

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/cache"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/reasoning"
)

func newTestScorer(t *testing.T, opts ...ScorerOption) Scorer {
	t.Helper()
	s, err := NewScorer(
		extractor.NewExtractor(nil),
		reasoning.NewDetector(nil),
		knowledge.NewGraph(nil),
		cache.NewMemoryCache(nil, time.Minute),
		nil,
		opts...)
	require.NoError(t, err)
	return s
}

func TestNewScorerRequiresCoreDeps(t *testing.T) {
	_, err := NewScorer(nil, reasoning.NewDetector(nil), knowledge.NewGraph(nil), nil, nil)
	require.Error(t, err)
	_, err = NewScorer(extractor.NewExtractor(nil), nil, knowledge.NewGraph(nil), nil, nil)
	require.Error(t, err)
}

func TestValidateEmptyText(t *testing.T) {
	s := newTestScorer(t)

	result, err := s.ValidateMedicalAccuracy(context.Background(), "", Config{})
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Equal(t, 0.0, result.Confidence.Overall)
}

func TestValidateCleanText(t *testing.T) {
	s := newTestScorer(t)

	text := "Severe aortic stenosis confirmed on TTE with mean gradient of 45 mmHg. " +
		"Commenced frusemide 40mg BD. Referred to the heart team for TAVI workup."
	result, err := s.ValidateMedicalAccuracy(context.Background(), text, Config{})
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.GreaterOrEqual(t, result.Confidence.Overall, 0.6)
	assert.NotEmpty(t, result.MedicalAccuracyFlags, "reasoning patterns are flagged")
	assert.Equal(t, []string{"no corrections required"}, result.Recommendations)
}

func TestValidateCriticalIssueInvalidates(t *testing.T) {
	s := newTestScorer(t)

	// An EF of 150% is physiologically impossible: one critical issue.
	text := "Echo today. EF 150% reported on the scan. Otherwise well."
	result, err := s.ValidateMedicalAccuracy(context.Background(), text, Config{})
	require.NoError(t, err)

	critical := 0
	for _, issue := range result.Issues {
		if issue.Severity == SeverityCritical {
			critical++
		}
	}
	require.GreaterOrEqual(t, critical, 1)
	assert.False(t, result.IsValid, "any critical issue forces an invalid verdict")
	assert.Contains(t, result.Recommendations[0], "critical")
}

func TestValidateTerminologyArtifacts(t *testing.T) {
	s := newTestScorer(t)

	text := "Ordered UNEs and FBE. Commenced frizomide. Review next week."
	result, err := s.ValidateMedicalAccuracy(context.Background(), text, Config{})
	require.NoError(t, err)

	terminology := 0
	for _, issue := range result.Issues {
		if issue.Type == IssueTerminology {
			terminology++
		}
	}
	assert.GreaterOrEqual(t, terminology, 3)
	assert.Less(t, result.Confidence.Terminology, 1.0)
}

func TestValidateStrictTerminologyEscalates(t *testing.T) {
	s := newTestScorer(t)
	ctx := context.Background()
	text := "Commenced frizomide today. Will review."

	relaxed, err := s.ValidateMedicalAccuracy(ctx, text, Config{})
	require.NoError(t, err)
	strict, err := s.ValidateMedicalAccuracy(ctx, text, Config{StrictTerminology: true})
	require.NoError(t, err)

	assert.Less(t, strict.Confidence.Terminology, relaxed.Confidence.Terminology)
}

func TestValidateAustralianCompliance(t *testing.T) {
	s := newTestScorer(t)

	text := "Commenced Lasix 40mg daily for furosemide-responsive oedema."
	result, err := s.ValidateMedicalAccuracy(context.Background(), text, Config{AustralianFocus: true})
	require.NoError(t, err)

	compliance := 0
	for _, issue := range result.Issues {
		if issue.Type == IssueAustralianCompliance {
			compliance++
		}
	}
	assert.GreaterOrEqual(t, compliance, 1, "brand names are flagged under Australian focus")
	assert.NotEmpty(t, result.AustralianComplianceFlags)

	// Without the focus the pass contributes nothing and scores neutral.
	relaxed, err := s.ValidateMedicalAccuracy(context.Background(), text, Config{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, relaxed.Confidence.AustralianCompliance)
}

func TestValidateContradiction(t *testing.T) {
	s := newTestScorer(t)

	text := "Patient denies chest pain. Later reports chest pain at rest."
	result, err := s.ValidateMedicalAccuracy(context.Background(), text, Config{})
	require.NoError(t, err)

	found := false
	for _, issue := range result.Issues {
		if issue.Type == IssueSemantic && issue.Severity == SeverityMajor {
			found = true
		}
	}
	assert.True(t, found, "contradictory statements raise a major semantic issue")
}

func TestValidateConfidenceBounds(t *testing.T) {
	s := newTestScorer(t)
	ctx := context.Background()

	texts := []string{
		"x",
		"EF 150%. EF 200%. EF 3%. frizomide frizomide UNEs FBE furosemide edema anemia.",
		strings.Repeat("severe chest pain and dyspnoea with BP 180/110. ", 100),
	}
	for _, text := range texts {
		result, err := s.ValidateMedicalAccuracy(ctx, text, Config{AustralianFocus: true})
		require.NoError(t, err)
		metrics := []float64{
			result.Confidence.Overall, result.Confidence.Semantic,
			result.Confidence.Terminology, result.Confidence.ClinicalReasoning,
			result.Confidence.AustralianCompliance, result.Confidence.FactualAccuracy,
			result.Confidence.Coherence, result.Confidence.TermDensity,
			result.Confidence.Completeness,
		}
		for _, v := range metrics {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestValidateResultIsCached(t *testing.T) {
	s := newTestScorer(t)
	ctx := context.Background()
	text := "Severe aortic stenosis on TTE. Commenced frusemide 40mg BD."

	first, err := s.ValidateMedicalAccuracy(ctx, text, Config{})
	require.NoError(t, err)
	second, err := s.ValidateMedicalAccuracy(ctx, text, Config{})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A different config is a different cache entry.
	third, err := s.ValidateMedicalAccuracy(ctx, text, Config{AustralianFocus: true})
	require.NoError(t, err)
	assert.NotEqual(t, first.AustralianComplianceFlags, third.AustralianComplianceFlags)
}

func TestQuickConfidence(t *testing.T) {
	s := newTestScorer(t)
	ctx := context.Background()

	assert.Equal(t, 0.0, s.QuickConfidence(ctx, ""))

	short := s.QuickConfidence(ctx, "ok")
	long := s.QuickConfidence(ctx,
		"Severe aortic stenosis with EF 55% and mean gradient 45 mmHg. "+
			"Commenced frusemide 40mg BD. Referred for TAVI workup. Review in 6 weeks.")
	assert.Greater(t, long, short)
	assert.LessOrEqual(t, long, 1.0)
	assert.GreaterOrEqual(t, short, 0.0)
}

func TestQuickConfidenceDeterministic(t *testing.T) {
	s := newTestScorer(t)
	ctx := context.Background()
	text := "Atrial fibrillation on apixaban. INR not required. Review in 3 months."

	assert.Equal(t, s.QuickConfidence(ctx, text), s.QuickConfidence(ctx, text))
}

//Personal.AI order the ending
