package analysis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/cache"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/corrections"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/reasoning"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/scoring"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

func newTestService(t *testing.T, opts ...Option) Service {
	t.Helper()

	corr, err := corrections.NewCorrector(nil, nil)
	require.NoError(t, err)
	ext := extractor.NewExtractor(nil)
	det := reasoning.NewDetector(nil)
	g := knowledge.NewGraph(nil)
	c := cache.NewMemoryCache(nil, time.Minute)
	sc, err := scoring.NewScorer(ext, det, g, c, nil)
	require.NoError(t, err)

	svc, err := NewService(corr, ext, det, g, sc, c, nil, opts...)
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresDeps(t *testing.T) {
	_, err := NewService(nil, nil, nil, nil, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeAnalysisOptsInvalid))
}

func TestCorrectTextRejectsBadInput(t *testing.T) {
	svc := newTestService(t, WithMaxTextLength(50))
	ctx := context.Background()

	_, err := svc.CorrectText(ctx, "   ")
	assert.True(t, errors.IsCode(err, errors.ErrCodeTextEmpty))

	_, err = svc.CorrectText(ctx, strings.Repeat("a", 51))
	assert.True(t, errors.IsCode(err, errors.ErrCodeTextTooLong))
}

func TestCorrectTextAppliesRules(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	corrected, err := svc.CorrectText(ctx, "Commenced frizomide 40mg BD.")
	require.NoError(t, err)
	assert.Contains(t, corrected, "frusemide 40mg BD")

	// Brand names run through the medication pipeline.
	corrected, err = svc.CorrectText(ctx, "Continue Lasix daily.")
	require.NoError(t, err)
	assert.Contains(t, corrected, "frusemide")
}

func TestCorrectTextCategorySubset(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Pathology-only corrections leave medication artifacts alone.
	corrected, err := svc.CorrectText(ctx, "Ordered UNEs. Commenced frizomide.",
		corrections.CategoryPathology)
	require.NoError(t, err)
	assert.Contains(t, corrected, "EUC")
	assert.Contains(t, corrected, "frizomide")
}

func TestExtractComponents(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	components, err := svc.ExtractComponents(ctx, "Severe aortic stenosis on TTE. Commenced frusemide 40mg.")
	require.NoError(t, err)
	assert.NotEmpty(t, components)

	_, err = svc.ExtractComponents(ctx, "")
	assert.True(t, errors.IsCode(err, errors.ErrCodeTextEmpty))
}

func TestAnalyzeFullPipeline(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	text := "Patient with aortic stenosis. Commenced frizomide 40mg BD. " +
		"Referred to cardiology for opinion."
	report, err := svc.AnalyzeClinicalReasoning(ctx, text, Options{})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, text, report.OriginalText)
	assert.Contains(t, report.CorrectedText, "frusemide", "corrections feed the downstream stages")
	assert.NotEmpty(t, report.Components)
	assert.NotEmpty(t, report.Patterns)
	assert.Greater(t, report.QuickConfidence, 0.0)
	assert.LessOrEqual(t, report.QuickConfidence, 1.0)
	assert.Nil(t, report.Validation)

	// The seeded graph knows aortic stenosis; enrichment should resolve it.
	require.NotEmpty(t, report.GraphContext)
	assert.Equal(t, "aortic stenosis", report.GraphContext[0].Component)
	assert.NotEmpty(t, report.GraphContext[0].Result.Concepts)
}

func TestAnalyzeReportIsCached(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	text := "Patient with aortic stenosis. Commenced frusemide 40mg BD."

	first, err := svc.AnalyzeClinicalReasoning(ctx, text, Options{})
	require.NoError(t, err)
	second, err := svc.AnalyzeClinicalReasoning(ctx, text, Options{})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "a cache hit returns the original report")

	// Different options miss the cache.
	third, err := svc.AnalyzeClinicalReasoning(ctx, text, Options{AustralianFocus: true})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestAnalyzeWithValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	report, err := svc.AnalyzeClinicalReasoning(ctx,
		"Patient with aortic stenosis. Commenced frusemide 40mg BD.",
		Options{IncludeValidation: true})
	require.NoError(t, err)

	require.NotNil(t, report.Validation)
	assert.GreaterOrEqual(t, report.Validation.Confidence.Overall, 0.0)
	assert.LessOrEqual(t, report.Validation.Confidence.Overall, 1.0)
}

func TestValidateTextDelegates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	result, err := svc.ValidateText(ctx, "Echo shows EF 150%.", scoring.Config{})
	require.NoError(t, err)
	assert.False(t, result.IsValid)

	_, err = svc.ValidateText(ctx, "", scoring.Config{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeTextEmpty))
}

func TestRuleTables(t *testing.T) {
	svc := newTestService(t)

	counts := svc.RuleTables()
	require.Len(t, counts, len(corrections.AllCategories))
	for category, n := range counts {
		assert.Greater(t, n, 0, "category %s has no rules", category)
	}
}

//Personal.AI order the ending
