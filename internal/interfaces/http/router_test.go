package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MedText-Intelligence/internal/application/analysis"
	"github.com/turtacn/MedText-Intelligence/internal/application/jobs"
	"github.com/turtacn/MedText-Intelligence/internal/config"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/cache"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/corrections"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/extractor"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/reasoning"
	"github.com/turtacn/MedText-Intelligence/internal/intelligence/scoring"
	"github.com/turtacn/MedText-Intelligence/internal/interfaces/http/handlers"
)

type testStack struct {
	router http.Handler
	queue  jobs.Queue
	graph  knowledge.Graph
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	corr, err := corrections.NewCorrector(nil, nil)
	require.NoError(t, err)
	ext := extractor.NewExtractor(nil)
	det := reasoning.NewDetector(nil)
	g := knowledge.NewGraph(nil)
	c := cache.NewMemoryCache(nil, time.Minute)
	sc, err := scoring.NewScorer(ext, det, g, c, nil)
	require.NoError(t, err)
	svc, err := analysis.NewService(corr, ext, det, g, sc, c, nil)
	require.NoError(t, err)

	queue, err := jobs.NewQueue(svc, config.WorkerConfig{Concurrency: 1, QueueDepth: 4}, nil)
	require.NoError(t, err)
	queue.Start()
	t.Cleanup(func() { _ = queue.Stop(context.Background()) })

	router := NewRouter(RouterConfig{
		TextHandler:     handlers.NewTextHandler(svc),
		AnalysisHandler: handlers.NewAnalysisHandler(svc, queue),
		GraphHandler:    handlers.NewGraphHandler(g, nil),
		HealthHandler: handlers.NewHealthHandler(map[string]handlers.Checker{
			"cache": c.Ping,
		}, nil),
		Mode: "test",
	})
	return &testStack{router: router, queue: queue, graph: g}
}

func (s *testStack) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestCorrectEndpoint(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodPost, "/api/v1/text/corrections",
		map[string]interface{}{"text": "Commenced frizomide 40mg BD."})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.CorrectResponse
	decode(t, rec, &resp)
	assert.Contains(t, resp.CorrectedText, "frusemide")
	assert.True(t, resp.Changed)
	assert.Len(t, resp.Categories, len(corrections.AllCategories))
}

func TestCorrectEndpointRejectsBadInput(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodPost, "/api/v1/text/corrections",
		map[string]interface{}{"text": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/text/corrections",
		map[string]interface{}{"text": "ok", "categories": []string{"bogus"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	decode(t, rec, &resp)
	assert.Equal(t, "TXT_003", resp.Code)
}

func TestTablesEndpoint(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodGet, "/api/v1/corrections/tables", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.TablesResponse
	decode(t, rec, &resp)
	assert.Len(t, resp.Categories, len(corrections.AllCategories))
	assert.Greater(t, resp.TotalRules, 0)
}

func TestComponentsEndpoint(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodPost, "/api/v1/analysis/components",
		map[string]interface{}{"text": "Severe aortic stenosis on TTE."})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Components []extractor.ClinicalComponent `json:"components"`
		Count      int                           `json:"count"`
	}
	decode(t, rec, &resp)
	assert.Greater(t, resp.Count, 0)
	assert.Len(t, resp.Components, resp.Count)
}

func TestReasoningEndpoint(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodPost, "/api/v1/analysis/reasoning", map[string]interface{}{
		"text": "Patient with aortic stenosis. Commenced frusemide 40mg BD.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var report analysis.Report
	decode(t, rec, &report)
	assert.NotEmpty(t, report.ID)
	assert.NotEmpty(t, report.Components)
}

func TestValidateEndpoint(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodPost, "/api/v1/analysis/validate", map[string]interface{}{
		"text": "Echo shows EF 150%.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result scoring.ValidationResult
	decode(t, rec, &result)
	assert.False(t, result.IsValid)
}

func TestQuickConfidenceEndpoint(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodGet, "/api/v1/analysis/confidence?text=Commenced+frusemide+40mg+BD.", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Confidence float64 `json:"confidence"`
	}
	decode(t, rec, &resp)
	assert.Greater(t, resp.Confidence, 0.0)

	rec = s.do(t, http.MethodGet, "/api/v1/analysis/confidence", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobEndpoints(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodPost, "/api/v1/analysis/jobs", map[string]interface{}{
		"text": "Patient with aortic stenosis. Commenced frusemide 40mg BD.",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var job jobs.Job
	decode(t, rec, &job)
	require.NotEmpty(t, job.ID)

	require.Eventually(t, func() bool {
		poll := s.do(t, http.MethodGet, "/api/v1/analysis/jobs/"+job.ID, nil)
		if poll.Code != http.StatusOK {
			return false
		}
		var got jobs.Job
		decode(t, poll, &got)
		return got.Status == jobs.StatusDone
	}, 5*time.Second, 20*time.Millisecond)

	rec = s.do(t, http.MethodGet, "/api/v1/analysis/jobs/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGraphEndpoints(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodPost, "/api/v1/graph/concepts", map[string]interface{}{
		"name":       "pulmonary oedema",
		"type":       "condition",
		"domain":     "cardiology",
		"confidence": 0.9,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var concept knowledge.MedicalConcept
	decode(t, rec, &concept)
	require.NotEmpty(t, concept.ID)

	// Link the new concept to the seeded aortic stenosis node.
	seeded := s.graph.Query("aortic stenosis", knowledge.QueryOptions{MaxDepth: 1})
	require.NotEmpty(t, seeded.Concepts)

	rec = s.do(t, http.MethodPost, "/api/v1/graph/relationships", map[string]interface{}{
		"source_concept_id": seeded.Concepts[0].ID,
		"target_concept_id": concept.ID,
		"relationship_type": "causes",
		"strength":          0.8,
		"confidence":        0.8,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/graph/query?concept=aortic+stenosis&depth=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var result knowledge.QueryResult
	decode(t, rec, &result)
	assert.GreaterOrEqual(t, len(result.Concepts), 2)

	rec = s.do(t, http.MethodGet, "/api/v1/graph/query", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/graph/similarity?a=aortic+stenosis&b=pulmonary+oedema", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var score knowledge.SimilarityScore
	decode(t, rec, &score)
	assert.GreaterOrEqual(t, score.Similarity, 0.0)
	assert.LessOrEqual(t, score.Similarity, 1.0)

	rec = s.do(t, http.MethodGet, "/api/v1/graph/similarity?a=aortic+stenosis&b=no+such+concept", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/graph/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats knowledge.GraphStats
	decode(t, rec, &stats)
	assert.GreaterOrEqual(t, stats.ConceptCount, 3)
	assert.GreaterOrEqual(t, stats.RelationshipCount, 1)

	rec = s.do(t, http.MethodGet, "/api/v1/graph/concepts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Concepts []knowledge.MedicalConcept `json:"concepts"`
		Count    int                        `json:"count"`
	}
	decode(t, rec, &listing)
	assert.Equal(t, stats.ConceptCount, listing.Count)
	assert.Len(t, listing.Concepts, listing.Count)
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestStack(t)

	rec := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "ok", resp.Components["cache"])
}

func TestRequestIDPropagation(t *testing.T) {
	s := newTestStack(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))

	rec = s.do(t, http.MethodGet, "/healthz", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), "an ID is generated when absent")
}

//Personal.AI order the ending
