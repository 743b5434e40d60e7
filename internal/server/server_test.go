package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/ranking"
	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/server/ratelimit"
	"github.com/jonathan/internship-matcher/internal/tracker"
	"github.com/jonathan/internship-matcher/internal/types"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// staticPostings is a small catalog: two open postings in Jaipur and Delhi and one closed.
func staticPostings() []types.InternshipPosting {
	return []types.InternshipPosting{
		{
			ID: "int_001", Title: "Data Entry Intern", Organization: "Gram Seva",
			RequiredSkills: []string{"Excel", "Hindi"}, RequiredEducation: types.Education12th,
			Deadline: "2099-12-31", Location: &types.PostingLocation{Lat: floatPtr(26.9124), Lon: floatPtr(75.7873)},
		},
		{
			ID: "int_002", Title: "Field Surveyor", Organization: "Rural Insights",
			RequiredSkills: []string{"Hindi", "Surveying"}, RequiredEducation: types.Education10th,
			Deadline: "2099-12-31", Location: &types.PostingLocation{Lat: floatPtr(28.6139), Lon: floatPtr(77.2090)},
		},
		{
			ID: "int_003", Title: "Accounts Assistant", Organization: "Sahakari Bank",
			RequiredSkills: []string{"Tally"}, RequiredEducation: types.Education12th,
			Deadline: "2020-01-01",
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

type testServer struct {
	*Server
	store *repository.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	return newTestServerWithLimits(t, &ratelimit.Config{Enabled: false})
}

func newTestServerWithLimits(t *testing.T, rl *ratelimit.Config) *testServer {
	t.Helper()

	store := repository.NewMemoryStore()
	svc := tracker.NewService(store, catalog.New(staticPostings(), store))
	s := New(Config{Port: 0, Policy: ranking.DefaultPolicy(), Workers: 1, RateLimit: rl}, svc, store)
	s.now = func() time.Time { return testNow }
	t.Cleanup(s.rateLimiter.Stop)

	return &testServer{Server: s, store: store}
}

// do sends a request through the full middleware chain.
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

// createCandidate registers a 12th-pass candidate located in Jaipur.
func (ts *testServer) createCandidate(t *testing.T, name string) types.CandidateProfile {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/candidates", map[string]any{
		"name":            name,
		"education_level": "12th",
		"skills":          []string{"Excel", "hindi"},
		"district":        "Jaipur",
		"location":        map[string]float64{"lat": 26.9124, "lon": 75.7873},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[types.CandidateProfile](t, w)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "ok", resp["status"])
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodOptions, "/candidates", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/employers", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodDelete, "/candidates/c1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRateLimit(t *testing.T) {
	ts := newTestServerWithLimits(t, &ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 2; i++ {
		w := ts.do(t, http.MethodGet, "/postings", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := ts.do(t, http.MethodGet, "/postings", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "rate_limit_exceeded", resp["error"])

	// Health checks are never limited
	w = ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/candidates", `{"name":"Asha","education_level":"12th","skills":["Excel"],"caste":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[map[string]string](t, w)
	assert.Contains(t, resp["error"], "Invalid request body")
}

func TestServiceError_HidesInternalDetail(t *testing.T) {
	ts := newTestServer(t)

	w := httptest.NewRecorder()
	ts.serviceError(w, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "Internal server error", resp["error"])
}
