package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/types"
)

func (ts *testServer) apply(t *testing.T, candidateID, postingID string) *types.Application {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/candidates/"+candidateID+"/applications", map[string]string{"intern_id": postingID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	app := decode[types.Application](t, w)
	return &app
}

func TestHandleApply(t *testing.T) {
	ts := newTestServer(t)
	c := ts.createCandidate(t, "Asha")

	app := ts.apply(t, c.ID, "int_001")
	assert.Equal(t, c.ID, app.CandidateID)
	assert.Equal(t, "int_001", app.PostingID)
	assert.Equal(t, "Data Entry Intern", app.InternshipTitle)
	assert.Equal(t, "Gram Seva", app.Organization)
	assert.Equal(t, types.StatusApplied, app.Status)

	// Second application to the same posting
	w := ts.do(t, http.MethodPost, "/candidates/"+c.ID+"/applications", map[string]string{"intern_id": "int_001"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(t, http.MethodPost, "/candidates/"+c.ID+"/applications", map[string]string{"intern_id": "int_999"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/candidates/missing/applications", map[string]string{"intern_id": "int_001"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/candidates/"+c.ID+"/applications", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListApplications(t *testing.T) {
	ts := newTestServer(t)
	c := ts.createCandidate(t, "Asha")

	w := ts.do(t, http.MethodGet, "/candidates/"+c.ID+"/applications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	ts.apply(t, c.ID, "int_001")
	ts.apply(t, c.ID, "int_002")

	w = ts.do(t, http.MethodGet, "/candidates/"+c.ID+"/applications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	apps := decode[[]types.Application](t, w)
	require.Len(t, apps, 2)
	assert.Equal(t, "int_001", apps[0].PostingID)
	assert.Equal(t, "int_002", apps[1].PostingID)
}

func TestHandleUpdateApplicationStatus(t *testing.T) {
	ts := newTestServer(t)
	c := ts.createCandidate(t, "Asha")
	app := ts.apply(t, c.ID, "int_001")

	w := ts.do(t, http.MethodPatch, "/applications/"+app.ID, map[string]string{"status": "Shortlisted"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[types.Application](t, w)
	assert.Equal(t, types.StatusShortlisted, updated.Status)

	w = ts.do(t, http.MethodPatch, "/applications/"+app.ID, map[string]string{"status": "Hired"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPatch, "/applications/missing", map[string]string{"status": "Offer"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleTracker(t *testing.T) {
	ts := newTestServer(t)
	c := ts.createCandidate(t, "Asha")
	app := ts.apply(t, c.ID, "int_001")
	ts.apply(t, c.ID, "int_002")

	w := ts.do(t, http.MethodPatch, "/applications/"+app.ID, map[string]string{"status": "In Review"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/candidates/"+c.ID+"/tracker", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	view := decode[types.TrackerView](t, w)
	assert.Equal(t, c.ID, view.CandidateID)
	assert.Len(t, view.Applications, 2)
	assert.Equal(t, []types.StatusCount{
		{Status: types.StatusApplied, Count: 1},
		{Status: types.StatusInReview, Count: 1},
		{Status: types.StatusShortlisted, Count: 0},
		{Status: types.StatusRejected, Count: 0},
		{Status: types.StatusOffer, Count: 0},
	}, view.Counts)
	assert.Equal(t, []string{
		"Data Entry Intern - In Review",
		"Field Surveyor - Applied",
	}, view.Summary)

	w = ts.do(t, http.MethodGet, "/candidates/missing/tracker", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSave(t *testing.T) {
	ts := newTestServer(t)
	c := ts.createCandidate(t, "Asha")

	w := ts.do(t, http.MethodPost, "/candidates/"+c.ID+"/saved", map[string]string{"intern_id": "int_002"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[map[string]any](t, w)
	assert.Equal(t, true, resp["saved"])

	w = ts.do(t, http.MethodPost, "/candidates/"+c.ID+"/saved", map[string]string{"intern_id": "int_002"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[map[string]any](t, w)
	assert.Equal(t, false, resp["saved"])

	w = ts.do(t, http.MethodPost, "/candidates/"+c.ID+"/saved", map[string]string{"intern_id": "int_999"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/candidates/"+c.ID+"/saved", nil)
	require.Equal(t, http.StatusOK, w.Code)
	saved := decode[[]types.InternshipPosting](t, w)
	require.Len(t, saved, 1)
	assert.Equal(t, "int_002", saved[0].ID)
}
