package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/types"
)

func (ts *testServer) postInternship(t *testing.T, recruiterID, title string) types.InternshipPosting {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/postings", map[string]any{
		"recruiter_id":       recruiterID,
		"title":              title,
		"organization":       "Jaipur Traders",
		"required_skills":    []string{"ms excel", "Hindi", "Excel", "Tally"},
		"required_education": "12th",
		"deadline":           "2099-06-30",
		"stipend":            5000,
		"duration_weeks":     8,
		"location":           map[string]string{"district": "Jaipur", "state": "Rajasthan"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[types.InternshipPosting](t, w)
}

func TestHandleCreatePosting(t *testing.T) {
	ts := newTestServer(t)

	p := ts.postInternship(t, "rec_1", "Billing Intern")

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "rec_1", p.RecruiterID)
	assert.Equal(t, []string{"Excel", "Hindi", "Tally"}, p.RequiredSkills)
	assert.Equal(t, []string{"Excel", "Hindi", "Tally"}, p.Tags)
	require.NotNil(t, p.PostedAt)
	require.NotNil(t, p.Location)
	assert.Equal(t, "Jaipur", p.Location.District)
}

func TestHandleCreatePosting_Validation(t *testing.T) {
	ts := newTestServer(t)

	base := func() map[string]any {
		return map[string]any{
			"recruiter_id":       "rec_1",
			"title":              "Billing Intern",
			"organization":       "Jaipur Traders",
			"required_skills":    []string{"Tally"},
			"required_education": "12th",
			"deadline":           "2099-06-30",
			"duration_weeks":     8,
		}
	}

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing recruiter", mutate: func(m map[string]any) { delete(m, "recruiter_id") }},
		{name: "no skills", mutate: func(m map[string]any) { m["required_skills"] = []string{} }},
		{name: "bad education", mutate: func(m map[string]any) { m["required_education"] = "Diploma" }},
		{name: "bad deadline", mutate: func(m map[string]any) { m["deadline"] = "30/06/2099" }},
		{name: "negative stipend", mutate: func(m map[string]any) { m["stipend"] = -1 }},
		{name: "zero duration", mutate: func(m map[string]any) { m["duration_weeks"] = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := base()
			tt.mutate(body)
			w := ts.do(t, http.MethodPost, "/postings", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestHandleListPostings(t *testing.T) {
	ts := newTestServer(t)
	ts.postInternship(t, "rec_1", "Billing Intern")
	ts.postInternship(t, "rec_2", "Stock Clerk")

	w := ts.do(t, http.MethodGet, "/postings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]types.InternshipPosting](t, w)
	require.Len(t, all, 5)
	assert.Equal(t, "int_001", all[0].ID, "static postings come first")
	assert.Equal(t, "Billing Intern", all[3].Title)

	w = ts.do(t, http.MethodGet, "/postings?recruiter_id=rec_2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[[]types.InternshipPosting](t, w)
	require.Len(t, mine, 1)
	assert.Equal(t, "Stock Clerk", mine[0].Title)
}

func TestHandleGetPosting(t *testing.T) {
	ts := newTestServer(t)
	p := ts.postInternship(t, "rec_1", "Billing Intern")

	for _, id := range []string{"int_001", p.ID} {
		w := ts.do(t, http.MethodGet, "/postings/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[types.InternshipPosting](t, w)
		assert.Equal(t, id, got.ID)
	}

	w := ts.do(t, http.MethodGet, "/postings/int_999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleDeletePosting(t *testing.T) {
	ts := newTestServer(t)
	c := ts.createCandidate(t, "Asha")
	p := ts.postInternship(t, "rec_1", "Billing Intern")
	ts.apply(t, c.ID, p.ID)

	w := ts.do(t, http.MethodDelete, "/postings/int_001", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(t, http.MethodDelete, "/postings/"+p.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = ts.do(t, http.MethodDelete, "/postings/"+p.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The application keeps its snapshot
	w = ts.do(t, http.MethodGet, "/candidates/"+c.ID+"/tracker", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[types.TrackerView](t, w)
	assert.Equal(t, []string{"Billing Intern - Applied"}, view.Summary)
}

func TestHandlePostingApplications(t *testing.T) {
	ts := newTestServer(t)
	asha := ts.createCandidate(t, "Asha")
	ravi := ts.createCandidate(t, "Ravi")
	p := ts.postInternship(t, "rec_1", "Billing Intern")
	ts.apply(t, asha.ID, p.ID)
	ts.apply(t, ravi.ID, p.ID)
	ts.apply(t, ravi.ID, "int_001")

	w := ts.do(t, http.MethodGet, "/postings/"+p.ID+"/applications", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	applicants := decode[[]types.Applicant](t, w)
	require.Len(t, applicants, 2)
	assert.Equal(t, "Asha", applicants[0].CandidateName)
	assert.Equal(t, "Ravi", applicants[1].CandidateName)
	assert.Equal(t, types.Education12th, applicants[0].EducationLevel)

	w = ts.do(t, http.MethodGet, "/postings/int_999/applications", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleRecruiterApplications(t *testing.T) {
	ts := newTestServer(t)
	asha := ts.createCandidate(t, "Asha")
	p1 := ts.postInternship(t, "rec_1", "Billing Intern")
	p2 := ts.postInternship(t, "rec_1", "Stock Clerk")
	other := ts.postInternship(t, "rec_2", "Driver")
	ts.apply(t, asha.ID, p1.ID)
	ts.apply(t, asha.ID, p2.ID)
	ts.apply(t, asha.ID, other.ID)
	ts.apply(t, asha.ID, "int_001")

	w := ts.do(t, http.MethodGet, "/recruiters/rec_1/applications", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	applicants := decode[[]types.Applicant](t, w)
	require.Len(t, applicants, 2)
	assert.Equal(t, p1.ID, applicants[0].PostingID)
	assert.Equal(t, p2.ID, applicants[1].PostingID)
	assert.Equal(t, "Asha", applicants[0].CandidateName)

	w = ts.do(t, http.MethodGet, "/recruiters/nobody/applications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
