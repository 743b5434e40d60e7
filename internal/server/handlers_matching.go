package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jonathan/internship-matcher/internal/ranking"
	"github.com/jonathan/internship-matcher/internal/skills"
	"github.com/jonathan/internship-matcher/internal/types"
)

// ---------------------------------------------------------------------
// Matching Handlers
// ---------------------------------------------------------------------

// handleRecommendations ranks the whole catalog for a candidate.
// An optional ?limit= (1..5) narrows the result count.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	policy := s.policy
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > ranking.MaxResults {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("limit must be an integer between 1 and %d", ranking.MaxResults))
			return
		}
		policy.Limit = limit
	}

	candidate, err := s.service.GetCandidate(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	postings, err := s.service.Catalog().All(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}

	results := ranking.Recommend(candidate, postings, s.now(), ranking.Options{
		Policy:  &policy,
		Workers: s.workers,
	})

	s.jsonResponse(w, http.StatusOK, types.Recommendations{
		CandidateID: candidate.ID,
		Results:     results,
	})
}

func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	postingID := r.URL.Query().Get("posting_id")
	if postingID == "" {
		s.errorResponse(w, http.StatusBadRequest, "posting_id is required")
		return
	}

	candidate, err := s.service.GetCandidate(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	posting, err := s.service.GetPosting(r.Context(), postingID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, skills.Gap(candidate.Skills, posting.RequiredSkills))
}

// handleSkillsInDemand compares the candidate against the skills asked for by open postings.
func (s *Server) handleSkillsInDemand(w http.ResponseWriter, r *http.Request) {
	candidate, err := s.service.GetCandidate(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	postings, err := s.service.Catalog().All(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}

	now := s.now()
	open := make([]types.InternshipPosting, 0, len(postings))
	for i := range postings {
		if postings[i].IsOpen(now) {
			open = append(open, postings[i])
		}
	}

	s.jsonResponse(w, http.StatusOK, skills.DemandGap(candidate.Skills, open))
}
