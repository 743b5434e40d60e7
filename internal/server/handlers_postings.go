package server

import (
	"net/http"

	"github.com/jonathan/internship-matcher/internal/types"
)

// ---------------------------------------------------------------------
// Posting and Recruiter Handlers
// ---------------------------------------------------------------------

// handleListPostings lists the catalog, or one recruiter's postings with ?recruiter_id=.
func (s *Server) handleListPostings(w http.ResponseWriter, r *http.Request) {
	postings, err := s.service.ListPostings(r.Context(), r.URL.Query().Get("recruiter_id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, postings)
}

func (s *Server) handleCreatePosting(w http.ResponseWriter, r *http.Request) {
	var req types.CreatePostingRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	posting, err := s.service.PostInternship(r.Context(), &req)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, posting)
}

func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	posting, err := s.service.GetPosting(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

func (s *Server) handleDeletePosting(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeletePosting(r.Context(), r.PathValue("id")); err != nil {
		s.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePostingApplications(w http.ResponseWriter, r *http.Request) {
	applicants, err := s.service.PostingApplications(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, applicants)
}

func (s *Server) handleRecruiterApplications(w http.ResponseWriter, r *http.Request) {
	applicants, err := s.service.RecruiterApplications(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, applicants)
}
