package server

import (
	"net/http"

	"github.com/jonathan/internship-matcher/internal/types"
)

// ---------------------------------------------------------------------
// Candidate Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	candidate, err := s.service.CreateCandidate(r.Context(), &req)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, candidate)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	candidate, err := s.service.GetCandidate(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateCandidateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	candidate, err := s.service.UpdateCandidate(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}
