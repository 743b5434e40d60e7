package server

import (
	"net/http"

	"github.com/jonathan/internship-matcher/internal/types"
)

// ---------------------------------------------------------------------
// Application Tracker Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.service.ListApplications(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, apps)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req types.ApplyRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "intern_id is required")
		return
	}

	app, err := s.service.Apply(r.Context(), r.PathValue("id"), req.PostingID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, app)
}

func (s *Server) handleTracker(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.Tracker(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, view)
}

func (s *Server) handleListSaved(w http.ResponseWriter, r *http.Request) {
	postings, err := s.service.ListSaved(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, postings)
}

// handleSave bookmarks a posting: 201 when newly saved, 200 when it already was.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req types.ApplyRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "intern_id is required")
		return
	}

	added, err := s.service.Save(r.Context(), r.PathValue("id"), req.PostingID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, map[string]any{"intern_id": req.PostingID, "saved": added})
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateStatusRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	app, err := s.service.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, app)
}
