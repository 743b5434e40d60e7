// Package tracker manages candidate profiles, applications, saved postings and
// recruiter postings on top of a repository.Store.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/types"
)

// Service provides the application-tracking business logic
type Service struct {
	store   repository.Store
	catalog *catalog.Catalog
	now     func() time.Time
	newID   func() string
}

// NewService creates a new Service over a store and the catalog that resolves posting ids
func NewService(store repository.Store, cat *catalog.Catalog) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Catalog returns the catalog the service resolves postings against
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Service) requireCandidate(ctx context.Context, candidateID string) (*types.CandidateProfile, error) {
	c, err := s.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if c == nil {
		return nil, &ErrCandidateNotFound{CandidateID: candidateID}
	}
	return c, nil
}

func (s *Service) requirePosting(ctx context.Context, postingID string) (*types.InternshipPosting, error) {
	p, err := s.catalog.Find(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to find posting: %w", err)
	}
	if p == nil {
		return nil, &ErrPostingNotFound{PostingID: postingID}
	}
	return p, nil
}

// -----------------------------------------------------------------------------
// Applications
// -----------------------------------------------------------------------------

// Apply records a new application with status Applied. Title and organization are
// copied from the posting so the tracker survives posting deletion.
func (s *Service) Apply(ctx context.Context, candidateID, postingID string) (*types.Application, error) {
	if _, err := s.requireCandidate(ctx, candidateID); err != nil {
		return nil, err
	}
	posting, err := s.requirePosting(ctx, postingID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	app := &types.Application{
		ID:              s.newID(),
		CandidateID:     candidateID,
		PostingID:       posting.ID,
		InternshipTitle: posting.Title,
		Organization:    posting.Organization,
		RecruiterID:     posting.RecruiterID,
		Status:          types.StatusApplied,
		AppliedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ErrAlreadyApplied{CandidateID: candidateID, PostingID: postingID}
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("[tracker] Candidate %s applied to %s (%s)", candidateID, posting.ID, posting.Title)
	return app, nil
}

// UpdateStatus moves an application to a new status.
func (s *Service) UpdateStatus(ctx context.Context, applicationID string, status types.ApplicationStatus) (*types.Application, error) {
	if !status.Valid() {
		return nil, &ErrInvalidStatus{Status: string(status)}
	}

	updated, err := s.store.UpdateApplicationStatus(ctx, applicationID, status, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	if !updated {
		return nil, &ErrApplicationNotFound{ApplicationID: applicationID}
	}

	app, err := s.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return nil, &ErrApplicationNotFound{ApplicationID: applicationID}
	}
	return app, nil
}

// ListApplications returns a candidate's applications in the order they were submitted.
func (s *Service) ListApplications(ctx context.Context, candidateID string) ([]types.Application, error) {
	if _, err := s.requireCandidate(ctx, candidateID); err != nil {
		return nil, err
	}
	apps, err := s.store.ListApplicationsByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// StatusCounts tallies applications per status. Every status is present, in display order.
func StatusCounts(apps []types.Application) []types.StatusCount {
	tally := make(map[types.ApplicationStatus]int, len(types.ApplicationStatuses))
	for _, a := range apps {
		tally[a.Status]++
	}

	counts := make([]types.StatusCount, 0, len(types.ApplicationStatuses))
	for _, status := range types.ApplicationStatuses {
		counts = append(counts, types.StatusCount{Status: status, Count: tally[status]})
	}
	return counts
}

// Summary renders one "<title> - <status>" line per application.
func Summary(apps []types.Application) []string {
	lines := make([]string, 0, len(apps))
	for _, a := range apps {
		lines = append(lines, fmt.Sprintf("%s - %s", a.InternshipTitle, a.Status))
	}
	return lines
}

// Tracker returns the candidate's applications with per-status counts and the summary export.
func (s *Service) Tracker(ctx context.Context, candidateID string) (*types.TrackerView, error) {
	apps, err := s.ListApplications(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return &types.TrackerView{
		CandidateID:  candidateID,
		Applications: apps,
		Counts:       StatusCounts(apps),
		Summary:      Summary(apps),
	}, nil
}

// -----------------------------------------------------------------------------
// Saved postings
// -----------------------------------------------------------------------------

// Save bookmarks a posting. It returns false when the posting was already saved.
func (s *Service) Save(ctx context.Context, candidateID, postingID string) (bool, error) {
	if _, err := s.requireCandidate(ctx, candidateID); err != nil {
		return false, err
	}
	if _, err := s.requirePosting(ctx, postingID); err != nil {
		return false, err
	}

	added, err := s.store.SavePosting(ctx, &types.SavedPosting{
		CandidateID: candidateID,
		PostingID:   postingID,
		SavedAt:     s.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("failed to save posting: %w", err)
	}
	return added, nil
}

// ListSaved returns the candidate's saved postings. Bookmarks whose posting has since
// been deleted are skipped.
func (s *Service) ListSaved(ctx context.Context, candidateID string) ([]types.InternshipPosting, error) {
	if _, err := s.requireCandidate(ctx, candidateID); err != nil {
		return nil, err
	}

	saved, err := s.store.ListSaved(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved postings: %w", err)
	}

	out := make([]types.InternshipPosting, 0, len(saved))
	for _, sp := range saved {
		p, err := s.catalog.Find(ctx, sp.PostingID)
		if err != nil {
			return nil, fmt.Errorf("failed to find posting: %w", err)
		}
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}
