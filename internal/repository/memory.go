package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jonathan/internship-matcher/internal/types"
)

// MemoryStore is a mutex-protected, process-local Store.
type MemoryStore struct {
	mu sync.RWMutex

	candidates     map[string]types.CandidateProfile
	candidateOrder []string

	postings     map[string]types.InternshipPosting
	postingOrder []string

	applications     map[string]types.Application
	applicationOrder []string

	saved []types.SavedPosting
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		candidates:   make(map[string]types.CandidateProfile),
		postings:     make(map[string]types.InternshipPosting),
		applications: make(map[string]types.Application),
	}
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

// -----------------------------------------------------------------------------
// Candidates
// -----------------------------------------------------------------------------

// CreateCandidate stores a new candidate.
func (m *MemoryStore) CreateCandidate(_ context.Context, c *types.CandidateProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.candidates[c.ID]; exists {
		return fmt.Errorf("failed to create candidate %s: %w", c.ID, ErrDuplicate)
	}
	m.candidates[c.ID] = cloneCandidate(*c)
	m.candidateOrder = append(m.candidateOrder, c.ID)
	return nil
}

// GetCandidate returns the candidate or nil when absent.
func (m *MemoryStore) GetCandidate(_ context.Context, id string) (*types.CandidateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.candidates[id]
	if !ok {
		return nil, nil
	}
	out := cloneCandidate(c)
	return &out, nil
}

// UpdateCandidate replaces an existing candidate.
func (m *MemoryStore) UpdateCandidate(_ context.Context, c *types.CandidateProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.candidates[c.ID]; !ok {
		return fmt.Errorf("candidate not found: %s", c.ID)
	}
	m.candidates[c.ID] = cloneCandidate(*c)
	return nil
}

// ListCandidates returns all candidates in creation order.
func (m *MemoryStore) ListCandidates(_ context.Context) ([]types.CandidateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.CandidateProfile, 0, len(m.candidateOrder))
	for _, id := range m.candidateOrder {
		out = append(out, cloneCandidate(m.candidates[id]))
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Postings
// -----------------------------------------------------------------------------

// CreatePosting stores a new recruiter posting.
func (m *MemoryStore) CreatePosting(_ context.Context, p *types.InternshipPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.postings[p.ID]; exists {
		return fmt.Errorf("failed to create posting %s: %w", p.ID, ErrDuplicate)
	}
	m.postings[p.ID] = clonePosting(*p)
	m.postingOrder = append(m.postingOrder, p.ID)
	return nil
}

// GetPosting returns the posting or nil when absent.
func (m *MemoryStore) GetPosting(_ context.Context, id string) (*types.InternshipPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.postings[id]
	if !ok {
		return nil, nil
	}
	out := clonePosting(p)
	return &out, nil
}

// ListPostings returns all postings in the order they were posted.
func (m *MemoryStore) ListPostings(_ context.Context) ([]types.InternshipPosting, error) {
	return m.filterPostings(func(types.InternshipPosting) bool { return true }), nil
}

// ListPostingsByRecruiter returns one recruiter's postings.
func (m *MemoryStore) ListPostingsByRecruiter(_ context.Context, recruiterID string) ([]types.InternshipPosting, error) {
	return m.filterPostings(func(p types.InternshipPosting) bool { return p.RecruiterID == recruiterID }), nil
}

func (m *MemoryStore) filterPostings(keep func(types.InternshipPosting) bool) []types.InternshipPosting {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.InternshipPosting, 0)
	for _, id := range m.postingOrder {
		if p := m.postings[id]; keep(p) {
			out = append(out, clonePosting(p))
		}
	}
	return out
}

// DeletePosting removes a posting, reporting whether it existed.
func (m *MemoryStore) DeletePosting(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.postings[id]; !ok {
		return false, nil
	}
	delete(m.postings, id)
	m.postingOrder = slices.DeleteFunc(m.postingOrder, func(s string) bool { return s == id })
	return true, nil
}

// -----------------------------------------------------------------------------
// Applications
// -----------------------------------------------------------------------------

// CreateApplication stores an application. A second application from the same
// candidate to the same posting fails with ErrDuplicate.
func (m *MemoryStore) CreateApplication(_ context.Context, a *types.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.applications[a.ID]; exists {
		return fmt.Errorf("failed to create application %s: %w", a.ID, ErrDuplicate)
	}
	for _, existing := range m.applications {
		if existing.CandidateID == a.CandidateID && existing.PostingID == a.PostingID {
			return fmt.Errorf("failed to create application for %s: %w", a.PostingID, ErrDuplicate)
		}
	}
	m.applications[a.ID] = *a
	m.applicationOrder = append(m.applicationOrder, a.ID)
	return nil
}

// GetApplication returns the application or nil when absent.
func (m *MemoryStore) GetApplication(_ context.Context, id string) (*types.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.applications[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// UpdateApplicationStatus changes an application's status, reporting whether it existed.
func (m *MemoryStore) UpdateApplicationStatus(_ context.Context, id string, status types.ApplicationStatus, updatedAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.applications[id]
	if !ok {
		return false, nil
	}
	a.Status = status
	a.UpdatedAt = updatedAt
	m.applications[id] = a
	return true, nil
}

// ListApplicationsByCandidate returns a candidate's applications.
func (m *MemoryStore) ListApplicationsByCandidate(_ context.Context, candidateID string) ([]types.Application, error) {
	return m.filterApplications(func(a types.Application) bool { return a.CandidateID == candidateID }), nil
}

// ListApplicationsByPosting returns the applications received by a posting.
func (m *MemoryStore) ListApplicationsByPosting(_ context.Context, postingID string) ([]types.Application, error) {
	return m.filterApplications(func(a types.Application) bool { return a.PostingID == postingID }), nil
}

// ListApplicationsByRecruiter returns applications to any of a recruiter's postings.
func (m *MemoryStore) ListApplicationsByRecruiter(_ context.Context, recruiterID string) ([]types.Application, error) {
	return m.filterApplications(func(a types.Application) bool { return a.RecruiterID == recruiterID }), nil
}

func (m *MemoryStore) filterApplications(keep func(types.Application) bool) []types.Application {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Application, 0)
	for _, id := range m.applicationOrder {
		if a := m.applications[id]; keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// -----------------------------------------------------------------------------
// Saved postings
// -----------------------------------------------------------------------------

// SavePosting bookmarks a posting for a candidate.
func (m *MemoryStore) SavePosting(_ context.Context, s *types.SavedPosting) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.saved {
		if existing.CandidateID == s.CandidateID && existing.PostingID == s.PostingID {
			return false, nil
		}
	}
	m.saved = append(m.saved, *s)
	return true, nil
}

// ListSaved returns a candidate's bookmarks in the order they were saved.
func (m *MemoryStore) ListSaved(_ context.Context, candidateID string) ([]types.SavedPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.SavedPosting, 0)
	for _, s := range m.saved {
		if s.CandidateID == candidateID {
			out = append(out, s)
		}
	}
	return out, nil
}

func cloneCandidate(c types.CandidateProfile) types.CandidateProfile {
	c.Skills = slices.Clone(c.Skills)
	c.PreferredLocations = slices.Clone(c.PreferredLocations)
	if c.Location != nil {
		loc := *c.Location
		c.Location = &loc
	}
	return c
}

func clonePosting(p types.InternshipPosting) types.InternshipPosting {
	p.RequiredSkills = slices.Clone(p.RequiredSkills)
	p.Tags = slices.Clone(p.Tags)
	if p.Location != nil {
		loc := *p.Location
		p.Location = &loc
	}
	return p
}

var _ Store = (*MemoryStore)(nil)
