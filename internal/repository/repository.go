// Package repository defines the persistence contracts for candidates, postings,
// applications and saved postings, and provides an in-memory implementation.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jonathan/internship-matcher/internal/types"
)

// ErrDuplicate is returned when a record violates a uniqueness constraint,
// such as a second application from the same candidate to the same posting.
var ErrDuplicate = errors.New("duplicate record")

// CandidateStore persists candidate profiles.
// Get methods return (nil, nil) when the record does not exist.
type CandidateStore interface {
	CreateCandidate(ctx context.Context, c *types.CandidateProfile) error
	GetCandidate(ctx context.Context, id string) (*types.CandidateProfile, error)
	UpdateCandidate(ctx context.Context, c *types.CandidateProfile) error
	ListCandidates(ctx context.Context) ([]types.CandidateProfile, error)
}

// PostingStore persists recruiter-posted internships. List methods return postings
// in the order they were posted.
type PostingStore interface {
	CreatePosting(ctx context.Context, p *types.InternshipPosting) error
	GetPosting(ctx context.Context, id string) (*types.InternshipPosting, error)
	ListPostings(ctx context.Context) ([]types.InternshipPosting, error)
	ListPostingsByRecruiter(ctx context.Context, recruiterID string) ([]types.InternshipPosting, error)
	DeletePosting(ctx context.Context, id string) (bool, error)
}

// ApplicationStore persists applications. List methods return applications in the
// order they were submitted.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, a *types.Application) error
	GetApplication(ctx context.Context, id string) (*types.Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status types.ApplicationStatus, updatedAt time.Time) (bool, error)
	ListApplicationsByCandidate(ctx context.Context, candidateID string) ([]types.Application, error)
	ListApplicationsByPosting(ctx context.Context, postingID string) ([]types.Application, error)
	ListApplicationsByRecruiter(ctx context.Context, recruiterID string) ([]types.Application, error)
}

// SavedPostingStore persists candidate bookmarks.
type SavedPostingStore interface {
	// SavePosting returns false when the posting was already saved by the candidate.
	SavePosting(ctx context.Context, s *types.SavedPosting) (bool, error)
	ListSaved(ctx context.Context, candidateID string) ([]types.SavedPosting, error)
}

// Store is the full persistence surface used by the server and CLI.
type Store interface {
	CandidateStore
	PostingStore
	ApplicationStore
	SavedPostingStore
	Close() error
}
