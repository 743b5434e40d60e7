package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/types"
)

// -----------------------------------------------------------------------------
// Application Methods
// -----------------------------------------------------------------------------

const applicationColumns = `id, candidate_id, posting_id, internship_title, organization, recruiter_id,
		        status, applied_at, updated_at`

// CreateApplication inserts an application; a candidate may apply to a posting once
func (db *DB) CreateApplication(ctx context.Context, a *types.Application) error {
	tag, err := db.pool.Exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT DO NOTHING`,
		a.ID, a.CandidateID, a.PostingID, a.InternshipTitle, a.Organization, a.RecruiterID,
		string(a.Status), a.AppliedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to create application for %s: %w", a.PostingID, repository.ErrDuplicate)
	}
	return nil
}

// GetApplication retrieves an application by ID
func (db *DB) GetApplication(ctx context.Context, id string) (*types.Application, error) {
	a, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return a, nil
}

// UpdateApplicationStatus sets the status and reports whether the application existed
func (db *DB) UpdateApplicationStatus(ctx context.Context, id string, status types.ApplicationStatus, updatedAt time.Time) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), updatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update application status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListApplicationsByCandidate returns a candidate's applications
func (db *DB) ListApplicationsByCandidate(ctx context.Context, candidateID string) ([]types.Application, error) {
	return db.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE candidate_id = $1 ORDER BY seq`, candidateID)
}

// ListApplicationsByPosting returns the applications received by a posting
func (db *DB) ListApplicationsByPosting(ctx context.Context, postingID string) ([]types.Application, error) {
	return db.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE posting_id = $1 ORDER BY seq`, postingID)
}

// ListApplicationsByRecruiter returns applications to any of a recruiter's postings
func (db *DB) ListApplicationsByRecruiter(ctx context.Context, recruiterID string) ([]types.Application, error) {
	return db.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE recruiter_id = $1 ORDER BY seq`, recruiterID)
}

func (db *DB) queryApplications(ctx context.Context, query string, args ...any) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	out := []types.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func scanApplication(row pgx.Row) (*types.Application, error) {
	var a types.Application
	var status string

	err := row.Scan(&a.ID, &a.CandidateID, &a.PostingID, &a.InternshipTitle, &a.Organization,
		&a.RecruiterID, &status, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Status = types.ApplicationStatus(status)
	return &a, nil
}

// -----------------------------------------------------------------------------
// Saved Posting Methods
// -----------------------------------------------------------------------------

// SavePosting bookmarks a posting; returns false when it was already saved
func (db *DB) SavePosting(ctx context.Context, s *types.SavedPosting) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`INSERT INTO saved_postings (candidate_id, posting_id, saved_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (candidate_id, posting_id) DO NOTHING`,
		s.CandidateID, s.PostingID, s.SavedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save posting: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListSaved returns a candidate's bookmarks in the order they were saved
func (db *DB) ListSaved(ctx context.Context, candidateID string) ([]types.SavedPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, posting_id, saved_at FROM saved_postings
		 WHERE candidate_id = $1 ORDER BY seq`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved postings: %w", err)
	}
	defer rows.Close()

	out := []types.SavedPosting{}
	for rows.Next() {
		var s types.SavedPosting
		if err := rows.Scan(&s.CandidateID, &s.PostingID, &s.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved posting: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
