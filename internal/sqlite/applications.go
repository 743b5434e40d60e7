package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/types"
)

const applicationColumns = `id, candidate_id, posting_id, internship_title, organization, recruiter_id,
       status, applied_at, updated_at`

// CreateApplication inserts an application. The (candidate, posting) pair is unique.
func (s *Store) CreateApplication(ctx context.Context, a *types.Application) error {
	res, err := s.db.ExecContext(ctx, `
INSERT OR IGNORE INTO applications (`+applicationColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		a.ID, a.CandidateID, a.PostingID, a.InternshipTitle, a.Organization, a.RecruiterID,
		string(a.Status), formatTime(a.AppliedAt), formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to create application for %s: %w", a.PostingID, repository.ErrDuplicate)
	}
	return nil
}

// GetApplication returns the application or nil when absent.
func (s *Store) GetApplication(ctx context.Context, id string) (*types.Application, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = ?;`, id)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return a, nil
}

// UpdateApplicationStatus changes an application's status, reporting whether it existed.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id string, status types.ApplicationStatus, updatedAt time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE applications SET status = ?, updated_at = ? WHERE id = ?;`,
		string(status), formatTime(updatedAt), id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update application status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update application status: %w", err)
	}
	return n > 0, nil
}

// ListApplicationsByCandidate returns a candidate's applications.
func (s *Store) ListApplicationsByCandidate(ctx context.Context, candidateID string) ([]types.Application, error) {
	return s.queryApplications(ctx, `SELECT `+applicationColumns+` FROM applications WHERE candidate_id = ? ORDER BY rowid;`, candidateID)
}

// ListApplicationsByPosting returns the applications received by a posting.
func (s *Store) ListApplicationsByPosting(ctx context.Context, postingID string) ([]types.Application, error) {
	return s.queryApplications(ctx, `SELECT `+applicationColumns+` FROM applications WHERE posting_id = ? ORDER BY rowid;`, postingID)
}

// ListApplicationsByRecruiter returns applications to any of a recruiter's postings.
func (s *Store) ListApplicationsByRecruiter(ctx context.Context, recruiterID string) ([]types.Application, error) {
	return s.queryApplications(ctx, `SELECT `+applicationColumns+` FROM applications WHERE recruiter_id = ? ORDER BY rowid;`, recruiterID)
}

func (s *Store) queryApplications(ctx context.Context, query string, args ...any) ([]types.Application, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer func() { _ = rows.Close() }()

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

func scanApplication(row scanner) (*types.Application, error) {
	var (
		a                    types.Application
		status               string
		appliedAt, updatedAt string
	)
	if err := row.Scan(&a.ID, &a.CandidateID, &a.PostingID, &a.InternshipTitle, &a.Organization,
		&a.RecruiterID, &status, &appliedAt, &updatedAt); err != nil {
		return nil, err
	}
	a.Status = types.ApplicationStatus(status)
	a.AppliedAt = parseTime(appliedAt)
	a.UpdatedAt = parseTime(updatedAt)
	return &a, nil
}

// -----------------------------------------------------------------------------
// Saved postings
// -----------------------------------------------------------------------------

// SavePosting bookmarks a posting, returning false when it was already saved.
func (s *Store) SavePosting(ctx context.Context, sp *types.SavedPosting) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT OR IGNORE INTO saved_postings (candidate_id, posting_id, saved_at)
VALUES (?, ?, ?);`,
		sp.CandidateID, sp.PostingID, formatTime(sp.SavedAt),
	)
	if err != nil {
		return false, fmt.Errorf("failed to save posting: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to save posting: %w", err)
	}
	return n > 0, nil
}

// ListSaved returns a candidate's bookmarks in the order they were saved.
func (s *Store) ListSaved(ctx context.Context, candidateID string) ([]types.SavedPosting, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT candidate_id, posting_id, saved_at FROM saved_postings WHERE candidate_id = ? ORDER BY rowid;`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved postings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []types.SavedPosting{}
	for rows.Next() {
		var sp types.SavedPosting
		var savedAt string
		if err := rows.Scan(&sp.CandidateID, &sp.PostingID, &savedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved posting: %w", err)
		}
		sp.SavedAt = parseTime(savedAt)
		out = append(out, sp)
	}
	return out, rows.Err()
}
