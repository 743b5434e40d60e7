package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/types"
)

const postingColumns = `id, title, organization, description, sector, required_skills, required_education,
       deadline, location, stipend, duration_weeks, remote, tags, recruiter_id, posted_at`

// CreatePosting inserts a recruiter posting.
func (s *Store) CreatePosting(ctx context.Context, p *types.InternshipPosting) error {
	skillsJSON, err := encodeJSON(nonNil(p.RequiredSkills))
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}
	tagsJSON, err := encodeJSON(nonNil(p.Tags))
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}
	locJSON, err := encodeNullableJSON(p.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}
	var postedAt sql.NullString
	if p.PostedAt != nil {
		postedAt = sql.NullString{String: formatTime(*p.PostedAt), Valid: true}
	}

	res, err := s.db.ExecContext(ctx, `
INSERT OR IGNORE INTO postings (`+postingColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		p.ID, p.Title, p.Organization, p.Description, p.Sector, skillsJSON, string(p.RequiredEducation),
		p.Deadline, locJSON, p.Stipend, p.DurationWeeks, boolToInt(p.Remote), tagsJSON, p.RecruiterID, postedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create posting: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to create posting %s: %w", p.ID, repository.ErrDuplicate)
	}
	return nil
}

// GetPosting returns the posting or nil when absent.
func (s *Store) GetPosting(ctx context.Context, id string) (*types.InternshipPosting, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postingColumns+` FROM postings WHERE id = ?;`, id)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	return p, nil
}

// ListPostings returns all postings in the order they were posted.
func (s *Store) ListPostings(ctx context.Context) ([]types.InternshipPosting, error) {
	return s.queryPostings(ctx, `SELECT `+postingColumns+` FROM postings ORDER BY rowid;`)
}

// ListPostingsByRecruiter returns one recruiter's postings.
func (s *Store) ListPostingsByRecruiter(ctx context.Context, recruiterID string) ([]types.InternshipPosting, error) {
	return s.queryPostings(ctx, `SELECT `+postingColumns+` FROM postings WHERE recruiter_id = ? ORDER BY rowid;`, recruiterID)
}

// DeletePosting removes a posting, reporting whether it existed.
func (s *Store) DeletePosting(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM postings WHERE id = ?;`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete posting: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete posting: %w", err)
	}
	return n > 0, nil
}

func (s *Store) queryPostings(ctx context.Context, query string, args ...any) ([]types.InternshipPosting, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []types.InternshipPosting{}
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func scanPosting(row scanner) (*types.InternshipPosting, error) {
	var (
		p                    types.InternshipPosting
		skillsJSON, tagsJSON string
		education            string
		remote               int
		locJSON, postedAt    sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Organization, &p.Description, &p.Sector, &skillsJSON, &education,
		&p.Deadline, &locJSON, &p.Stipend, &p.DurationWeeks, &remote, &tagsJSON, &p.RecruiterID, &postedAt); err != nil {
		return nil, err
	}

	p.RequiredSkills = decodeStrings(skillsJSON)
	p.RequiredEducation = types.EducationLevel(education)
	p.Location = decodeNullableJSON[types.PostingLocation](locJSON)
	p.Remote = remote != 0
	p.Tags = decodeStrings(tagsJSON)
	if postedAt.Valid {
		t := parseTime(postedAt.String)
		p.PostedAt = &t
	}
	return &p, nil
}
