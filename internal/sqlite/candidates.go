package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/types"
)

const candidateColumns = `id, name, phone, district, education_level, skills, first_gen, gender,
       location, preferred_locations, created_at, updated_at`

// CreateCandidate inserts a new candidate.
func (s *Store) CreateCandidate(ctx context.Context, c *types.CandidateProfile) error {
	args, err := candidateArgs(c)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
INSERT OR IGNORE INTO candidates (`+candidateColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`, args...)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to create candidate %s: %w", c.ID, repository.ErrDuplicate)
	}
	return nil
}

// GetCandidate returns the candidate or nil when absent.
func (s *Store) GetCandidate(ctx context.Context, id string) (*types.CandidateProfile, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = ?;`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// UpdateCandidate replaces every mutable field of an existing candidate.
func (s *Store) UpdateCandidate(ctx context.Context, c *types.CandidateProfile) error {
	args, err := candidateArgs(c)
	if err != nil {
		return err
	}

	// id moves to the WHERE clause; created_at is immutable
	res, err := s.db.ExecContext(ctx, `
UPDATE candidates SET name = ?, phone = ?, district = ?, education_level = ?, skills = ?,
  first_gen = ?, gender = ?, location = ?, preferred_locations = ?, updated_at = ?
WHERE id = ?;`,
		args[1], args[2], args[3], args[4], args[5], args[6], args[7], args[8], args[9], args[11], c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("candidate not found: %s", c.ID)
	}
	return nil
}

// ListCandidates returns all candidates in creation order.
func (s *Store) ListCandidates(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY rowid;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []types.CandidateProfile{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func candidateArgs(c *types.CandidateProfile) ([]any, error) {
	skillsJSON, err := encodeJSON(nonNil(c.Skills))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	prefsJSON, err := encodeJSON(nonNil(c.PreferredLocations))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferred locations: %w", err)
	}
	locJSON, err := encodeNullableJSON(c.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location: %w", err)
	}

	return []any{
		c.ID, c.Name, c.Phone, c.District, string(c.EducationLevel), skillsJSON,
		boolToInt(c.FirstGen), c.Gender, locJSON, prefsJSON,
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row scanner) (*types.CandidateProfile, error) {
	var (
		c                                types.CandidateProfile
		education, skillsJSON, prefsJSON string
		createdAt, updatedAt             string
		firstGen                         int
		locJSON                          sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.District, &education, &skillsJSON, &firstGen,
		&c.Gender, &locJSON, &prefsJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	c.EducationLevel = types.EducationLevel(education)
	c.Skills = decodeStrings(skillsJSON)
	c.FirstGen = firstGen != 0
	c.Location = decodeNullableJSON[types.Coordinates](locJSON)
	c.PreferredLocations = decodeStrings(prefsJSON)
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
