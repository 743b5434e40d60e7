package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/internship-matcher/internal/repository"
	"github.com/jonathan/internship-matcher/internal/types"
)

// -----------------------------------------------------------------------------
// Candidate Methods
// -----------------------------------------------------------------------------

const candidateColumns = `id, name, phone, district, education_level, skills, first_gen, gender,
		        location, preferred_locations, created_at, updated_at`

// CreateCandidate inserts a new candidate profile
func (db *DB) CreateCandidate(ctx context.Context, c *types.CandidateProfile) error {
	locJSON, err := marshalNullable(c.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`INSERT INTO candidates (`+candidateColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO NOTHING`,
		c.ID, c.Name, c.Phone, c.District, string(c.EducationLevel), nonNil(c.Skills), c.FirstGen,
		c.Gender, locJSON, nonNil(c.PreferredLocations), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to create candidate %s: %w", c.ID, repository.ErrDuplicate)
	}
	return nil
}

// GetCandidate retrieves a candidate by ID
func (db *DB) GetCandidate(ctx context.Context, id string) (*types.CandidateProfile, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// UpdateCandidate overwrites a candidate's mutable fields
func (db *DB) UpdateCandidate(ctx context.Context, c *types.CandidateProfile) error {
	locJSON, err := marshalNullable(c.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE candidates
		 SET name = $2, phone = $3, district = $4, education_level = $5, skills = $6,
		     first_gen = $7, gender = $8, location = $9, preferred_locations = $10, updated_at = $11
		 WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.District, string(c.EducationLevel), nonNil(c.Skills),
		c.FirstGen, c.Gender, locJSON, nonNil(c.PreferredLocations), c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", c.ID)
	}
	return nil
}

// ListCandidates returns all candidates in creation order
func (db *DB) ListCandidates(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

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

func scanCandidate(row pgx.Row) (*types.CandidateProfile, error) {
	var c types.CandidateProfile
	var education string
	var locJSON []byte

	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.District, &education, &c.Skills, &c.FirstGen,
		&c.Gender, &locJSON, &c.PreferredLocations, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	c.EducationLevel = types.EducationLevel(education)
	c.Location = unmarshalNullable[types.Coordinates](locJSON)
	return &c, nil
}
