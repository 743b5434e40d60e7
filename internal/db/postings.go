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
// Posting Methods
// -----------------------------------------------------------------------------

const postingColumns = `id, title, organization, description, sector, required_skills, required_education,
		        deadline, location, stipend, duration_weeks, remote, tags, recruiter_id, posted_at`

// CreatePosting inserts a recruiter-posted internship
func (db *DB) CreatePosting(ctx context.Context, p *types.InternshipPosting) error {
	locJSON, err := marshalNullable(p.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`INSERT INTO postings (`+postingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Title, p.Organization, p.Description, p.Sector, nonNil(p.RequiredSkills),
		string(p.RequiredEducation), p.Deadline, locJSON, p.Stipend, p.DurationWeeks, p.Remote,
		nonNil(p.Tags), p.RecruiterID, p.PostedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to create posting %s: %w", p.ID, repository.ErrDuplicate)
	}
	return nil
}

// GetPosting retrieves a posting by ID
func (db *DB) GetPosting(ctx context.Context, id string) (*types.InternshipPosting, error) {
	p, err := scanPosting(db.pool.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	return p, nil
}

// ListPostings returns all postings in the order they were posted
func (db *DB) ListPostings(ctx context.Context) ([]types.InternshipPosting, error) {
	return db.queryPostings(ctx, `SELECT `+postingColumns+` FROM postings ORDER BY seq`)
}

// ListPostingsByRecruiter returns one recruiter's postings
func (db *DB) ListPostingsByRecruiter(ctx context.Context, recruiterID string) ([]types.InternshipPosting, error) {
	return db.queryPostings(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE recruiter_id = $1 ORDER BY seq`, recruiterID)
}

// DeletePosting removes a posting and reports whether it existed
func (db *DB) DeletePosting(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM postings WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete posting: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (db *DB) queryPostings(ctx context.Context, query string, args ...any) ([]types.InternshipPosting, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

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

func scanPosting(row pgx.Row) (*types.InternshipPosting, error) {
	var p types.InternshipPosting
	var education string
	var locJSON []byte

	err := row.Scan(&p.ID, &p.Title, &p.Organization, &p.Description, &p.Sector, &p.RequiredSkills,
		&education, &p.Deadline, &locJSON, &p.Stipend, &p.DurationWeeks, &p.Remote, &p.Tags,
		&p.RecruiterID, &p.PostedAt)
	if err != nil {
		return nil, err
	}

	p.RequiredEducation = types.EducationLevel(education)
	p.Location = unmarshalNullable[types.PostingLocation](locJSON)
	return &p, nil
}
