// Package db provides PostgreSQL storage for candidates, postings and applications.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/internship-matcher/internal/repository"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

var _ repository.Store = (*DB)(nil)

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}

// Migrate creates the tables and indexes if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS candidates (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		district TEXT NOT NULL DEFAULT '',
		education_level TEXT NOT NULL,
		skills TEXT[] NOT NULL DEFAULT '{}',
		first_gen BOOLEAN NOT NULL DEFAULT FALSE,
		gender TEXT NOT NULL DEFAULT '',
		location JSONB,
		preferred_locations TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS postings (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		organization TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		sector TEXT NOT NULL DEFAULT '',
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		required_education TEXT NOT NULL DEFAULT '',
		deadline TEXT NOT NULL,
		location JSONB,
		stipend INTEGER NOT NULL DEFAULT 0,
		duration_weeks INTEGER NOT NULL DEFAULT 0,
		remote BOOLEAN NOT NULL DEFAULT FALSE,
		tags TEXT[] NOT NULL DEFAULT '{}',
		recruiter_id TEXT NOT NULL DEFAULT '',
		posted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		candidate_id TEXT NOT NULL,
		posting_id TEXT NOT NULL,
		internship_title TEXT NOT NULL DEFAULT '',
		organization TEXT NOT NULL DEFAULT '',
		recruiter_id TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (candidate_id, posting_id)
	)`,
	`CREATE TABLE IF NOT EXISTS saved_postings (
		seq BIGSERIAL,
		candidate_id TEXT NOT NULL,
		posting_id TEXT NOT NULL,
		saved_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (candidate_id, posting_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_postings_recruiter ON postings(recruiter_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_recruiter ON applications(recruiter_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_candidate ON applications(candidate_id)`,
}

// marshalNullable encodes v as JSONB, or SQL NULL when v is nil.
func marshalNullable[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// unmarshalNullable decodes a JSONB column, returning nil for NULL or invalid content.
func unmarshalNullable[T any](raw []byte) *T {
	if raw == nil {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
