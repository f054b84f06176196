// Package store provides access to the external profile and vacancy records.
// The gap analysis engine itself never does I/O; everything here sits at the
// collaborator boundary and owns its own timeout and retry policy.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// ErrProfileNotFound indicates the candidate profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ErrVacancyNotFound indicates the vacancy does not exist.
var ErrVacancyNotFound = errors.New("vacancy not found")

// Store wraps a PostgreSQL connection pool over the profiles and vacancies
// tables. Records are stored as JSONB payloads keyed by UUID.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetProfile fetches a candidate profile by ID.
func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM profiles WHERE id = $1`,
		id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	profile.ID = id
	return &profile, nil
}

// GetVacancy fetches a vacancy by ID. An unknown work format in the stored
// payload degrades to hybrid rather than failing the fetch.
func (s *Store) GetVacancy(ctx context.Context, id uuid.UUID) (*types.Vacancy, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM vacancies WHERE id = $1`,
		id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVacancyNotFound
		}
		return nil, fmt.Errorf("failed to get vacancy %s: %w", id, err)
	}

	var vacancy types.Vacancy
	if err := json.Unmarshal(data, &vacancy); err != nil {
		return nil, fmt.Errorf("failed to decode vacancy %s: %w", id, err)
	}
	vacancy.ID = id
	vacancy.WorkFormat, _ = types.NormalizeWorkFormat(string(vacancy.WorkFormat))
	return &vacancy, nil
}
