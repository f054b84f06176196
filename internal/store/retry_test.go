package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

type flakyProfileStore struct {
	calls    int
	failures int
	err      error
}

func (f *flakyProfileStore) GetProfile(_ context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &types.CandidateProfile{ID: id}, nil
}

type flakyVacancyStore struct {
	calls    int
	failures int
	err      error
}

func (f *flakyVacancyStore) GetVacancy(_ context.Context, id uuid.UUID) (*types.Vacancy, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &types.Vacancy{ID: id}, nil
}

func TestResilient_RetriesOnceOnTransientError(t *testing.T) {
	profiles := &flakyProfileStore{failures: 1, err: errors.New("connection reset")}
	r := NewResilient(profiles, &flakyVacancyStore{}, 0, nil)

	id := uuid.New()
	profile, err := r.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, 2, profiles.calls)
}

func TestResilient_GivesUpAfterSecondFailure(t *testing.T) {
	boom := errors.New("connection reset")
	profiles := &flakyProfileStore{failures: 5, err: boom}
	r := NewResilient(profiles, &flakyVacancyStore{}, 0, nil)

	_, err := r.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, profiles.calls)
}

func TestResilient_NotFoundIsNeverRetried(t *testing.T) {
	profiles := &flakyProfileStore{failures: 5, err: ErrProfileNotFound}
	r := NewResilient(profiles, &flakyVacancyStore{}, 0, nil)

	_, err := r.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Equal(t, 1, profiles.calls)
}

func TestResilient_VacancyNotFoundIsNeverRetried(t *testing.T) {
	vacancies := &flakyVacancyStore{failures: 5, err: ErrVacancyNotFound}
	r := NewResilient(&flakyProfileStore{}, vacancies, 0, nil)

	_, err := r.GetVacancy(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrVacancyNotFound)
	assert.Equal(t, 1, vacancies.calls)
}

func TestResilient_CancellationIsNotRetried(t *testing.T) {
	profiles := &flakyProfileStore{failures: 5, err: context.Canceled}
	r := NewResilient(profiles, &flakyVacancyStore{}, 0, nil)

	_, err := r.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, profiles.calls)
}

func TestResilient_SuccessPassesThrough(t *testing.T) {
	vacancies := &flakyVacancyStore{}
	r := NewResilient(&flakyProfileStore{}, vacancies, 0, nil)

	id := uuid.New()
	vacancy, err := r.GetVacancy(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, vacancy.ID)
	assert.Equal(t, 1, vacancies.calls)
}
