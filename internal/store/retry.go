package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// ProfileGetter is the profile fetch interface the retry decorator wraps.
type ProfileGetter interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error)
}

// Resilient decorates the profile and vacancy fetches with a per-call
// timeout and a single retry on transient failures. Not-found is never
// retried: the record genuinely does not exist.
type Resilient struct {
	profiles  ProfileGetter
	vacancies VacancyGetter
	timeout   time.Duration
	logger    *zap.Logger
}

// NewResilient wraps the given stores. timeout bounds each individual fetch
// attempt; zero defaults to five seconds.
func NewResilient(profiles ProfileGetter, vacancies VacancyGetter, timeout time.Duration, logger *zap.Logger) *Resilient {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resilient{
		profiles:  profiles,
		vacancies: vacancies,
		timeout:   timeout,
		logger:    logger,
	}
}

// GetProfile fetches a profile with timeout and one retry.
func (r *Resilient) GetProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	var profile *types.CandidateProfile
	err := r.withRetry(ctx, "profile", id, func(ctx context.Context) error {
		var err error
		profile, err = r.profiles.GetProfile(ctx, id)
		return err
	})
	return profile, err
}

// GetVacancy fetches a vacancy with timeout and one retry.
func (r *Resilient) GetVacancy(ctx context.Context, id uuid.UUID) (*types.Vacancy, error) {
	var vacancy *types.Vacancy
	err := r.withRetry(ctx, "vacancy", id, func(ctx context.Context) error {
		var err error
		vacancy, err = r.vacancies.GetVacancy(ctx, id)
		return err
	})
	return vacancy, err
}

func (r *Resilient) withRetry(ctx context.Context, kind string, id uuid.UUID, fetch func(context.Context) error) error {
	attempt := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		return fetch(attemptCtx)
	}

	err := attempt()
	if err == nil || !isRetryable(err) {
		return err
	}

	r.logger.Warn("retrying fetch after transient error",
		zap.String("kind", kind),
		zap.String("id", id.String()),
		zap.Error(err),
	)
	return attempt()
}

// isRetryable reports whether a fetch failure is worth one more attempt.
// Not-found errors and caller cancellation are final.
func isRetryable(err error) bool {
	if errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrVacancyNotFound) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}
