// Package analysis sequences the gap analysis pipeline: fetch the two input
// records, extract requirements, run the six comparisons, score, suggest and
// plan. The pipeline is stateless; apart from the two fetches it is a pure
// function of its inputs, so identical (profile, vacancy) pairs always yield
// identical results.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/catalog"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/extract"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/gap"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/plan"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/score"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/suggest"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// ProfileStore fetches candidate profiles. Owned by the external profile
// service; implementations are expected to apply their own fetch timeout and
// retry policy.
type ProfileStore interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error)
}

// VacancyStore fetches vacancy records.
type VacancyStore interface {
	GetVacancy(ctx context.Context, id uuid.UUID) (*types.Vacancy, error)
}

// Analyzer assembles the pipeline stages. It is the only component that
// touches the external profile/vacancy stores.
type Analyzer struct {
	profiles  ProfileStore
	vacancies VacancyStore
	extractor *extract.Extractor
	comparer  *gap.Analyzer
	logger    *zap.Logger
}

// New creates an analyzer over the given stores and catalog. now closes
// open-ended experience entries; pass nil for time.Now.
func New(profiles ProfileStore, vacancies VacancyStore, cat *catalog.Catalog, logger *zap.Logger, now func() time.Time) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		profiles:  profiles,
		vacancies: vacancies,
		extractor: extract.NewExtractor(cat, logger),
		comparer:  gap.NewAnalyzer(logger, now),
		logger:    logger,
	}
}

// Analyze runs the whole pipeline for one (profile, vacancy) pair. An
// unresolvable identifier fails the request; per-entry data defects inside
// the records degrade locally and never abort the analysis.
func (a *Analyzer) Analyze(ctx context.Context, profileID, vacancyID uuid.UUID) (*types.Result, error) {
	profile, err := a.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("fetching profile %s: %w", profileID, err)
	}

	vacancy, err := a.vacancies.GetVacancy(ctx, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("fetching vacancy %s: %w", vacancyID, err)
	}

	result := a.Run(profile, vacancy)

	a.logger.Info("gap analysis completed",
		zap.String("profile_id", profileID.String()),
		zap.String("vacancy_id", vacancyID.String()),
		zap.Int("compatibility", result.CurrentCompatibility),
		zap.Int("gaps", len(result.Gaps)),
		zap.Int("matches", len(result.Matches)),
	)
	return result, nil
}

// Run executes the pure part of the pipeline over two already materialized
// records.
func (a *Analyzer) Run(profile *types.CandidateProfile, vacancy *types.Vacancy) *types.Result {
	requirements := a.extractor.Extract(vacancy)
	gaps, matches := a.comparer.Compare(profile, requirements, vacancy)
	suggestions := suggest.ForGaps(gaps)

	if gaps == nil {
		gaps = []types.Gap{}
	}
	if matches == nil {
		matches = []types.Match{}
	}

	return &types.Result{
		Vacancy: types.VacancySummary{
			ID:       vacancy.ID,
			Title:    vacancy.Title,
			Company:  vacancy.Company,
			Location: vacancy.Location(),
		},
		CurrentCompatibility: score.Compatibility(gaps),
		Gaps:                 gaps,
		Matches:              matches,
		Suggestions:          suggestions,
		ImprovementPotential: score.ImprovementPotential(gaps),
		ActionPlan:           plan.Build(gaps, suggestions),
	}
}
