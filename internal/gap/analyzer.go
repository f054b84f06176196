// Package gap compares a candidate profile against extracted vacancy
// requirements across six dimensions. Every extracted requirement lands in
// exactly one of the two output sets: gaps (unmet, with severity) or matches
// (met). The comparisons are pure; per-entry data defects degrade to
// zero/absent contributions instead of aborting the analysis.
package gap

import (
	"time"

	"go.uber.org/zap"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// Analyzer runs the six dimension comparisons in a fixed order so the
// gap and match lists are deterministic for identical inputs.
type Analyzer struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewAnalyzer creates an analyzer. now is used to close open-ended
// experience entries; pass nil for time.Now.
func NewAnalyzer(logger *zap.Logger, now func() time.Time) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Analyzer{logger: logger, now: now}
}

// Compare runs all six comparisons and concatenates their records in the
// fixed dimension order: skills, experience, education, languages,
// certifications, location.
func (a *Analyzer) Compare(profile *types.CandidateProfile, reqs types.Requirements, vacancy *types.Vacancy) ([]types.Gap, []types.Match) {
	var gaps []types.Gap
	var matches []types.Match

	collect := func(g []types.Gap, m []types.Match) {
		gaps = append(gaps, g...)
		matches = append(matches, m...)
	}

	collect(a.CompareSkills(profile, reqs.Skills))
	collect(a.CompareExperience(profile, reqs.ExperienceYears))
	collect(a.CompareEducation(profile, reqs.Education))
	collect(a.CompareLanguages(profile, reqs.Languages))
	collect(a.CompareCertifications(profile, reqs.Certifications))
	collect(a.CompareLocation(profile, vacancy))

	return gaps, matches
}
