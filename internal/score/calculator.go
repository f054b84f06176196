// Package score reduces a gap list to the 0-100 compatibility score and the
// independently scaled improvement potential. All weight tables are named,
// immutable configuration: the relative hiring importance they encode is part
// of the product contract, never tuned inline.
package score

import (
	"math"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// severityWeights are the per-gap base penalties.
var severityWeights = map[types.Severity]float64{
	types.SeverityHigh:   15,
	types.SeverityMedium: 10,
	types.SeverityLow:    5,
}

// categoryWeights scale penalties by hiring importance. The six weights sum
// to 1.0.
var categoryWeights = map[types.GapType]float64{
	types.GapHardSkill:     0.35,
	types.GapExperience:    0.25,
	types.GapEducation:     0.15,
	types.GapLanguage:      0.10,
	types.GapCertification: 0.10,
	types.GapLocation:      0.05,
}

// Compatibility computes the 0-100 compatibility score: start at 100,
// subtract every gap's severity weight × category weight in a single pass,
// clamp at zero, then round half-up once. Rounding per gap would drift on
// multi-gap inputs.
func Compatibility(gaps []types.Gap) int {
	score := 100.0
	for _, g := range gaps {
		score -= severityWeights[g.Severity] * categoryWeights[g.Type]
	}
	if score < 0 {
		score = 0
	}
	return int(math.Floor(score + 0.5))
}

// improvementPoints models ease of closure on a scale independent from the
// penalty weights: skill and certification gaps are cheaper to remediate
// than structural experience or education gaps.
func improvementPoints(g types.Gap) int {
	switch g.Type {
	case types.GapHardSkill, types.GapCertification:
		if g.Severity == types.SeverityHigh {
			return 15
		}
		return 10
	case types.GapLanguage:
		if g.Severity == types.SeverityHigh {
			return 10
		}
		return 5
	case types.GapExperience, types.GapEducation:
		if g.Severity == types.SeverityHigh {
			return 5
		}
		return 3
	default:
		return 0
	}
}

// ImprovementPotential sums the per-gap closure points, capped at 100.
func ImprovementPotential(gaps []types.Gap) int {
	total := 0
	for _, g := range gaps {
		total += improvementPoints(g)
	}
	if total > 100 {
		total = 100
	}
	return total
}
