// Package plan sorts gaps by remediation priority and buckets them into the
// four time phases of the action plan.
package plan

import (
	"sort"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// prioritySeverityWeights rank gaps for planning. Distinct from the scoring
// severity weights: these feed ordering only.
var prioritySeverityWeights = map[types.Severity]int{
	types.SeverityHigh:   3,
	types.SeverityMedium: 2,
	types.SeverityLow:    1,
}

// easinessWeights reflect how quickly a gap type can typically be closed.
// Location gets zero: it cannot be remediated on a schedule.
var easinessWeights = map[types.GapType]int{
	types.GapHardSkill:     3,
	types.GapCertification: 3,
	types.GapLanguage:      2,
	types.GapExperience:    1,
	types.GapEducation:     1,
	types.GapLocation:      0,
}

// priorityScore ranks a gap: higher means act sooner.
func priorityScore(g types.Gap) int {
	return prioritySeverityWeights[g.Severity] * easinessWeights[g.Type]
}

// Build ranks the gaps by priority score (stable: ties keep extraction
// order) and assigns each to a bucket via the fixed decision table. The
// table's conditions are evaluated in order with first match winning; the
// apparent overlaps (certification placement ignores rank, hard skill
// placement depends on it) are part of the contract and must not be
// simplified.
func Build(gaps []types.Gap, suggestions []types.Suggestion) types.ActionPlan {
	byGapID := make(map[string]types.Suggestion, len(suggestions))
	for _, s := range suggestions {
		byGapID[s.GapID] = s
	}

	ranked := make([]types.Gap, len(gaps))
	copy(ranked, gaps)
	sort.SliceStable(ranked, func(i, j int) bool {
		return priorityScore(ranked[i]) > priorityScore(ranked[j])
	})

	// Buckets marshal as [] rather than null when empty.
	plan := types.ActionPlan{
		Immediate:  []types.PlanItem{},
		ShortTerm:  []types.PlanItem{},
		MediumTerm: []types.PlanItem{},
		LongTerm:   []types.PlanItem{},
	}
	for position, g := range ranked {
		item := types.PlanItem{
			Gap:        g,
			Suggestion: byGapID[g.ID()],
			Priority:   priorityScore(g),
		}

		switch {
		case g.Type == types.GapHardSkill && g.Severity == types.SeverityHigh && position < 2:
			plan.Immediate = append(plan.Immediate, item)
		case g.Type == types.GapCertification || (g.Type == types.GapHardSkill && position < 4):
			plan.ShortTerm = append(plan.ShortTerm, item)
		case g.Type == types.GapLanguage || g.Type == types.GapExperience:
			plan.MediumTerm = append(plan.MediumTerm, item)
		default:
			plan.LongTerm = append(plan.LongTerm, item)
		}
	}
	return plan
}
