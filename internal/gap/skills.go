package gap

import (
	"fmt"
	"strings"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// CompareSkills takes the case-insensitive set difference of required skill
// names against the candidate's skills. A missing mandatory skill is a high
// severity gap; a missing optional skill is medium.
func (a *Analyzer) CompareSkills(profile *types.CandidateProfile, required []types.SkillRequirement) ([]types.Gap, []types.Match) {
	owned := make(map[string]string, len(profile.HardSkills)+len(profile.SoftSkills))
	for _, s := range profile.HardSkills {
		owned[strings.ToLower(strings.TrimSpace(s))] = s
	}
	for _, s := range profile.SoftSkills {
		owned[strings.ToLower(strings.TrimSpace(s))] = s
	}

	var gaps []types.Gap
	var matches []types.Match

	for _, req := range required {
		if current, ok := owned[strings.ToLower(req.Name)]; ok {
			matches = append(matches, types.Match{
				Type:        types.GapHardSkill,
				Name:        req.Name,
				Required:    req.Name,
				Current:     current,
				Description: fmt.Sprintf("O candidato já possui %s.", req.Name),
				Category:    types.GapHardSkill.Category(),
			})
			continue
		}

		severity := types.SeverityMedium
		if req.Mandatory {
			severity = types.SeverityHigh
		}
		gaps = append(gaps, types.Gap{
			Type:        types.GapHardSkill,
			Name:        req.Name,
			Required:    req.Name,
			Severity:    severity,
			Description: fmt.Sprintf("A vaga pede %s, que não consta entre as habilidades do candidato.", req.Name),
			Category:    types.GapHardSkill.Category(),
		})
	}
	return gaps, matches
}
