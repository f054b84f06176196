package extract

import (
	"strings"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/catalog"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// extractSkills scans the lowered vacancy text against the skill catalog.
// The catalog is ordered longest-first, and occurrences claimed by a longer
// entry are invisible to shorter entries it contains, so "React Native"
// never double-counts as "React".
func (e *Extractor) extractSkills(text string) []types.SkillRequirement {
	var reqs []types.SkillRequirement
	var claimed []span

	for _, skill := range e.catalog.Skills {
		occurrences := findOccurrences(text, strings.ToLower(skill))

		var kept []span
		for _, occ := range occurrences {
			contained := false
			for _, c := range claimed {
				if occ.within(c) {
					contained = true
					break
				}
			}
			if !contained {
				kept = append(kept, occ)
			}
		}
		if len(kept) == 0 {
			continue
		}

		claimed = append(claimed, kept...)
		reqs = append(reqs, types.SkillRequirement{
			Name:      skill,
			Mandatory: e.skillMandatory(text, kept),
		})
	}
	return reqs
}

// skillMandatory reports whether any occurrence of the skill is flagged by a
// trigger phrase: either a mandatory prefix right before the mention
// ("experiência em React", "domínio de Docker") or a mandatory trigger in the
// window after it ("React obrigatório").
func (e *Extractor) skillMandatory(text string, occurrences []span) bool {
	for _, occ := range occurrences {
		before := strings.TrimRight(text[:occ.start], " :,-")
		for _, prefix := range catalog.SkillMandatoryPrefixes {
			if strings.HasSuffix(before, prefix) {
				return true
			}
		}

		after := text[occ.end:]
		if len(after) > triggerWindow {
			after = after[:triggerWindow]
		}
		if containsAny(after, catalog.MandatoryTriggers) {
			return true
		}
	}
	return false
}
