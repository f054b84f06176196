package extract

import (
	"github.com/allanbrunobr/nasc-gap-analysis/internal/catalog"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// extractLanguages detects each catalog language through its synonyms and
// derives the required proficiency from fluency keywords near the mention.
// The fluency rules are checked in priority order (fluent > intermediate >
// beginner); a mention with no qualifier defaults to intermediate.
func (e *Extractor) extractLanguages(text string) []types.LanguageRequirement {
	var reqs []types.LanguageRequirement

	for _, lang := range e.catalog.Languages {
		mention, found := firstSynonymMention(text, lang.Synonyms)
		if !found {
			continue
		}

		window := windowAround(text, mention)

		level := types.LanguageIntermediate
		for _, rule := range catalog.FluencyRules {
			if containsAny(window, rule.Keywords) {
				level = rule.Level
				break
			}
		}

		reqs = append(reqs, types.LanguageRequirement{
			Name:      lang.Name,
			Level:     level,
			Mandatory: containsAny(window, catalog.MandatoryTriggers),
		})
	}
	return reqs
}

// firstSynonymMention returns the earliest boundary-checked occurrence of any
// synonym in the text.
func firstSynonymMention(text string, synonyms []string) (span, bool) {
	best := span{start: -1}
	for _, syn := range synonyms {
		occ := findOccurrences(text, syn)
		if len(occ) == 0 {
			continue
		}
		if best.start < 0 || occ[0].start < best.start {
			best = occ[0]
		}
	}
	return best, best.start >= 0
}
