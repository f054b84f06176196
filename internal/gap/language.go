package gap

import (
	"fmt"
	"strings"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

var languageLabels = map[types.LanguageLevel]string{
	types.LanguageBeginner:          "Iniciante",
	types.LanguageElementary:        "Básico",
	types.LanguageIntermediate:      "Intermediário",
	types.LanguageUpperIntermediate: "Intermediário avançado",
	types.LanguageAdvanced:          "Avançado",
	types.LanguageFluent:            "Fluente",
	types.LanguageNative:            "Nativo",
}

func languageLabel(level types.LanguageLevel) string {
	if label, ok := languageLabels[level]; ok {
		return label
	}
	return string(level)
}

// CompareLanguages checks each required language against the candidate's
// languages. An absent language is a high severity gap when mandatory, low
// otherwise; a language present below the required proficiency is medium.
func (a *Analyzer) CompareLanguages(profile *types.CandidateProfile, required []types.LanguageRequirement) ([]types.Gap, []types.Match) {
	var gaps []types.Gap
	var matches []types.Match

	for _, req := range required {
		spoken, found := findLanguage(profile.Languages, req.Name)
		requiredLabel := languageLabel(req.Level)

		switch {
		case !found:
			severity := types.SeverityLow
			if req.Mandatory {
				severity = types.SeverityHigh
			}
			gaps = append(gaps, types.Gap{
				Type:        types.GapLanguage,
				Name:        req.Name,
				Required:    fmt.Sprintf("%s (%s)", req.Name, requiredLabel),
				Severity:    severity,
				Description: fmt.Sprintf("A vaga pede %s em nível %s; o idioma não consta no perfil.", req.Name, requiredLabel),
				Category:    types.GapLanguage.Category(),
			})

		case spoken.Level.Ordinal() < req.Level.Ordinal():
			gaps = append(gaps, types.Gap{
				Type:        types.GapLanguage,
				Name:        req.Name,
				Required:    fmt.Sprintf("%s (%s)", req.Name, requiredLabel),
				Current:     fmt.Sprintf("%s (%s)", req.Name, languageLabel(spoken.Level)),
				Severity:    types.SeverityMedium,
				Description: fmt.Sprintf("A vaga pede %s em nível %s; o candidato está em nível %s.", req.Name, requiredLabel, languageLabel(spoken.Level)),
				Category:    types.GapLanguage.Category(),
			})

		default:
			matches = append(matches, types.Match{
				Type:        types.GapLanguage,
				Name:        req.Name,
				Required:    fmt.Sprintf("%s (%s)", req.Name, requiredLabel),
				Current:     fmt.Sprintf("%s (%s)", req.Name, languageLabel(spoken.Level)),
				Description: fmt.Sprintf("O candidato atende ao requisito de %s em nível %s.", req.Name, requiredLabel),
				Category:    types.GapLanguage.Category(),
			})
		}
	}
	return gaps, matches
}

func findLanguage(spoken []types.LanguageEntry, name string) (types.LanguageEntry, bool) {
	for _, entry := range spoken {
		if strings.EqualFold(strings.TrimSpace(entry.Name), name) {
			return entry, true
		}
	}
	return types.LanguageEntry{}, false
}
