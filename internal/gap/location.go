package gap

import (
	"fmt"
	"strings"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/catalog"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// CompareLocation compares the candidate's city against the vacancy's. A
// remote vacancy always produces a match: location is never a constraint.
// Otherwise the cities match when equal (case-insensitive) or when both
// belong to the same metropolitan cluster. A mismatch is high severity under
// a presential format and medium under hybrid.
func (a *Analyzer) CompareLocation(profile *types.CandidateProfile, vacancy *types.Vacancy) ([]types.Gap, []types.Match) {
	name := "Localização"

	if vacancy.WorkFormat == types.WorkFormatRemote {
		return nil, []types.Match{{
			Type:        types.GapLocation,
			Name:        name,
			Required:    "Remoto",
			Current:     profile.City,
			Description: "A vaga é remota; a localização do candidato não é uma restrição.",
			Category:    types.GapLocation.Category(),
		}}
	}

	vacancyCity := strings.ToLower(strings.TrimSpace(vacancy.City))
	candidateCity := strings.ToLower(strings.TrimSpace(profile.City))

	if vacancyCity == candidateCity || sameMetroCluster(vacancyCity, candidateCity) {
		return nil, []types.Match{{
			Type:        types.GapLocation,
			Name:        name,
			Required:    vacancy.Location(),
			Current:     profile.City,
			Description: fmt.Sprintf("O candidato está na mesma região da vaga (%s).", vacancy.Location()),
			Category:    types.GapLocation.Category(),
		}}
	}

	severity := types.SeverityMedium
	if vacancy.WorkFormat == types.WorkFormatPresential {
		severity = types.SeverityHigh
	}

	current := profile.City
	description := fmt.Sprintf("A vaga é em %s; o candidato está em %s.", vacancy.Location(), profile.City)
	if candidateCity == "" {
		description = fmt.Sprintf("A vaga é em %s; o candidato não informou sua localização.", vacancy.Location())
	}

	return []types.Gap{{
		Type:        types.GapLocation,
		Name:        name,
		Required:    vacancy.Location(),
		Current:     current,
		Severity:    severity,
		Description: description,
		Category:    types.GapLocation.Category(),
	}}, nil
}

// sameMetroCluster reports whether both cities belong to the same named
// metropolitan cluster. Inputs must already be lowercase.
func sameMetroCluster(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	for _, cities := range catalog.MetroClusters {
		foundA, foundB := false, false
		for _, city := range cities {
			if city == a {
				foundA = true
			}
			if city == b {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}
