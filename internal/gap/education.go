package gap

import (
	"fmt"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// educationLabels render levels in the analysis output.
var educationLabels = map[types.EducationLevel]string{
	types.EducationElementary:    "Ensino Fundamental",
	types.EducationHighSchool:    "Ensino Médio",
	types.EducationTechnical:     "Ensino Técnico",
	types.EducationTechnologist:  "Tecnólogo",
	types.EducationUndergraduate: "Ensino Superior",
	types.EducationBachelors:     "Bacharelado",
	types.EducationTeaching:      "Licenciatura",
	types.EducationPostgraduate:  "Pós-graduação",
	types.EducationMasters:       "Mestrado",
	types.EducationDoctorate:     "Doutorado",
}

func educationLabel(level types.EducationLevel) string {
	if label, ok := educationLabels[level]; ok {
		return label
	}
	return string(level)
}

// CompareEducation checks the candidate's highest attained level against the
// required level on the ordinal scale. An unmapped or absent level is ordinal
// zero. Unmet education is a medium severity gap: it matters, but less than a
// mandatory skill or an experience deficit.
func (a *Analyzer) CompareEducation(profile *types.CandidateProfile, required *types.EducationRequirement) ([]types.Gap, []types.Match) {
	if required == nil {
		return nil, nil
	}

	var highest types.EducationLevel
	for _, entry := range profile.Education {
		if entry.Level.Ordinal() > highest.Ordinal() {
			highest = entry.Level
		}
	}

	name := "Formação acadêmica"
	requiredLabel := educationLabel(required.Level)
	current := ""
	if highest != "" {
		current = educationLabel(highest)
	}

	if highest.Ordinal() >= required.Level.Ordinal() {
		return nil, []types.Match{{
			Type:        types.GapEducation,
			Name:        name,
			Required:    requiredLabel,
			Current:     current,
			Description: fmt.Sprintf("A formação do candidato (%s) atende ao requisito de %s.", current, requiredLabel),
			Category:    types.GapEducation.Category(),
		}}
	}

	description := fmt.Sprintf("A vaga exige %s; o candidato possui %s.", requiredLabel, current)
	if current == "" {
		description = fmt.Sprintf("A vaga exige %s; o candidato não possui formação cadastrada.", requiredLabel)
	}

	return []types.Gap{{
		Type:        types.GapEducation,
		Name:        name,
		Required:    requiredLabel,
		Current:     current,
		Severity:    types.SeverityMedium,
		Description: description,
		Category:    types.GapEducation.Category(),
	}}, nil
}
