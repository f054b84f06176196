package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

func TestCompare_EveryRequirementLandsExactlyOnce(t *testing.T) {
	a := NewAnalyzer(nil, fixedNow("2023-01"))

	profile := &types.CandidateProfile{
		City:       "São Paulo",
		HardSkills: []string{"React", "JavaScript"},
		Experiences: []types.ExperienceEntry{
			{Position: "Dev", StartDate: "2021-01"},
		},
		Education: []types.EducationEntry{{Level: types.EducationBachelors}},
		Languages: []types.LanguageEntry{{Name: "Inglês", Level: types.LanguageBeginner}},
	}
	vacancy := &types.Vacancy{City: "São Paulo", State: "SP", WorkFormat: types.WorkFormatHybrid}
	reqs := types.Requirements{
		Skills: []types.SkillRequirement{
			{Name: "React", Mandatory: true},
			{Name: "Docker"},
		},
		ExperienceYears: 3,
		Education:       &types.EducationRequirement{Level: types.EducationUndergraduate},
		Languages: []types.LanguageRequirement{
			{Name: "Inglês", Level: types.LanguageFluent, Mandatory: true},
		},
		Certifications: []types.CertificationRequirement{
			{Name: "AWS Certified", Keywords: []string{"aws certified"}},
		},
	}

	gaps, matches := a.Compare(profile, reqs, vacancy)

	// 2 skills + experience + education + 1 language + 1 certification +
	// location = 7 requirement records total.
	assert.Equal(t, 7, len(gaps)+len(matches))

	seen := map[string]int{}
	for _, g := range gaps {
		seen[g.ID()]++
	}
	for _, m := range matches {
		seen[string(m.Type)+":"+m.Name]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "requirement %s must land in exactly one set", id)
	}
}

func TestCompare_DimensionOrderIsStable(t *testing.T) {
	a := NewAnalyzer(nil, fixedNow("2023-01"))

	profile := &types.CandidateProfile{City: "Manaus"}
	vacancy := &types.Vacancy{City: "São Paulo", State: "SP", WorkFormat: types.WorkFormatPresential}
	reqs := types.Requirements{
		Skills:          []types.SkillRequirement{{Name: "Go"}},
		ExperienceYears: 2,
		Languages:       []types.LanguageRequirement{{Name: "Inglês", Level: types.LanguageIntermediate}},
	}

	gaps, _ := a.Compare(profile, reqs, vacancy)

	wantTypes := []types.GapType{types.GapHardSkill, types.GapExperience, types.GapLanguage, types.GapLocation}
	gotTypes := make([]types.GapType, 0, len(gaps))
	for _, g := range gaps {
		gotTypes = append(gotTypes, g.Type)
	}
	assert.Equal(t, wantTypes, gotTypes)
}
