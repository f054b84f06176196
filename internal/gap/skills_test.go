package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

func TestCompareSkills_CaseInsensitiveMatch(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	profile := &types.CandidateProfile{HardSkills: []string{"react", " docker "}}

	gaps, matches := a.CompareSkills(profile, []types.SkillRequirement{
		{Name: "React"},
		{Name: "Docker"},
	})

	assert.Empty(t, gaps)
	require.Len(t, matches, 2)
	assert.Equal(t, "react", matches[0].Current)
}

func TestCompareSkills_SoftSkillsCountAsOwned(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	profile := &types.CandidateProfile{SoftSkills: []string{"Scrum"}}

	gaps, matches := a.CompareSkills(profile, []types.SkillRequirement{{Name: "Scrum"}})

	assert.Empty(t, gaps)
	assert.Len(t, matches, 1)
}

func TestCompareSkills_MissingMandatoryIsHigh(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	profile := &types.CandidateProfile{HardSkills: []string{"JavaScript"}}

	gaps, matches := a.CompareSkills(profile, []types.SkillRequirement{
		{Name: "React", Mandatory: true},
		{Name: "Docker"},
	})

	assert.Empty(t, matches)
	require.Len(t, gaps, 2)
	assert.Equal(t, types.SeverityHigh, gaps[0].Severity)
	assert.Equal(t, types.SeverityMedium, gaps[1].Severity)
	assert.Equal(t, "hardSkill:React", gaps[0].ID())
}

func TestCompareSkills_NoRequirements(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	gaps, matches := a.CompareSkills(&types.CandidateProfile{}, nil)
	assert.Empty(t, gaps)
	assert.Empty(t, matches)
}
