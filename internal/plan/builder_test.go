package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

func TestPriorityScore(t *testing.T) {
	cases := []struct {
		name string
		gap  types.Gap
		want int
	}{
		{"high hard skill", types.Gap{Type: types.GapHardSkill, Severity: types.SeverityHigh}, 9},
		{"medium certification", types.Gap{Type: types.GapCertification, Severity: types.SeverityMedium}, 6},
		{"medium language", types.Gap{Type: types.GapLanguage, Severity: types.SeverityMedium}, 4},
		{"high experience", types.Gap{Type: types.GapExperience, Severity: types.SeverityHigh}, 3},
		{"high location", types.Gap{Type: types.GapLocation, Severity: types.SeverityHigh}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, priorityScore(tc.gap))
		})
	}
}

func TestBuild_BucketAssignment(t *testing.T) {
	gaps := []types.Gap{
		{Type: types.GapHardSkill, Name: "React", Severity: types.SeverityHigh},      // rank 0 → immediate
		{Type: types.GapHardSkill, Name: "Docker", Severity: types.SeverityHigh},     // rank 1 → immediate
		{Type: types.GapCertification, Name: "PMP", Severity: types.SeverityHigh},    // rank 2 → shortTerm
		{Type: types.GapHardSkill, Name: "Kafka", Severity: types.SeverityMedium},    // rank 3 → shortTerm
		{Type: types.GapLanguage, Name: "Inglês", Severity: types.SeverityMedium},    // rank 4 → mediumTerm
		{Type: types.GapLocation, Name: "Localização", Severity: types.SeverityHigh}, // rank 5 → longTerm
	}

	plan := Build(gaps, nil)

	require.Len(t, plan.Immediate, 2)
	assert.Equal(t, "React", plan.Immediate[0].Gap.Name)
	assert.Equal(t, "Docker", plan.Immediate[1].Gap.Name)

	require.Len(t, plan.ShortTerm, 2)
	assert.Equal(t, "PMP", plan.ShortTerm[0].Gap.Name)
	assert.Equal(t, "Kafka", plan.ShortTerm[1].Gap.Name)

	require.Len(t, plan.MediumTerm, 1)
	assert.Equal(t, "Inglês", plan.MediumTerm[0].Gap.Name)

	require.Len(t, plan.LongTerm, 1)
	assert.Equal(t, "Localização", plan.LongTerm[0].Gap.Name)
}

func TestBuild_ThirdHighSkillFallsToShortTerm(t *testing.T) {
	// Only the top two ranked high hard skills land in immediate; the third
	// one, still high severity, falls through to the short term bucket.
	gaps := []types.Gap{
		{Type: types.GapHardSkill, Name: "A", Severity: types.SeverityHigh},
		{Type: types.GapHardSkill, Name: "B", Severity: types.SeverityHigh},
		{Type: types.GapHardSkill, Name: "C", Severity: types.SeverityHigh},
	}

	plan := Build(gaps, nil)

	require.Len(t, plan.Immediate, 2)
	require.Len(t, plan.ShortTerm, 1)
	assert.Equal(t, "C", plan.ShortTerm[0].Gap.Name)
}

func TestBuild_StableSortKeepsExtractionOrderOnTies(t *testing.T) {
	gaps := []types.Gap{
		{Type: types.GapCertification, Name: "Primeira", Severity: types.SeverityMedium},
		{Type: types.GapCertification, Name: "Segunda", Severity: types.SeverityMedium},
	}

	plan := Build(gaps, nil)

	require.Len(t, plan.ShortTerm, 2)
	assert.Equal(t, "Primeira", plan.ShortTerm[0].Gap.Name)
	assert.Equal(t, "Segunda", plan.ShortTerm[1].Gap.Name)
}

func TestBuild_JoinsSuggestionsByGapID(t *testing.T) {
	gaps := []types.Gap{{Type: types.GapHardSkill, Name: "Go", Severity: types.SeverityHigh}}
	suggestions := []types.Suggestion{{GapID: "hardSkill:Go", EstimatedTime: "30-60 dias"}}

	plan := Build(gaps, suggestions)

	require.Len(t, plan.Immediate, 1)
	assert.Equal(t, "30-60 dias", plan.Immediate[0].Suggestion.EstimatedTime)
	assert.Equal(t, 9, plan.Immediate[0].Priority)
}

func TestBuild_EmptyGapsYieldsEmptyBuckets(t *testing.T) {
	plan := Build(nil, nil)

	assert.NotNil(t, plan.Immediate)
	assert.Empty(t, plan.Immediate)
	assert.NotNil(t, plan.ShortTerm)
	assert.NotNil(t, plan.MediumTerm)
	assert.NotNil(t, plan.LongTerm)
}
