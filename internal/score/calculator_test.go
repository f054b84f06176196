package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

func TestCompatibility_NoGapsIsPerfectScore(t *testing.T) {
	assert.Equal(t, 100, Compatibility(nil))
}

func TestCompatibility_SingleMediumSkillGap(t *testing.T) {
	// 10 × 0.35 = 3.5 penalty; 96.5 rounds half-up to 97.
	gaps := []types.Gap{{Type: types.GapHardSkill, Severity: types.SeverityMedium}}
	assert.Equal(t, 97, Compatibility(gaps))
}

func TestCompatibility_SinglePassRounding(t *testing.T) {
	// Two medium skill gaps: 100 − 7.0 = 93. Per-gap rounding would give
	// 100 − 4 − 4 = 92 instead.
	gaps := []types.Gap{
		{Type: types.GapHardSkill, Severity: types.SeverityMedium},
		{Type: types.GapHardSkill, Severity: types.SeverityMedium},
	}
	assert.Equal(t, 93, Compatibility(gaps))
}

func TestCompatibility_SeverityAndCategoryWeights(t *testing.T) {
	cases := []struct {
		name string
		gap  types.Gap
		want int
	}{
		{"high skill", types.Gap{Type: types.GapHardSkill, Severity: types.SeverityHigh}, 95},     // 15 × 0.35 = 5.25
		{"high experience", types.Gap{Type: types.GapExperience, Severity: types.SeverityHigh}, 96}, // 15 × 0.25 = 3.75
		{"medium education", types.Gap{Type: types.GapEducation, Severity: types.SeverityMedium}, 99}, // 10 × 0.15 = 1.5
		{"low language", types.Gap{Type: types.GapLanguage, Severity: types.SeverityLow}, 100},     // 5 × 0.10 = 0.5 rounds up
		{"high location", types.Gap{Type: types.GapLocation, Severity: types.SeverityHigh}, 99},    // 15 × 0.05 = 0.75
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compatibility([]types.Gap{tc.gap}))
		})
	}
}

func TestCompatibility_ClampsAtZero(t *testing.T) {
	var gaps []types.Gap
	for i := 0; i < 30; i++ {
		gaps = append(gaps, types.Gap{Type: types.GapHardSkill, Severity: types.SeverityHigh})
	}
	assert.Equal(t, 0, Compatibility(gaps))
}

func TestCompatibility_NonIncreasingInGaps(t *testing.T) {
	gaps := []types.Gap{
		{Type: types.GapHardSkill, Severity: types.SeverityHigh},
		{Type: types.GapExperience, Severity: types.SeverityHigh},
		{Type: types.GapLanguage, Severity: types.SeverityMedium},
		{Type: types.GapCertification, Severity: types.SeverityLow},
	}
	prev := Compatibility(nil)
	for i := 1; i <= len(gaps); i++ {
		current := Compatibility(gaps[:i])
		assert.LessOrEqual(t, current, prev)
		prev = current
	}
}

func TestImprovementPotential_PointTable(t *testing.T) {
	cases := []struct {
		name string
		gap  types.Gap
		want int
	}{
		{"high skill", types.Gap{Type: types.GapHardSkill, Severity: types.SeverityHigh}, 15},
		{"medium certification", types.Gap{Type: types.GapCertification, Severity: types.SeverityMedium}, 10},
		{"high language", types.Gap{Type: types.GapLanguage, Severity: types.SeverityHigh}, 10},
		{"low language", types.Gap{Type: types.GapLanguage, Severity: types.SeverityLow}, 5},
		{"high experience", types.Gap{Type: types.GapExperience, Severity: types.SeverityHigh}, 5},
		{"medium education", types.Gap{Type: types.GapEducation, Severity: types.SeverityMedium}, 3},
		{"location", types.Gap{Type: types.GapLocation, Severity: types.SeverityHigh}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ImprovementPotential([]types.Gap{tc.gap}))
		})
	}
}

func TestImprovementPotential_CappedAtOneHundred(t *testing.T) {
	var gaps []types.Gap
	for i := 0; i < 10; i++ {
		gaps = append(gaps, types.Gap{Type: types.GapHardSkill, Severity: types.SeverityHigh})
	}
	assert.Equal(t, 100, ImprovementPotential(gaps))
}
