package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

func TestCompareLanguages_MeetsRequirement(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	profile := &types.CandidateProfile{Languages: []types.LanguageEntry{
		{Name: "Inglês", Level: types.LanguageFluent},
	}}

	gaps, matches := a.CompareLanguages(profile, []types.LanguageRequirement{
		{Name: "Inglês", Level: types.LanguageIntermediate},
	})
	assert.Empty(t, gaps)
	require.Len(t, matches, 1)
	assert.Equal(t, "Inglês (Fluente)", matches[0].Current)
}

func TestCompareLanguages_BelowLevelIsMedium(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	profile := &types.CandidateProfile{Languages: []types.LanguageEntry{
		{Name: "Inglês", Level: types.LanguageBeginner},
	}}

	gaps, matches := a.CompareLanguages(profile, []types.LanguageRequirement{
		{Name: "Inglês", Level: types.LanguageFluent, Mandatory: true},
	})
	assert.Empty(t, matches)
	require.Len(t, gaps, 1)
	assert.Equal(t, types.SeverityMedium, gaps[0].Severity)
	assert.Equal(t, "Inglês (Iniciante)", gaps[0].Current)
}

func TestCompareLanguages_AbsentMandatoryIsHigh(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	gaps, _ := a.CompareLanguages(&types.CandidateProfile{}, []types.LanguageRequirement{
		{Name: "Inglês", Level: types.LanguageFluent, Mandatory: true},
	})
	require.Len(t, gaps, 1)
	assert.Equal(t, types.SeverityHigh, gaps[0].Severity)
}

func TestCompareLanguages_AbsentOptionalIsLow(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	gaps, _ := a.CompareLanguages(&types.CandidateProfile{}, []types.LanguageRequirement{
		{Name: "Espanhol", Level: types.LanguageIntermediate},
	})
	require.Len(t, gaps, 1)
	assert.Equal(t, types.SeverityLow, gaps[0].Severity)
}

func TestCompareLanguages_NameMatchIsCaseInsensitive(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	profile := &types.CandidateProfile{Languages: []types.LanguageEntry{
		{Name: " inglês ", Level: types.LanguageNative},
	}}

	gaps, matches := a.CompareLanguages(profile, []types.LanguageRequirement{
		{Name: "Inglês", Level: types.LanguageFluent},
	})
	assert.Empty(t, gaps)
	assert.Len(t, matches, 1)
}
