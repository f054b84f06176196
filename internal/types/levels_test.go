package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationOrdinal_TiesAtUndergraduate(t *testing.T) {
	// Undergraduate, Bachelor's and Teaching are interchangeable.
	assert.Equal(t, EducationUndergraduate.Ordinal(), EducationBachelors.Ordinal())
	assert.Equal(t, EducationUndergraduate.Ordinal(), EducationTeaching.Ordinal())
	assert.Equal(t, 5, EducationBachelors.Ordinal())
}

func TestEducationOrdinal_TotalOrder(t *testing.T) {
	assert.Less(t, EducationElementary.Ordinal(), EducationHighSchool.Ordinal())
	assert.Less(t, EducationHighSchool.Ordinal(), EducationTechnical.Ordinal())
	assert.Less(t, EducationTechnical.Ordinal(), EducationTechnologist.Ordinal())
	assert.Less(t, EducationTechnologist.Ordinal(), EducationUndergraduate.Ordinal())
	assert.Less(t, EducationUndergraduate.Ordinal(), EducationPostgraduate.Ordinal())
	assert.Less(t, EducationPostgraduate.Ordinal(), EducationMasters.Ordinal())
	assert.Less(t, EducationMasters.Ordinal(), EducationDoctorate.Ordinal())
	assert.Equal(t, 8, EducationDoctorate.Ordinal())
}

func TestEducationOrdinal_UnknownIsZero(t *testing.T) {
	assert.Equal(t, 0, EducationLevel("MBA_EXECUTIVO").Ordinal())
	assert.Equal(t, 0, EducationLevel("").Ordinal())
}

func TestLanguageOrdinal_TotalOrder(t *testing.T) {
	levels := []LanguageLevel{
		LanguageBeginner, LanguageElementary, LanguageIntermediate,
		LanguageUpperIntermediate, LanguageAdvanced, LanguageFluent, LanguageNative,
	}
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1].Ordinal(), levels[i].Ordinal())
	}
	assert.Equal(t, 1, LanguageBeginner.Ordinal())
	assert.Equal(t, 7, LanguageNative.Ordinal())
}

func TestLanguageOrdinal_UnknownIsZero(t *testing.T) {
	assert.Equal(t, 0, LanguageLevel("CONVERSATIONAL").Ordinal())
}

func TestGapID_CompositeKey(t *testing.T) {
	g := Gap{Type: GapHardSkill, Name: "Docker"}
	assert.Equal(t, "hardSkill:Docker", g.ID())
}

func TestGapTypeCategory(t *testing.T) {
	assert.Equal(t, "hardSkills", GapHardSkill.Category())
	assert.Equal(t, "experience", GapExperience.Category())
	assert.Equal(t, "education", GapEducation.Category())
	assert.Equal(t, "languages", GapLanguage.Category())
	assert.Equal(t, "certifications", GapCertification.Category())
	assert.Equal(t, "location", GapLocation.Category())
}

func TestNormalizeWorkFormat(t *testing.T) {
	format, known := NormalizeWorkFormat("REMOTE")
	assert.True(t, known)
	assert.Equal(t, WorkFormatRemote, format)

	format, known = NormalizeWorkFormat("ON_SITE")
	assert.False(t, known)
	assert.Equal(t, WorkFormatHybrid, format)
}
