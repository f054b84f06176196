package types

// EducationLevel is a candidate or required education level. Levels are
// totally ordered by a fixed ordinal table and compared with >= / < only;
// ordinals are never used for arithmetic.
type EducationLevel string

const (
	EducationElementary    EducationLevel = "ELEMENTARY"
	EducationHighSchool    EducationLevel = "HIGH_SCHOOL"
	EducationTechnical     EducationLevel = "TECHNICAL"
	EducationTechnologist  EducationLevel = "TECHNOLOGIST"
	EducationUndergraduate EducationLevel = "UNDERGRADUATE"
	EducationBachelors     EducationLevel = "BACHELORS"
	EducationTeaching      EducationLevel = "TEACHING"
	EducationPostgraduate  EducationLevel = "POSTGRADUATE"
	EducationMasters       EducationLevel = "MASTERS"
	EducationDoctorate     EducationLevel = "DOCTORATE"
)

// educationOrdinals is the 8-point education scale. Undergraduate, Bachelor's
// and Teaching degrees tie at 5: they are interchangeable for requirement
// comparison purposes.
var educationOrdinals = map[EducationLevel]int{
	EducationElementary:    1,
	EducationHighSchool:    2,
	EducationTechnical:     3,
	EducationTechnologist:  4,
	EducationUndergraduate: 5,
	EducationBachelors:     5,
	EducationTeaching:      5,
	EducationPostgraduate:  6,
	EducationMasters:       7,
	EducationDoctorate:     8,
}

// Ordinal returns the level's position on the education scale, or 0 for an
// unmapped or absent level.
func (l EducationLevel) Ordinal() int {
	return educationOrdinals[l]
}

// LanguageLevel is a language proficiency level on a 7-point ordinal scale.
type LanguageLevel string

const (
	LanguageBeginner          LanguageLevel = "BEGINNER"
	LanguageElementary        LanguageLevel = "ELEMENTARY"
	LanguageIntermediate      LanguageLevel = "INTERMEDIATE"
	LanguageUpperIntermediate LanguageLevel = "UPPER_INTERMEDIATE"
	LanguageAdvanced          LanguageLevel = "ADVANCED"
	LanguageFluent            LanguageLevel = "FLUENT"
	LanguageNative            LanguageLevel = "NATIVE"
)

var languageOrdinals = map[LanguageLevel]int{
	LanguageBeginner:          1,
	LanguageElementary:        2,
	LanguageIntermediate:      3,
	LanguageUpperIntermediate: 4,
	LanguageAdvanced:          5,
	LanguageFluent:            6,
	LanguageNative:            7,
}

// Ordinal returns the level's position on the proficiency scale, or 0 for an
// unmapped or absent level.
func (l LanguageLevel) Ordinal() int {
	return languageOrdinals[l]
}
