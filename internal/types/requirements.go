package types

// Requirements is the structured output of requirement extraction over a
// vacancy's free text. It is the sole input contract between the extractor
// and the gap comparisons.
type Requirements struct {
	Skills          []SkillRequirement         `json:"skills"`
	ExperienceYears int                        `json:"experienceYears"`
	Education       *EducationRequirement      `json:"education,omitempty"`
	Languages       []LanguageRequirement      `json:"languages"`
	Certifications  []CertificationRequirement `json:"certifications"`
}

// SkillRequirement is one skill the vacancy asks for. Mandatory is set when a
// trigger phrase flags the skill as non-negotiable.
type SkillRequirement struct {
	Name      string `json:"name"`
	Mandatory bool   `json:"mandatory"`
}

// EducationRequirement is the minimum education level the vacancy asks for.
type EducationRequirement struct {
	Level     EducationLevel `json:"level"`
	Mandatory bool           `json:"mandatory"`
}

// LanguageRequirement is one language the vacancy asks for, with the required
// proficiency level.
type LanguageRequirement struct {
	Name      string        `json:"name"`
	Level     LanguageLevel `json:"level"`
	Mandatory bool          `json:"mandatory"`
}

// CertificationRequirement is one certification the vacancy asks for.
// Keywords carries the catalog keyword set used by the fuzzy containment
// test against candidate certification names.
type CertificationRequirement struct {
	Name      string   `json:"name"`
	Keywords  []string `json:"-"`
	Mandatory bool     `json:"mandatory"`
}
