package types

// GapType identifies the dimension a gap or match belongs to.
type GapType string

const (
	GapHardSkill     GapType = "hardSkill"
	GapExperience    GapType = "experience"
	GapEducation     GapType = "education"
	GapLanguage      GapType = "language"
	GapCertification GapType = "certification"
	GapLocation      GapType = "location"
)

// Severity is the categorical impact weight of a gap.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// gapCategories maps a gap type to the reporting category used by the
// compatibility score's category weights.
var gapCategories = map[GapType]string{
	GapHardSkill:     "hardSkills",
	GapExperience:    "experience",
	GapEducation:     "education",
	GapLanguage:      "languages",
	GapCertification: "certifications",
	GapLocation:      "location",
}

// Category returns the scoring category for the gap type.
func (t GapType) Category() string {
	return gapCategories[t]
}

// Gap is a requirement the candidate does not meet. Required and Current
// describe the requirement and the candidate's standing in display form;
// Current may be empty when the candidate has nothing in that dimension.
type Gap struct {
	Type        GapType  `json:"type"`
	Name        string   `json:"name"`
	Required    string   `json:"required"`
	Current     string   `json:"current,omitempty"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}

// ID is the composite key joining a gap to its suggestion and plan item.
func (g Gap) ID() string {
	return string(g.Type) + ":" + g.Name
}

// Match is a requirement the candidate meets. Same shape as Gap minus the
// severity.
type Match struct {
	Type        GapType `json:"type"`
	Name        string  `json:"name"`
	Required    string  `json:"required"`
	Current     string  `json:"current,omitempty"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}
